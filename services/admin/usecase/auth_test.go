package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rajeshk/portfolio/internal/pkg/models"
	"github.com/rajeshk/portfolio/services/admin"
	"github.com/rajeshk/portfolio/services/admin/mocks"
)

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 60
	cfg.JWT.Issuer = "portfolio-api"
	cfg.Admin.OTPLength = 6
	cfg.Admin.OTPExpirySecs = 30
	return cfg
}

func testAdmin(t *testing.T, password string) *models.Admin {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &models.Admin{
		ID:           uuid.New(),
		Username:     "rajesh",
		Email:        "rajesh@example.com",
		FullName:     "Rajesh",
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepo(ctrl)
	mockGW := mocks.NewMockAdminGW(ctrl)
	uc := NewAdminUC(mockRepo, mockGW, testConfig())

	account := testAdmin(t, "secret123")

	mockRepo.EXPECT().
		GetAdminByUsername(gomock.Any(), "rajesh").
		Return(account, nil)

	var storedOTP *models.OTP
	mockRepo.EXPECT().
		CreateOTP(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, otp *models.OTP) error {
			storedOTP = otp
			return nil
		})

	mockGW.EXPECT().
		PublishOTPEvent(gomock.Any(), gomock.Any()).
		Return(nil)

	challenge, err := uc.Login(context.Background(), &models.AdminLoginRequest{
		Username: "rajesh",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.True(t, challenge.RequiresOTP)
	assert.Equal(t, account.ID.String(), challenge.AdminID)

	require.NotNil(t, storedOTP)
	assert.Equal(t, account.ID.String(), storedOTP.AdminID)
	assert.Len(t, storedOTP.Code, 6)
}

func TestLogin_UnknownUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepo(ctrl)
	mockGW := mocks.NewMockAdminGW(ctrl)
	uc := NewAdminUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().
		GetAdminByUsername(gomock.Any(), "nobody").
		Return(nil, errors.New("admin not found"))

	challenge, err := uc.Login(context.Background(), &models.AdminLoginRequest{
		Username: "nobody",
		Password: "whatever",
	})

	assert.Nil(t, challenge)
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepo(ctrl)
	mockGW := mocks.NewMockAdminGW(ctrl)
	uc := NewAdminUC(mockRepo, mockGW, testConfig())

	account := testAdmin(t, "secret123")

	mockRepo.EXPECT().
		GetAdminByUsername(gomock.Any(), "rajesh").
		Return(account, nil)

	challenge, err := uc.Login(context.Background(), &models.AdminLoginRequest{
		Username: "rajesh",
		Password: "wrong-password",
	})

	assert.Nil(t, challenge)
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)
}

func TestLogin_PublishFailureStillSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepo(ctrl)
	mockGW := mocks.NewMockAdminGW(ctrl)
	uc := NewAdminUC(mockRepo, mockGW, testConfig())

	account := testAdmin(t, "secret123")

	mockRepo.EXPECT().
		GetAdminByUsername(gomock.Any(), "rajesh").
		Return(account, nil)
	mockRepo.EXPECT().
		CreateOTP(gomock.Any(), gomock.Any()).
		Return(nil)
	mockGW.EXPECT().
		PublishOTPEvent(gomock.Any(), gomock.Any()).
		Return(errors.New("nsq unavailable"))

	challenge, err := uc.Login(context.Background(), &models.AdminLoginRequest{
		Username: "rajesh",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.True(t, challenge.RequiresOTP)
}

func TestVerifyOTP_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepo(ctrl)
	mockGW := mocks.NewMockAdminGW(ctrl)
	uc := NewAdminUC(mockRepo, mockGW, testConfig())

	account := testAdmin(t, "secret123")
	adminID := account.ID.String()

	mockRepo.EXPECT().
		GetOTP(gomock.Any(), adminID).
		Return(&models.OTP{AdminID: adminID, Code: "123456", CreatedAt: time.Now()}, nil)
	mockRepo.EXPECT().
		DeleteOTP(gomock.Any(), adminID).
		Return(nil)
	mockRepo.EXPECT().
		GetAdminByID(gomock.Any(), account.ID).
		Return(account, nil)
	mockRepo.EXPECT().
		UpdateLastLogin(gomock.Any(), account.ID).
		Return(nil)

	response, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		AdminID: adminID,
		OTP:     "123456",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	require.NotNil(t, response.Admin)
	assert.Equal(t, "Rajesh", response.Admin.Name)
	assert.Equal(t, adminID, response.Admin.ID)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepo(ctrl)
	mockGW := mocks.NewMockAdminGW(ctrl)
	uc := NewAdminUC(mockRepo, mockGW, testConfig())

	adminID := uuid.New().String()

	mockRepo.EXPECT().
		GetOTP(gomock.Any(), adminID).
		Return(&models.OTP{AdminID: adminID, Code: "123456", CreatedAt: time.Now()}, nil)

	response, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		AdminID: adminID,
		OTP:     "000000",
	})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, admin.ErrOTPExpired)
}

func TestVerifyOTP_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAdminRepo(ctrl)
	mockGW := mocks.NewMockAdminGW(ctrl)
	uc := NewAdminUC(mockRepo, mockGW, testConfig())

	adminID := uuid.New().String()

	mockRepo.EXPECT().
		GetOTP(gomock.Any(), adminID).
		Return(nil, errors.New("OTP not found or expired"))

	response, err := uc.VerifyOTP(context.Background(), &models.VerifyOTPRequest{
		AdminID: adminID,
		OTP:     "123456",
	})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, admin.ErrOTPExpired)
}
