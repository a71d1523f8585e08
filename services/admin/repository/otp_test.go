package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajeshk/portfolio/internal/pkg/constants"
	"github.com/rajeshk/portfolio/internal/pkg/database"
	"github.com/rajeshk/portfolio/internal/pkg/models"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}

func setupOTPRepoTest(t *testing.T) (*AdminRepo, *miniredis.Miniredis) {
	mr, client := setupMiniredis(t)

	cfg := &models.Config{}
	cfg.Admin.OTPExpirySecs = 30

	repo := &AdminRepo{
		cfg:         cfg,
		redisClient: &database.RedisClient{Client: client},
	}

	return repo, mr
}

func TestCreateOTP(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	otp := models.OTP{
		AdminID:   "abc123",
		Code:      "123456",
		CreatedAt: time.Now(),
	}

	err := repo.CreateOTP(context.Background(), &otp)
	assert.NoError(t, err)

	// Verify data was stored in Redis
	key := fmt.Sprintf(constants.KeyAdminOTP, otp.AdminID)
	val, err := mr.Get(key)
	assert.NoError(t, err)

	var storedOTP models.OTP
	err = json.Unmarshal([]byte(val), &storedOTP)
	assert.NoError(t, err)
	assert.Equal(t, otp.AdminID, storedOTP.AdminID)
	assert.Equal(t, otp.Code, storedOTP.Code)

	// Verify TTL matches the configured expiry
	ttl := mr.TTL(key)
	assert.True(t, ttl > 0)
	assert.True(t, ttl <= 30*time.Second)
}

func TestCreateOTP_RedisError(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)

	// Force Redis to fail by closing the connection
	mr.Close()

	otp := models.OTP{
		AdminID: "abc123",
		Code:    "123456",
	}

	err := repo.CreateOTP(context.Background(), &otp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store OTP in Redis")
}

func TestGetOTP(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	otp := models.OTP{
		AdminID:   "abc123",
		Code:      "123456",
		CreatedAt: time.Now(),
	}
	otpJSON, _ := json.Marshal(otp)
	key := fmt.Sprintf(constants.KeyAdminOTP, otp.AdminID)
	mr.Set(key, string(otpJSON))
	mr.SetTTL(key, 30*time.Second)

	got, err := repo.GetOTP(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", got.AdminID)
	assert.Equal(t, "123456", got.Code)
}

func TestGetOTP_NotFound(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	got, err := repo.GetOTP(context.Background(), "missing")
	assert.Nil(t, got)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "OTP not found or expired")
}

func TestGetOTP_ExpiredByTTL(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	otp := models.OTP{
		AdminID:   "abc123",
		Code:      "123456",
		CreatedAt: time.Now(),
	}
	otpJSON, _ := json.Marshal(otp)
	key := fmt.Sprintf(constants.KeyAdminOTP, otp.AdminID)
	mr.Set(key, string(otpJSON))
	mr.SetTTL(key, 30*time.Second)

	// Advance past the TTL so the key expires server-side
	mr.FastForward(31 * time.Second)

	got, err := repo.GetOTP(context.Background(), "abc123")
	assert.Nil(t, got)
	assert.Error(t, err)
}

func TestDeleteOTP(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)
	defer mr.Close()

	otp := models.OTP{
		AdminID:   "abc123",
		Code:      "123456",
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.CreateOTP(context.Background(), &otp))

	err := repo.DeleteOTP(context.Background(), "abc123")
	assert.NoError(t, err)

	key := fmt.Sprintf(constants.KeyAdminOTP, "abc123")
	assert.False(t, mr.Exists(key))
}
