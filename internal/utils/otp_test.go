package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP(t *testing.T) {
	code, err := GenerateOTP(6)
	assert.NoError(t, err)
	assert.Len(t, code, 6)
	for _, c := range code {
		assert.True(t, c >= '0' && c <= '9')
	}
}

func TestGenerateOTP_Lengths(t *testing.T) {
	for _, length := range []int{4, 6, 8} {
		code, err := GenerateOTP(length)
		assert.NoError(t, err)
		assert.Len(t, code, length)
	}
}

func TestGenerateOTP_InvalidLength(t *testing.T) {
	_, err := GenerateOTP(0)
	assert.Error(t, err)

	_, err = GenerateOTP(-1)
	assert.Error(t, err)
}
