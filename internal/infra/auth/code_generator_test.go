package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator_Token(t *testing.T) {
	gen := NewCodeGenerator()

	token := gen.Token()

	_, err := uuid.Parse(token)
	require.NoError(t, err)
	assert.NotEqual(t, token, gen.Token())
}

func TestCodeGenerator_OTP(t *testing.T) {
	gen := NewCodeGenerator()

	for range 50 {
		otp := gen.OTP()
		require.Len(t, otp, 6)
		for _, r := range otp {
			require.True(t, r >= '0' && r <= '9', "otp %q contains non-digit", otp)
		}
	}
}
