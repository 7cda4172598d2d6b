// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"ayurfresh/internal/domain/service"
)

// codeGenerator issues UUID tokens for mail flows and crypto-random 6-digit
// OTPs for phone verification.
type codeGenerator struct{}

// NewCodeGenerator is the constructor for codeGenerator.
func NewCodeGenerator() service.CodeGenerator {
	return &codeGenerator{}
}

// Token returns a new unguessable token string.
func (g *codeGenerator) Token() string {
	return uuid.New().String()
}

// OTP returns a new 6-digit numeric one-time password, zero-padded.
func (g *codeGenerator) OTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		// crypto/rand only fails when the platform entropy source is broken.
		panic(fmt.Sprintf("otp generation: %v", err))
	}

	return fmt.Sprintf("%06d", n.Int64())
}
