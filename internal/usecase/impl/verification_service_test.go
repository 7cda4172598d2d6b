package impl

import (
	"context"
	"testing"
	"time"

	"ayurfresh/config"
	"ayurfresh/internal/domain/entity"
	domainerrors "ayurfresh/internal/domain/errors"
	"ayurfresh/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type verificationFixtures struct {
	service usecase.VerificationUsecase
	store   *memStore
	factory *fakeFactory
}

func createTestVerificationService(t *testing.T) verificationFixtures {
	t.Helper()

	store := newMemStore()
	factory := newFakeFactory(store)

	service := NewVerificationService(VerificationServiceParams{
		TxManager: &fakeTxManager{factory: factory},
		Codes:     fakeCodes{token: "fresh-token", otp: "654321"},
		Notifier:  newTestNotifier(),
		Config:    &config.Config{},
		Logger:    newDiscardLogger(),
	})

	return verificationFixtures{service: service, store: store, factory: factory}
}

func seedPendingUser(store *memStore, email, emailToken string) *entity.User {
	phone := "9876543210"
	var tokenPtr *string
	if emailToken != "" {
		tokenPtr = &emailToken
	}

	return store.addUser(&entity.User{
		Name:        "Ravi",
		Email:       email,
		PhoneNumber: &phone,
		Role:        entity.RoleUser,
		Verification: &entity.Verification{
			EmailStatus:      entity.ChannelPending,
			EmailVerifyToken: tokenPtr,
			PhoneStatus:      entity.ChannelPending,
		},
	})
}

func TestVerificationService_VerifyEmail_Success(t *testing.T) {
	fx := createTestVerificationService(t)
	user := seedPendingUser(fx.store, "ravi@example.com", "mail-token")

	out, err := fx.service.VerifyEmail(context.Background(), "ravi@example.com", "mail-token")

	require.NoError(t, err)
	assert.Equal(t, "ravi@example.com", out.Email)
	assert.False(t, out.VerifiedAt.IsZero())

	verification, err := fx.factory.verificationRepo.FindByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ChannelVerified, verification.EmailStatus)
	assert.Nil(t, verification.EmailVerifyToken)
	require.NotNil(t, verification.EmailVerifiedAt)
}

func TestVerificationService_VerifyEmail_TokenWorksOnce(t *testing.T) {
	fx := createTestVerificationService(t)
	seedPendingUser(fx.store, "ravi@example.com", "mail-token")

	_, err := fx.service.VerifyEmail(context.Background(), "ravi@example.com", "mail-token")
	require.NoError(t, err)

	// The channel is terminal now, so the replay reads as already verified.
	_, err = fx.service.VerifyEmail(context.Background(), "ravi@example.com", "mail-token")
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyVerified)
}

func TestVerificationService_VerifyEmail_TokenMismatch(t *testing.T) {
	fx := createTestVerificationService(t)
	seedPendingUser(fx.store, "ravi@example.com", "mail-token")

	_, err := fx.service.VerifyEmail(context.Background(), "ravi@example.com", "wrong-token")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestVerificationService_VerifyEmail_UnknownEmail(t *testing.T) {
	fx := createTestVerificationService(t)

	_, err := fx.service.VerifyEmail(context.Background(), "nobody@example.com", "mail-token")

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestVerificationService_ResendEmailVerification_ReplacesToken(t *testing.T) {
	fx := createTestVerificationService(t)
	user := seedPendingUser(fx.store, "ravi@example.com", "stale-token")

	err := fx.service.ResendEmailVerification(context.Background(), "ravi@example.com")

	require.NoError(t, err)
	verification, err := fx.factory.verificationRepo.FindByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, verification.EmailVerifyToken)
	assert.Equal(t, "fresh-token", *verification.EmailVerifyToken)

	// The stale token no longer verifies anything.
	_, err = fx.service.VerifyEmail(context.Background(), "ravi@example.com", "stale-token")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestVerificationService_ResendEmailVerification_AlreadyVerified(t *testing.T) {
	fx := createTestVerificationService(t)
	user := seedPendingUser(fx.store, "ravi@example.com", "mail-token")
	user.Verification.EmailStatus = entity.ChannelVerified

	err := fx.service.ResendEmailVerification(context.Background(), "ravi@example.com")

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyVerified)
}

func TestVerificationService_SendPhoneOTP_StoresCodeWithExpiry(t *testing.T) {
	fx := createTestVerificationService(t)
	user := seedPendingUser(fx.store, "ravi@example.com", "")

	err := fx.service.SendPhoneOTP(context.Background(), user.ID)

	require.NoError(t, err)
	verification, err := fx.factory.verificationRepo.FindByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, verification.PhoneOTP)
	assert.Equal(t, "654321", *verification.PhoneOTP)
	require.NotNil(t, verification.OTPExpiry)
	assert.True(t, verification.OTPExpiry.After(time.Now()))
}

func TestVerificationService_SendPhoneOTP_NoPhoneOnRecord(t *testing.T) {
	fx := createTestVerificationService(t)
	user := seedPendingUser(fx.store, "ravi@example.com", "")
	user.PhoneNumber = nil

	err := fx.service.SendPhoneOTP(context.Background(), user.ID)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestVerificationService_VerifyPhoneOTP_Success(t *testing.T) {
	fx := createTestVerificationService(t)
	user := seedPendingUser(fx.store, "ravi@example.com", "")
	require.NoError(t, fx.service.SendPhoneOTP(context.Background(), user.ID))

	err := fx.service.VerifyPhoneOTP(context.Background(), user.ID, "654321")

	require.NoError(t, err)
	verification, err := fx.factory.verificationRepo.FindByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ChannelVerified, verification.PhoneStatus)
	assert.Nil(t, verification.PhoneOTP)
	assert.Nil(t, verification.OTPExpiry)
	require.NotNil(t, verification.PhoneVerifiedAt)
}

func TestVerificationService_VerifyPhoneOTP_NotSent(t *testing.T) {
	fx := createTestVerificationService(t)
	user := seedPendingUser(fx.store, "ravi@example.com", "")

	err := fx.service.VerifyPhoneOTP(context.Background(), user.ID, "654321")

	assert.ErrorIs(t, err, domainerrors.ErrOTPNotSent)
}

func TestVerificationService_VerifyPhoneOTP_ExpiredWinsOverMatch(t *testing.T) {
	fx := createTestVerificationService(t)
	user := seedPendingUser(fx.store, "ravi@example.com", "")
	require.NoError(t, fx.service.SendPhoneOTP(context.Background(), user.ID))

	verification, err := fx.factory.verificationRepo.FindByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	past := time.Now().Add(-time.Minute)
	verification.OTPExpiry = &past

	// Even the correct code reads as expired once past the window.
	err = fx.service.VerifyPhoneOTP(context.Background(), user.ID, "654321")
	assert.ErrorIs(t, err, domainerrors.ErrExpiredToken)
}

func TestVerificationService_VerifyPhoneOTP_Mismatch(t *testing.T) {
	fx := createTestVerificationService(t)
	user := seedPendingUser(fx.store, "ravi@example.com", "")
	require.NoError(t, fx.service.SendPhoneOTP(context.Background(), user.ID))

	err := fx.service.VerifyPhoneOTP(context.Background(), user.ID, "000000")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestVerificationService_VerifyPhoneOTP_AlreadyVerified(t *testing.T) {
	fx := createTestVerificationService(t)
	user := seedPendingUser(fx.store, "ravi@example.com", "")
	user.Verification.PhoneStatus = entity.ChannelVerified

	err := fx.service.VerifyPhoneOTP(context.Background(), user.ID, "654321")

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyVerified)
}
