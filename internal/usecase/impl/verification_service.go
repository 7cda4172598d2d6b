package impl

import (
	"context"
	"log/slog"
	"time"

	"ayurfresh/config"
	deliverycontext "ayurfresh/internal/delivery/context"
	"ayurfresh/internal/domain/entity"
	domainerrors "ayurfresh/internal/domain/errors"
	"ayurfresh/internal/domain/repository"
	"ayurfresh/internal/domain/service"
	"ayurfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	txManager repository.TransactionManager
	codes     service.CodeGenerator
	notifier  *notifier
	otpExpiry time.Duration
	logger    *slog.Logger
}

// VerificationServiceParams holds dependencies for verificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Codes     service.CodeGenerator
	Notifier  *notifier
	Config    *config.Config
	Logger    *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	otpExpiry := 5 * time.Minute
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.OTPExpiry > 0 {
		otpExpiry = params.Config.Auth.OTPExpiry
	}

	return &verificationService{
		txManager: params.TxManager,
		codes:     params.Codes,
		notifier:  params.Notifier,
		otpExpiry: otpExpiry,
		logger:    params.Logger,
	}
}

func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// VerifyEmail consumes an email verification token. On success the token is
// cleared in the same transaction that records the verified state, so the
// token works exactly once.
func (srv *verificationService) VerifyEmail(ctx context.Context, email, token string) (*usecase.VerifyEmailOutput, error) {
	srv.log(ctx).Info("Verifying email", slog.String("email", email))

	var verifiedAt time.Time
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		verificationRepo := repoFactory.VerificationRepo()

		user, findErr := userRepo.FindByEmail(ctx, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "no account for this email")
			}

			return errors.Wrap(findErr, "failed to load user for email verification")
		}

		verification, findErr := verificationRepo.FindByUserID(ctx, user.ID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load verification record")
		}

		if verification.EmailVerified() {
			return errors.Wrap(domainerrors.ErrAlreadyVerified, "email already verified")
		}

		if verification.EmailVerifyToken == nil || *verification.EmailVerifyToken != token {
			return errors.Wrap(domainerrors.ErrInvalidToken, "email verification token mismatch")
		}

		now := time.Now()
		verification.EmailStatus = entity.ChannelVerified
		verification.EmailVerifyToken = nil
		verification.EmailVerifiedAt = &now
		verifiedAt = now

		return errors.Wrap(verificationRepo.Update(ctx, verification), "failed to persist email verification")
	})

	if err != nil {
		srv.log(ctx).Warn("Email verification failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute email verification transaction")
	}

	srv.log(ctx).Info("Email verified", slog.String("email", email))

	return &usecase.VerifyEmailOutput{Email: email, VerifiedAt: verifiedAt}, nil
}

// ResendEmailVerification replaces the stored token so only the freshest
// link ever works, then mails it.
func (srv *verificationService) ResendEmailVerification(ctx context.Context, email string) error {
	srv.log(ctx).Info("Resending email verification", slog.String("email", email))

	token := srv.codes.Token()

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		verificationRepo := repoFactory.VerificationRepo()

		var findErr error
		user, findErr = userRepo.FindByEmail(ctx, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "no account for this email")
			}

			return errors.Wrap(findErr, "failed to load user for verification resend")
		}

		verification, findErr := verificationRepo.FindByUserID(ctx, user.ID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load verification record")
		}

		if verification.EmailVerified() {
			return errors.Wrap(domainerrors.ErrAlreadyVerified, "email already verified")
		}

		verification.EmailVerifyToken = &token

		return errors.Wrap(verificationRepo.Update(ctx, verification), "failed to store new verification token")
	})

	if err != nil {
		srv.log(ctx).Warn("Verification resend failed", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute verification resend transaction")
	}

	srv.notifier.SendVerificationMail(user.Email, user.Name, token)

	return nil
}

// SendPhoneOTP stores a fresh code with its expiry and texts it after the
// transaction commits.
func (srv *verificationService) SendPhoneOTP(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Sending phone OTP", slog.Any("userID", userID))

	otp := srv.codes.OTP()
	expiry := time.Now().Add(srv.otpExpiry)

	var phone string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		verificationRepo := repoFactory.VerificationRepo()

		user, findErr := userRepo.FindByID(ctx, userID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load user for OTP dispatch")
		}

		if user.PhoneNumber == nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, "no phone number on record")
		}
		phone = *user.PhoneNumber

		verification, findErr := verificationRepo.FindByUserID(ctx, userID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load verification record")
		}

		if verification.PhoneVerified() {
			return errors.Wrap(domainerrors.ErrAlreadyVerified, "phone already verified")
		}

		verification.PhoneOTP = &otp
		verification.OTPExpiry = &expiry

		return errors.Wrap(verificationRepo.Update(ctx, verification), "failed to store OTP")
	})

	if err != nil {
		srv.log(ctx).Warn("OTP dispatch failed", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute OTP dispatch transaction")
	}

	srv.notifier.SendOTP(phone, otp, srv.otpExpiry)

	return nil
}

// VerifyPhoneOTP checks the submitted code. Expiry wins over a value match
// so a stale code is always reported as expired.
func (srv *verificationService) VerifyPhoneOTP(ctx context.Context, userID uuid.UUID, otp string) error {
	srv.log(ctx).Info("Verifying phone OTP", slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		verificationRepo := repoFactory.VerificationRepo()

		verification, findErr := verificationRepo.FindByUserID(ctx, userID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load verification record")
		}

		if verification.PhoneVerified() {
			return errors.Wrap(domainerrors.ErrAlreadyVerified, "phone already verified")
		}

		if verification.PhoneOTP == nil {
			return errors.Wrap(domainerrors.ErrOTPNotSent, "no OTP on record")
		}
		if verification.OTPExpiry == nil || time.Now().After(*verification.OTPExpiry) {
			return errors.Wrap(domainerrors.ErrExpiredToken, "OTP expired")
		}
		if *verification.PhoneOTP != otp {
			return errors.Wrap(domainerrors.ErrInvalidToken, "OTP mismatch")
		}

		now := time.Now()
		verification.PhoneStatus = entity.ChannelVerified
		verification.PhoneOTP = nil
		verification.OTPExpiry = nil
		verification.PhoneVerifiedAt = &now

		return errors.Wrap(verificationRepo.Update(ctx, verification), "failed to persist phone verification")
	})

	if err != nil {
		srv.log(ctx).Warn("Phone OTP verification failed", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute phone verification transaction")
	}

	srv.log(ctx).Info("Phone verified", slog.Any("userID", userID))

	return nil
}
