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

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	codes            service.CodeGenerator
	notifier         *notifier
	resetTokenExpiry time.Duration
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Codes        service.CodeGenerator
	Notifier     *notifier
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	resetTokenExpiry := 30 * time.Minute
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.ResetTokenExpiry > 0 {
		resetTokenExpiry = params.Config.Auth.ResetTokenExpiry
	}

	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		codes:            params.Codes,
		notifier:         params.Notifier,
		resetTokenExpiry: resetTokenExpiry,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the user, its verification record and its preference row
// in one transaction, then dispatches the verification mail.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	verifyToken := srv.codes.Token()

	var newUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := srv.checkRegistrationConflicts(ctx, userRepo, input); err != nil {
			return err
		}

		newUser = &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			PhoneNumber:  input.PhoneNumber,
			PasswordHash: hashedPassword,
			Role:         entity.RoleUser,
			Verification: &entity.Verification{
				EmailStatus:      entity.ChannelPending,
				EmailVerifyToken: &verifyToken,
				PhoneStatus:      entity.ChannelPending,
			},
			Preference: &entity.Preference{NotifyProductUpdates: true},
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.notifier.SendVerificationMail(newUser.Email, newUser.Name, verifyToken)
	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{
		UserID: newUser.ID,
		Name:   newUser.Name,
		Email:  newUser.Email,
	}, nil
}

// checkRegistrationConflicts rejects a taken email or phone number, naming
// the offending field so clients can highlight it.
func (srv *authService) checkRegistrationConflicts(ctx context.Context, userRepo repository.UserRepository, input *usecase.RegisterInput) error {
	if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
		return errors.Wrap(domainerrors.NewFieldError("email", "Email already registered"), "registration conflict")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check email during registration")
	}

	if input.PhoneNumber != nil {
		if _, err := userRepo.FindByPhone(ctx, *input.PhoneNumber); err == nil {
			return errors.Wrap(domainerrors.NewFieldError("phone_number", "Phone number already registered"), "registration conflict")
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check phone during registration")
		}
	}

	return nil
}

// Login authenticates by email or phone number plus password.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("login", input.Login))

	user, err := srv.userRepo.FindByLogin(ctx, input.Login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown account", slog.String("login", input.Login))

			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// bcrypt comparison happens outside any transaction, it is CPU-bound.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "login failed")
	}

	if !user.Verification.EmailVerified() {
		srv.log(ctx).Warn("Login blocked, email not verified", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrEmailNotVerified, "login blocked")
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	}, nil
}

// ChangePassword rotates the password of an authenticated user.
func (srv *authService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Changing password", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load user for password change")
	}

	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected, old password mismatch", slog.Any("userID", userID))

		return errors.Wrap(domainerrors.ErrUnauthorized, "old password is incorrect")
	}

	hashed, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	user.PasswordHash = hashed
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to persist new password")
	}

	srv.notifier.SendPasswordChangedMail(user.Email, user.Name)
	srv.log(ctx).Info("Password changed", slog.Any("userID", userID))

	return nil
}

// ForgotPassword issues a single-use reset token and mails the reset link.
// Reissuing invalidates any earlier token.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	srv.log(ctx).Info("Password reset requested", slog.String("email", input.Email))

	resetToken := srv.codes.Token()
	expiry := time.Now().Add(srv.resetTokenExpiry)

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		verificationRepo := repoFactory.VerificationRepo()

		var findErr error
		user, findErr = userRepo.FindByEmail(ctx, input.Email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "no account for this email")
			}

			return errors.Wrap(findErr, "failed to load user for password reset")
		}

		verification, findErr := verificationRepo.FindByUserID(ctx, user.ID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load verification record for password reset")
		}

		verification.PasswordResetToken = &resetToken
		verification.ResetTokenExpiry = &expiry

		return errors.Wrap(verificationRepo.Update(ctx, verification), "failed to store reset token")
	})

	if err != nil {
		srv.log(ctx).Warn("Password reset request failed", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute forgot password transaction")
	}

	srv.notifier.SendPasswordResetMail(user.Email, user.Name, resetToken)

	return nil
}

// ResetForgottenPassword consumes a reset token. The token and its expiry
// are cleared in the same transaction that writes the new password hash, so
// a token can never be replayed.
func (srv *authService) ResetForgottenPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	srv.log(ctx).Info("Consuming password reset token", slog.String("email", input.Email))

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password for reset")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		verificationRepo := repoFactory.VerificationRepo()

		user, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "no account for this email")
			}

			return errors.Wrap(findErr, "failed to load user for password reset")
		}

		verification, findErr := verificationRepo.FindByUserID(ctx, user.ID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load verification record for password reset")
		}

		if verification.PasswordResetToken == nil || *verification.PasswordResetToken != input.Token {
			return errors.Wrap(domainerrors.ErrInvalidToken, "reset token mismatch")
		}
		if verification.ResetTokenExpiry == nil || time.Now().After(*verification.ResetTokenExpiry) {
			return errors.Wrap(domainerrors.ErrExpiredToken, "reset token expired")
		}

		user.PasswordHash = hashed
		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to persist reset password")
		}

		verification.PasswordResetToken = nil
		verification.ResetTokenExpiry = nil

		return errors.Wrap(verificationRepo.Update(ctx, verification), "failed to clear reset token")
	})

	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	srv.log(ctx).Info("Password reset completed", slog.String("email", input.Email))

	return nil
}
