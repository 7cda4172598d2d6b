package impl

import (
	"context"
	"log/slog"

	deliverycontext "ayurfresh/internal/delivery/context"
	"ayurfresh/internal/domain/entity"
	domainerrors "ayurfresh/internal/domain/errors"
	"ayurfresh/internal/domain/repository"
	"ayurfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the caller's own account view.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "user not found")
		}
		srv.log(ctx).Error("Failed to load profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return buildProfileOutput(user), nil
}

// UpdateProfile edits the caller's account. A phone number change resets
// phone verification back to pending so the new number must be re-verified.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*usecase.ProfileOutput, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("userID", userID))

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		verificationRepo := repoFactory.VerificationRepo()

		user, findErr := userRepo.FindByID(ctx, userID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(findErr, "failed to load user")
		}

		if input.Name != nil {
			user.Name = *input.Name
		}

		phoneChanged := input.PhoneNumber != nil &&
			(user.PhoneNumber == nil || *user.PhoneNumber != *input.PhoneNumber)
		if phoneChanged {
			if _, takenErr := userRepo.FindByPhone(ctx, *input.PhoneNumber); takenErr == nil {
				return errors.Wrap(domainerrors.NewFieldError("phone_number", "Phone number already registered"), "profile update conflict")
			} else if !errors.Is(takenErr, repository.ErrUserNotFound) {
				return errors.Wrap(takenErr, "failed to check phone number")
			}

			user.PhoneNumber = input.PhoneNumber

			verification, verErr := verificationRepo.FindByUserID(ctx, userID)
			if verErr != nil {
				return errors.Wrap(verErr, "failed to load verification record")
			}
			verification.PhoneStatus = entity.ChannelPending
			verification.PhoneOTP = nil
			verification.OTPExpiry = nil
			verification.PhoneVerifiedAt = nil
			if verErr := verificationRepo.Update(ctx, verification); verErr != nil {
				return errors.Wrap(verErr, "failed to reset phone verification")
			}
			user.Verification = verification
		}

		if input.NotifyProductUpdates != nil && user.Preference != nil {
			user.Preference.NotifyProductUpdates = *input.NotifyProductUpdates
		}

		// Update persists the preference row together with the user.
		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update user")
		}
		updated = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	return buildProfileOutput(updated), nil
}

// ListCustomers pages through customer accounts for the admin panel.
func (srv *profileService) ListCustomers(ctx context.Context, params repository.ListParams) (*usecase.CustomerListOutput, error) {
	customers, total, err := srv.userRepo.ListByRole(ctx, entity.RoleUser, params)
	if err != nil {
		srv.log(ctx).Error("Failed to list customers", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list customers")
	}

	page := params.Page
	if page < 1 {
		page = 1
	}

	return &usecase.CustomerListOutput{
		Customers: customers,
		Total:     total,
		Page:      page,
		PerPage:   params.Limit(),
	}, nil
}

func buildProfileOutput(user *entity.User) *usecase.ProfileOutput {
	out := &usecase.ProfileOutput{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		CreatedAt:   user.CreatedAt,
	}

	out.EmailVerified = user.Verification.EmailVerified()
	out.PhoneVerified = user.Verification.PhoneVerified()
	if user.Preference != nil {
		out.NotifyProductUpdates = user.Preference.NotifyProductUpdates
	}

	out.Addresses = make([]entity.Address, 0, len(user.Addresses))
	for _, address := range user.Addresses {
		out.Addresses = append(out.Addresses, *address)
	}

	return out
}
