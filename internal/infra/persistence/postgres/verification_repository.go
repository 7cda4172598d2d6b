package postgres

import (
	"context"

	"ayurfresh/internal/domain/entity"
	domainerrors "ayurfresh/internal/domain/errors"
	"ayurfresh/internal/domain/repository"
	"ayurfresh/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// verificationRepository implements the domain.VerificationRepository interface.
type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository is the constructor for verificationRepository.
func NewVerificationRepository(db *gorm.DB) repository.VerificationRepository {
	return &verificationRepository{db: db}
}

// FindByUserID retrieves the verification record for a user.
func (repo *verificationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Verification, error) {
	var verificationM model.VerificationModel
	err := repo.db.WithContext(ctx).
		First(&verificationM, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification record")
	}

	return toVerificationDomain(&verificationM), nil
}

// Create persists a new verification record.
func (repo *verificationRepository) Create(ctx context.Context, verification *entity.Verification) error {
	verificationM := fromVerificationDomain(verification)
	verificationM.UserID = verification.UserID

	if err := repo.db.WithContext(ctx).Create(verificationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create verification record")
	}
	verification.CreatedAt = verificationM.CreatedAt
	verification.UpdatedAt = verificationM.UpdatedAt

	return nil
}

// Update writes the whole record, nulled token and expiry columns included,
// so clears are persisted exactly as set on the entity.
func (repo *verificationRepository) Update(ctx context.Context, verification *entity.Verification) error {
	updates := map[string]any{
		"email_status":         string(verification.EmailStatus),
		"email_verify_token":   verification.EmailVerifyToken,
		"email_verified_at":    verification.EmailVerifiedAt,
		"phone_status":         string(verification.PhoneStatus),
		"phone_otp":            verification.PhoneOTP,
		"otp_expiry":           verification.OTPExpiry,
		"phone_verified_at":    verification.PhoneVerifiedAt,
		"password_reset_token": verification.PasswordResetToken,
		"reset_token_expiry":   verification.ResetTokenExpiry,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.VerificationModel{}).
		Where("user_id = ?", verification.UserID).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update verification record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVerificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toVerificationDomain converts a GORM VerificationModel to its domain entity.
func toVerificationDomain(data *model.VerificationModel) *entity.Verification {
	if data == nil {
		return nil
	}

	return &entity.Verification{
		UserID:             data.UserID,
		EmailStatus:        entity.ChannelStatus(data.EmailStatus),
		EmailVerifyToken:   data.EmailVerifyToken,
		EmailVerifiedAt:    data.EmailVerifiedAt,
		PhoneStatus:        entity.ChannelStatus(data.PhoneStatus),
		PhoneOTP:           data.PhoneOTP,
		OTPExpiry:          data.OTPExpiry,
		PhoneVerifiedAt:    data.PhoneVerifiedAt,
		PasswordResetToken: data.PasswordResetToken,
		ResetTokenExpiry:   data.ResetTokenExpiry,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromVerificationDomain converts a domain Verification entity to its GORM model.
func fromVerificationDomain(data *entity.Verification) *model.VerificationModel {
	if data == nil {
		return nil
	}

	return &model.VerificationModel{
		UserID:             data.UserID,
		EmailStatus:        string(data.EmailStatus),
		EmailVerifyToken:   data.EmailVerifyToken,
		EmailVerifiedAt:    data.EmailVerifiedAt,
		PhoneStatus:        string(data.PhoneStatus),
		PhoneOTP:           data.PhoneOTP,
		OTPExpiry:          data.OTPExpiry,
		PhoneVerifiedAt:    data.PhoneVerifiedAt,
		PasswordResetToken: data.PasswordResetToken,
		ResetTokenExpiry:   data.ResetTokenExpiry,
	}
}
