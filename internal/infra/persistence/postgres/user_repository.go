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

// userRepository implements the domain.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a user with verification, preference and addresses.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Verification").
		Preload("Preference").
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, updated_at DESC")
		}).
		First(&userM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a user by email with the verification record.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

// FindByPhone retrieves a user by phone number.
func (repo *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return repo.findOne(ctx, "phone_number = ?", phone)
}

// FindByLogin retrieves a user whose email or phone number equals login.
func (repo *userRepository) FindByLogin(ctx context.Context, login string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ? OR phone_number = ?", login, login)
}

func (repo *userRepository) findOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Verification").
		Preload("Preference").
		Where(query, args...).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// Create persists a user and its associated verification and preference rows.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("email or phone number already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.Verification != nil {
		user.Verification.UserID = userM.ID
	}
	if user.Preference != nil {
		user.Preference.UserID = userM.ID
	}

	return nil
}

// Update saves the user row and, when loaded, its preference row.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	updates := map[string]any{
		"name":          user.Name,
		"phone_number":  user.PhoneNumber,
		"password_hash": user.PasswordHash,
		"role":          string(user.Role),
	}

	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(updates).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("phone number already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	if user.Preference != nil {
		prefM := &model.PreferenceModel{
			UserID:               user.ID,
			NotifyProductUpdates: user.Preference.NotifyProductUpdates,
		}
		if err := repo.db.WithContext(ctx).Save(prefM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update preference")
		}
	}

	return nil
}

// ListByRole retrieves a page of users with the given role, newest first.
func (repo *userRepository) ListByRole(ctx context.Context, role entity.Role, params repository.ListParams) ([]*entity.User, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("role = ?", string(role))

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone_number ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users by role")
	}

	var userModels []*model.UserModel
	err := query.
		Preload("Verification").
		Preload("Addresses").
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit()).
		Find(&userModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users by role")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, total, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PhoneNumber:  data.PhoneNumber,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	user.Verification = toVerificationDomain(data.Verification)
	if data.Preference != nil {
		user.Preference = &entity.Preference{
			UserID:               data.Preference.UserID,
			NotifyProductUpdates: data.Preference.NotifyProductUpdates,
			UpdatedAt:            data.Preference.UpdatedAt,
		}
	}
	for _, addressM := range data.Addresses {
		user.Addresses = append(user.Addresses, toAddressDomain(addressM))
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PhoneNumber:  data.PhoneNumber,
		PasswordHash: data.PasswordHash,
		Role:         string(data.Role),
	}

	userM.Verification = fromVerificationDomain(data.Verification)
	if data.Preference != nil {
		userM.Preference = &model.PreferenceModel{
			NotifyProductUpdates: data.Preference.NotifyProductUpdates,
		}
	}

	return userM
}
