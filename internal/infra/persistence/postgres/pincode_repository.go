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

// pincodeRepository implements the domain.PincodeRepository interface.
type pincodeRepository struct {
	db *gorm.DB
}

// NewPincodeRepository is the constructor for pincodeRepository.
func NewPincodeRepository(db *gorm.DB) repository.PincodeRepository {
	return &pincodeRepository{db: db}
}

func (repo *pincodeRepository) Create(ctx context.Context, pincode *entity.ServiceablePincode) error {
	pincodeM := fromPincodeDomain(pincode)

	if err := repo.db.WithContext(ctx).Create(pincodeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("pincode already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pincode")
	}

	pincode.ID = pincodeM.ID
	pincode.CreatedAt = pincodeM.CreatedAt
	pincode.UpdatedAt = pincodeM.UpdatedAt

	return nil
}

func (repo *pincodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceablePincode, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *pincodeRepository) FindByPincode(ctx context.Context, pincode string) (*entity.ServiceablePincode, error) {
	return repo.findOne(ctx, "pincode = ?", pincode)
}

func (repo *pincodeRepository) findOne(ctx context.Context, query string, args ...any) (*entity.ServiceablePincode, error) {
	var pincodeM model.ServiceablePincodeModel
	err := repo.db.WithContext(ctx).Where(query, args...).First(&pincodeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPincodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find pincode")
	}

	return toPincodeDomain(&pincodeM), nil
}

func (repo *pincodeRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.ServiceablePincode, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ServiceablePincodeModel{})

	if params.Search != "" {
		query = query.Where("pincode LIKE ?", params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count pincodes")
	}

	var pincodeModels []*model.ServiceablePincodeModel
	err := query.
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit()).
		Find(&pincodeModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list pincodes")
	}

	pincodes := make([]*entity.ServiceablePincode, 0, len(pincodeModels))
	for _, pincodeM := range pincodeModels {
		pincodes = append(pincodes, toPincodeDomain(pincodeM))
	}

	return pincodes, total, nil
}

func (repo *pincodeRepository) Update(ctx context.Context, pincode *entity.ServiceablePincode) error {
	pincodeM := fromPincodeDomain(pincode)

	if err := repo.db.WithContext(ctx).Save(pincodeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("pincode already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update pincode")
	}
	pincode.UpdatedAt = pincodeM.UpdatedAt

	return nil
}

func (repo *pincodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ServiceablePincodeModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete pincode")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPincodeNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPincodeDomain(data *model.ServiceablePincodeModel) *entity.ServiceablePincode {
	if data == nil {
		return nil
	}

	return &entity.ServiceablePincode{
		ID:             data.ID,
		Pincode:        data.Pincode,
		City:           data.City,
		State:          data.State,
		DeliveryDays:   data.DeliveryDays,
		DeliveryCharge: data.DeliveryCharge,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromPincodeDomain(data *entity.ServiceablePincode) *model.ServiceablePincodeModel {
	if data == nil {
		return nil
	}

	return &model.ServiceablePincodeModel{
		ID:             data.ID,
		Pincode:        data.Pincode,
		City:           data.City,
		State:          data.State,
		DeliveryDays:   data.DeliveryDays,
		DeliveryCharge: data.DeliveryCharge,
	}
}
