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

// enquiryRepository implements the domain.EnquiryRepository interface.
type enquiryRepository struct {
	db *gorm.DB
}

// NewEnquiryRepository is the constructor for enquiryRepository.
func NewEnquiryRepository(db *gorm.DB) repository.EnquiryRepository {
	return &enquiryRepository{db: db}
}

func (repo *enquiryRepository) Create(ctx context.Context, enquiry *entity.Enquiry) error {
	enquiryM := fromEnquiryDomain(enquiry)

	if err := repo.db.WithContext(ctx).Create(enquiryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create enquiry")
	}

	enquiry.ID = enquiryM.ID
	enquiry.CreatedAt = enquiryM.CreatedAt
	enquiry.UpdatedAt = enquiryM.UpdatedAt

	return nil
}

func (repo *enquiryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Enquiry, error) {
	var enquiryM model.EnquiryModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&enquiryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEnquiryNotFound
		}

		return nil, errors.Wrap(err, "failed to find enquiry")
	}

	return toEnquiryDomain(&enquiryM), nil
}

// List returns enquiries with unanswered ones first so admins work the queue
// top down.
func (repo *enquiryRepository) List(ctx context.Context, params repository.ListParams) ([]*entity.Enquiry, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.EnquiryModel{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where(
			"company_name ILIKE ? OR contact_person ILIKE ? OR email ILIKE ? OR phone ILIKE ? OR business_need ILIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count enquiries")
	}

	var enquiryModels []*model.EnquiryModel
	err := query.
		Order("responded ASC, created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit()).
		Find(&enquiryModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list enquiries")
	}

	enquiries := make([]*entity.Enquiry, 0, len(enquiryModels))
	for _, enquiryM := range enquiryModels {
		enquiries = append(enquiries, toEnquiryDomain(enquiryM))
	}

	return enquiries, total, nil
}

func (repo *enquiryRepository) Update(ctx context.Context, enquiry *entity.Enquiry) error {
	err := repo.db.WithContext(ctx).
		Model(&model.EnquiryModel{}).
		Where("id = ?", enquiry.ID).
		Update("responded", enquiry.Responded).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update enquiry")
	}

	return nil
}

func (repo *enquiryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.EnquiryModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete enquiry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEnquiryNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toEnquiryDomain(data *model.EnquiryModel) *entity.Enquiry {
	if data == nil {
		return nil
	}

	return &entity.Enquiry{
		ID:            data.ID,
		CompanyName:   data.CompanyName,
		ContactPerson: data.ContactPerson,
		Email:         data.Email,
		Phone:         data.Phone,
		BusinessNeed:  data.BusinessNeed,
		Responded:     data.Responded,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromEnquiryDomain(data *entity.Enquiry) *model.EnquiryModel {
	if data == nil {
		return nil
	}

	return &model.EnquiryModel{
		ID:            data.ID,
		CompanyName:   data.CompanyName,
		ContactPerson: data.ContactPerson,
		Email:         data.Email,
		Phone:         data.Phone,
		BusinessNeed:  data.BusinessNeed,
		Responded:     data.Responded,
	}
}
