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

// productRepository implements the domain.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a product together with its images.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("product slug already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid category reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the entity with generated values
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt
	for i, imageM := range productM.Images {
		if i < len(product.Images) {
			product.Images[i].ID = imageM.ID
			product.Images[i].ProductID = imageM.ProductID
		}
	}

	return nil
}

// FindByID retrieves a product with its images.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindBySlug retrieves a product by its unique slug.
func (repo *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *productRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where(query, args...).
		First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

// List retrieves a page of products, newest first, with the total count.
func (repo *productRepository) List(ctx context.Context, params repository.ProductListParams) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}
	if params.DealType != nil {
		// DealTypes is a jsonb array of strings.
		query = query.Where("deal_types @> ?", `["`+string(*params.DealType)+`"]`)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	err := query.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit()).
		Find(&productModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// Update saves product fields. Images are managed through ReplaceImages.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	productM.Images = nil

	err := repo.db.WithContext(ctx).
		Omit("Images").
		Save(productM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("product slug already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid category reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// ReplaceImages swaps the product's image set in place.
func (repo *productRepository) ReplaceImages(ctx context.Context, productID uuid.UUID, images []*entity.ProductImage) error {
	if err := repo.db.WithContext(ctx).
		Delete(&model.ProductImageModel{}, "product_id = ?", productID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete old product images")
	}

	if len(images) == 0 {
		return nil
	}

	imageModels := make([]*model.ProductImageModel, 0, len(images))
	for _, image := range images {
		imageModels = append(imageModels, &model.ProductImageModel{
			ProductID: productID,
			URL:       image.URL,
			IsPrimary: image.IsPrimary,
			Position:  image.Position,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&imageModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert product images")
	}

	for i, imageM := range imageModels {
		images[i].ID = imageM.ID
		images[i].ProductID = imageM.ProductID
	}

	return nil
}

// Delete removes a product and its images.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Delete(&model.ProductImageModel{}, "product_id = ?", id).Error; err != nil {
		return errors.Wrap(err, "failed to delete product images")
	}

	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:           data.ID,
		Name:         data.Name,
		Slug:         data.Slug,
		Description:  data.Description,
		Price:        data.Price,
		OfferedPrice: data.OfferedPrice,
		Stocks:       data.Stocks,
		Contents:     data.Contents,
		CategoryID:   data.CategoryID,
		CreatedByID:  data.CreatedByID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.OfferType != nil {
		offerType := entity.OfferType(*data.OfferType)
		product.OfferType = &offerType
	}
	product.OfferValue = data.OfferValue

	for _, dealType := range data.DealTypes {
		product.DealTypes = append(product.DealTypes, entity.DealType(dealType))
	}
	for _, imageM := range data.Images {
		product.Images = append(product.Images, toProductImageDomain(imageM))
	}

	return product
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	productM := &model.ProductModel{
		ID:           data.ID,
		Name:         data.Name,
		Slug:         data.Slug,
		Description:  data.Description,
		Price:        data.Price,
		OfferValue:   data.OfferValue,
		OfferedPrice: data.OfferedPrice,
		Stocks:       data.Stocks,
		Contents:     data.Contents,
		CategoryID:   data.CategoryID,
		CreatedByID:  data.CreatedByID,
	}

	if data.OfferType != nil {
		offerType := string(*data.OfferType)
		productM.OfferType = &offerType
	}
	for _, dealType := range data.DealTypes {
		productM.DealTypes = append(productM.DealTypes, string(dealType))
	}
	for _, image := range data.Images {
		productM.Images = append(productM.Images, &model.ProductImageModel{
			ID:        image.ID,
			URL:       image.URL,
			IsPrimary: image.IsPrimary,
			Position:  image.Position,
		})
	}

	return productM
}

func toProductImageDomain(data *model.ProductImageModel) *entity.ProductImage {
	if data == nil {
		return nil
	}

	return &entity.ProductImage{
		ID:        data.ID,
		ProductID: data.ProductID,
		URL:       data.URL,
		IsPrimary: data.IsPrimary,
		Position:  data.Position,
		CreatedAt: data.CreatedAt,
	}
}
