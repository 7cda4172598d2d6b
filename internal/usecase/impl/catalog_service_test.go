package impl

import (
	"context"
	"strings"
	"testing"

	"ayurfresh/internal/domain/entity"
	domainerrors "ayurfresh/internal/domain/errors"
	"ayurfresh/internal/domain/service"
	"ayurfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogFixtures struct {
	service    usecase.CatalogUsecase
	store      *memStore
	factory    *fakeFactory
	imageStore *fakeImageStore
}

func createTestCatalogService(t *testing.T) catalogFixtures {
	t.Helper()

	store := newMemStore()
	factory := newFakeFactory(store)
	imageStore := &fakeImageStore{}

	service := NewCatalogService(CatalogServiceParams{
		TxManager:   &fakeTxManager{factory: factory},
		ProductRepo: factory.productRepo,
		ImageStore:  imageStore,
		Logger:      newDiscardLogger(),
	})

	return catalogFixtures{service: service, store: store, factory: factory, imageStore: imageStore}
}

func seedCategory(store *memStore, name string) *entity.Category {
	return store.addCategory(&entity.Category{
		Name: name,
		Slug: entity.Slugify(name),
	})
}

func TestCatalogService_CreateProduct_DerivesSlugAndOfferedPrice(t *testing.T) {
	fx := createTestCatalogService(t)
	category := seedCategory(fx.store, "Powders")
	adminID := uuid.New()

	offerType := entity.OfferPercentage
	offerValue := 25.0
	product, err := fx.service.CreateProduct(context.Background(), adminID, &usecase.CreateProductInput{
		Name:        "Turmeric Powder",
		Description: "Single-origin turmeric",
		Price:       200,
		OfferType:   &offerType,
		OfferValue:  &offerValue,
		Stocks:      40,
		CategoryID:  category.ID,
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(product.Slug, "turmeric-powder-"))
	assert.InDelta(t, 150, product.OfferedPrice, 0.001)
	assert.Equal(t, adminID, product.CreatedByID)

	stored, err := fx.factory.productRepo.FindBySlug(context.Background(), product.Slug)
	require.NoError(t, err)
	assert.Equal(t, product.ID, stored.ID)
}

func TestCatalogService_CreateProduct_UploadsImagesWithPrimaryFirst(t *testing.T) {
	fx := createTestCatalogService(t)
	category := seedCategory(fx.store, "Powders")

	product, err := fx.service.CreateProduct(context.Background(), uuid.New(), &usecase.CreateProductInput{
		Name:        "Turmeric Powder",
		Description: "Single-origin turmeric",
		Price:       200,
		CategoryID:  category.ID,
		Images: []service.ImageUpload{
			{Filename: "front.jpg", ContentType: "image/jpeg"},
			{Filename: "back.jpg", ContentType: "image/jpeg"},
		},
	})

	require.NoError(t, err)
	require.Len(t, product.Images, 2)
	assert.True(t, product.Images[0].IsPrimary)
	assert.False(t, product.Images[1].IsPrimary)
	assert.Equal(t, 0, product.Images[0].Position)
	assert.Contains(t, product.Images[0].URL, "products/"+product.Slug+"/front.jpg")
}

func TestCatalogService_CreateProduct_UnknownCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.CreateProduct(context.Background(), uuid.New(), &usecase.CreateProductInput{
		Name:        "Turmeric Powder",
		Description: "Single-origin turmeric",
		Price:       200,
		CategoryID:  uuid.New(),
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_CreateProduct_ImageUploadFailureAbortsCreate(t *testing.T) {
	fx := createTestCatalogService(t)
	category := seedCategory(fx.store, "Powders")
	fx.imageStore.err = errors.New("bucket unavailable")

	_, err := fx.service.CreateProduct(context.Background(), uuid.New(), &usecase.CreateProductInput{
		Name:        "Turmeric Powder",
		Description: "Single-origin turmeric",
		Price:       200,
		CategoryID:  category.ID,
		Images:      []service.ImageUpload{{Filename: "front.jpg"}},
	})

	require.Error(t, err)

	// Nothing was persisted.
	out, listErr := fx.service.ListProducts(context.Background(), &usecase.ListProductsInput{})
	require.NoError(t, listErr)
	assert.Zero(t, out.Total)
}

func TestCatalogService_UpdateProduct_RecomputesOfferedPrice(t *testing.T) {
	fx := createTestCatalogService(t)
	category := seedCategory(fx.store, "Powders")

	product, err := fx.service.CreateProduct(context.Background(), uuid.New(), &usecase.CreateProductInput{
		Name:        "Turmeric Powder",
		Description: "Single-origin turmeric",
		Price:       200,
		CategoryID:  category.ID,
	})
	require.NoError(t, err)
	assert.InDelta(t, 200, product.OfferedPrice, 0.001)

	offerType := entity.OfferPriceOff
	offerValue := 60.0
	updated, err := fx.service.UpdateProduct(context.Background(), product.ID, &usecase.UpdateProductInput{
		OfferType:  &offerType,
		OfferValue: &offerValue,
	})

	require.NoError(t, err)
	assert.InDelta(t, 140, updated.OfferedPrice, 0.001)
}

func TestCatalogService_UpdateProduct_ClearOffer(t *testing.T) {
	fx := createTestCatalogService(t)
	category := seedCategory(fx.store, "Powders")

	offerType := entity.OfferPercentage
	offerValue := 50.0
	product, err := fx.service.CreateProduct(context.Background(), uuid.New(), &usecase.CreateProductInput{
		Name:        "Turmeric Powder",
		Description: "Single-origin turmeric",
		Price:       200,
		OfferType:   &offerType,
		OfferValue:  &offerValue,
		CategoryID:  category.ID,
	})
	require.NoError(t, err)

	updated, err := fx.service.UpdateProduct(context.Background(), product.ID, &usecase.UpdateProductInput{ClearOffer: true})

	require.NoError(t, err)
	assert.Nil(t, updated.OfferType)
	assert.Nil(t, updated.OfferValue)
	assert.InDelta(t, 200, updated.OfferedPrice, 0.001)
}

func TestCatalogService_UpdateProduct_UnknownProduct(t *testing.T) {
	fx := createTestCatalogService(t)

	name := "Renamed"
	_, err := fx.service.UpdateProduct(context.Background(), uuid.New(), &usecase.UpdateProductInput{Name: &name})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	fx := createTestCatalogService(t)
	category := seedCategory(fx.store, "Powders")

	product, err := fx.service.CreateProduct(context.Background(), uuid.New(), &usecase.CreateProductInput{
		Name:        "Turmeric Powder",
		Description: "Single-origin turmeric",
		Price:       200,
		CategoryID:  category.ID,
	})
	require.NoError(t, err)

	require.NoError(t, fx.service.DeleteProduct(context.Background(), product.ID))

	_, err = fx.service.GetProduct(context.Background(), product.Slug)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = fx.service.DeleteProduct(context.Background(), product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCatalogService_ListProducts_Pagination(t *testing.T) {
	fx := createTestCatalogService(t)
	category := seedCategory(fx.store, "Powders")

	for _, name := range []string{"Turmeric", "Ashwagandha", "Brahmi"} {
		_, err := fx.service.CreateProduct(context.Background(), uuid.New(), &usecase.CreateProductInput{
			Name:        name,
			Description: name + " powder",
			Price:       100,
			CategoryID:  category.ID,
		})
		require.NoError(t, err)
	}

	out, err := fx.service.ListProducts(context.Background(), &usecase.ListProductsInput{Page: 1, PerPage: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Total)
	assert.Len(t, out.Products, 2)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 2, out.PerPage)
}
