package impl

import (
	"context"
	"testing"

	"ayurfresh/internal/domain/entity"
	domainerrors "ayurfresh/internal/domain/errors"
	"ayurfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartFixtures struct {
	service usecase.CartUsecase
	store   *memStore
	factory *fakeFactory
}

func createTestCartService(t *testing.T) cartFixtures {
	t.Helper()

	store := newMemStore()
	factory := newFakeFactory(store)

	service := NewCartService(CartServiceParams{
		TxManager: &fakeTxManager{factory: factory},
		CartRepo:  factory.cartRepo,
		Logger:    newDiscardLogger(),
	})

	return cartFixtures{service: service, store: store, factory: factory}
}

func seedProduct(store *memStore, name, slug string, price float64) *entity.Product {
	return store.addProduct(&entity.Product{
		Name:  name,
		Slug:  slug,
		Price: price,
	})
}

func (fx cartFixtures) lineQuantity(t *testing.T, userID uuid.UUID, productID uuid.UUID) int {
	t.Helper()

	cart, err := fx.factory.cartRepo.FindByUser(context.Background(), userID)
	require.NoError(t, err)
	item, err := fx.factory.cartRepo.FindItem(context.Background(), cart.ID, productID)
	require.NoError(t, err)

	return item.Quantity
}

func TestCartService_AddItem_CreatesCartLazily(t *testing.T) {
	fx := createTestCartService(t)
	product := seedProduct(fx.store, "Turmeric Powder", "turmeric-powder-1", 120)
	userID := uuid.New()

	out, err := fx.service.AddItem(context.Background(), userID, &usecase.AddItemInput{Slug: product.Slug})

	require.NoError(t, err)
	assert.Equal(t, "Turmeric Powder", out.ProductName)
	assert.Equal(t, 1, fx.lineQuantity(t, userID, product.ID))
}

func TestCartService_AddItem_AccumulatesQuantity(t *testing.T) {
	fx := createTestCartService(t)
	product := seedProduct(fx.store, "Turmeric Powder", "turmeric-powder-1", 120)
	userID := uuid.New()

	_, err := fx.service.AddItem(context.Background(), userID, &usecase.AddItemInput{Slug: product.Slug, Quantity: 2})
	require.NoError(t, err)
	_, err = fx.service.AddItem(context.Background(), userID, &usecase.AddItemInput{Slug: product.Slug, Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, 5, fx.lineQuantity(t, userID, product.ID))
}

func TestCartService_AddItem_ZeroQuantityDefaultsToOne(t *testing.T) {
	fx := createTestCartService(t)
	product := seedProduct(fx.store, "Turmeric Powder", "turmeric-powder-1", 120)
	userID := uuid.New()

	_, err := fx.service.AddItem(context.Background(), userID, &usecase.AddItemInput{Slug: product.Slug, Quantity: 0})

	require.NoError(t, err)
	assert.Equal(t, 1, fx.lineQuantity(t, userID, product.ID))
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.AddItem(context.Background(), uuid.New(), &usecase.AddItemInput{Slug: "no-such-slug"})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCartService_UpdateQuantity_Increment(t *testing.T) {
	fx := createTestCartService(t)
	product := seedProduct(fx.store, "Turmeric Powder", "turmeric-powder-1", 120)
	userID := uuid.New()
	_, err := fx.service.AddItem(context.Background(), userID, &usecase.AddItemInput{Slug: product.Slug, Quantity: 2})
	require.NoError(t, err)

	_, err = fx.service.UpdateQuantity(context.Background(), userID, &usecase.UpdateQuantityInput{
		Slug:      product.Slug,
		Direction: entity.QuantityIncrement,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, fx.lineQuantity(t, userID, product.ID))
}

func TestCartService_UpdateQuantity_Decrement(t *testing.T) {
	fx := createTestCartService(t)
	product := seedProduct(fx.store, "Turmeric Powder", "turmeric-powder-1", 120)
	userID := uuid.New()
	_, err := fx.service.AddItem(context.Background(), userID, &usecase.AddItemInput{Slug: product.Slug, Quantity: 2})
	require.NoError(t, err)

	_, err = fx.service.UpdateQuantity(context.Background(), userID, &usecase.UpdateQuantityInput{
		Slug:      product.Slug,
		Direction: entity.QuantityDecrement,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, fx.lineQuantity(t, userID, product.ID))
}

func TestCartService_UpdateQuantity_DecrementAtOneRemovesLine(t *testing.T) {
	fx := createTestCartService(t)
	product := seedProduct(fx.store, "Turmeric Powder", "turmeric-powder-1", 120)
	userID := uuid.New()
	_, err := fx.service.AddItem(context.Background(), userID, &usecase.AddItemInput{Slug: product.Slug, Quantity: 1})
	require.NoError(t, err)

	_, err = fx.service.UpdateQuantity(context.Background(), userID, &usecase.UpdateQuantityInput{
		Slug:      product.Slug,
		Direction: entity.QuantityDecrement,
	})
	require.NoError(t, err)

	cart, err := fx.factory.cartRepo.FindByUser(context.Background(), userID)
	require.NoError(t, err)
	_, err = fx.factory.cartRepo.FindItem(context.Background(), cart.ID, product.ID)
	assert.Error(t, err)
}

func TestCartService_UpdateQuantity_UnknownDirection(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.UpdateQuantity(context.Background(), uuid.New(), &usecase.UpdateQuantityInput{
		Slug:      "turmeric-powder-1",
		Direction: entity.QuantityDirection("DOUBLE"),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_UpdateQuantity_ProductNotInCart(t *testing.T) {
	fx := createTestCartService(t)
	inCart := seedProduct(fx.store, "Turmeric Powder", "turmeric-powder-1", 120)
	missing := seedProduct(fx.store, "Ashwagandha", "ashwagandha-1", 250)
	userID := uuid.New()
	_, err := fx.service.AddItem(context.Background(), userID, &usecase.AddItemInput{Slug: inCart.Slug})
	require.NoError(t, err)

	_, err = fx.service.UpdateQuantity(context.Background(), userID, &usecase.UpdateQuantityInput{
		Slug:      missing.Slug,
		Direction: entity.QuantityIncrement,
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestCartService_RemoveItem_DropsLineRegardlessOfQuantity(t *testing.T) {
	fx := createTestCartService(t)
	product := seedProduct(fx.store, "Turmeric Powder", "turmeric-powder-1", 120)
	userID := uuid.New()
	_, err := fx.service.AddItem(context.Background(), userID, &usecase.AddItemInput{Slug: product.Slug, Quantity: 4})
	require.NoError(t, err)

	out, err := fx.service.RemoveItem(context.Background(), userID, product.Slug)

	require.NoError(t, err)
	assert.Equal(t, product.Slug, out.Slug)

	cart, err := fx.factory.cartRepo.FindByUser(context.Background(), userID)
	require.NoError(t, err)
	_, err = fx.factory.cartRepo.FindItem(context.Background(), cart.ID, product.ID)
	assert.Error(t, err)
}

func TestCartService_GetCart_EmptyForNewUser(t *testing.T) {
	fx := createTestCartService(t)

	view, err := fx.service.GetCart(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.TotalPrice)
	assert.Zero(t, view.TotalOfferPrice)
}

func TestCartService_GetCart_AppliesOfferedPrices(t *testing.T) {
	fx := createTestCartService(t)

	offerType := entity.OfferPercentage
	offerValue := 10.0
	discounted := fx.store.addProduct(&entity.Product{
		Name:       "Turmeric Powder",
		Slug:       "turmeric-powder-1",
		Price:      120,
		OfferType:  &offerType,
		OfferValue: &offerValue,
	})
	plain := seedProduct(fx.store, "Ashwagandha", "ashwagandha-1", 250)

	userID := uuid.New()
	_, err := fx.service.AddItem(context.Background(), userID, &usecase.AddItemInput{Slug: discounted.Slug, Quantity: 2})
	require.NoError(t, err)
	_, err = fx.service.AddItem(context.Background(), userID, &usecase.AddItemInput{Slug: plain.Slug, Quantity: 1})
	require.NoError(t, err)

	view, err := fx.service.GetCart(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, view.Items, 2)

	// 120 at 10 percent off is 108; totals weigh quantity.
	assert.InDelta(t, 120*2+250, view.TotalPrice, 0.001)
	assert.InDelta(t, 108*2+250, view.TotalOfferPrice, 0.001)

	assert.Equal(t, discounted.Slug, view.Items[0].Product.Slug)
	assert.InDelta(t, 108, view.Items[0].Product.OfferedPrice, 0.001)
	assert.Equal(t, 2, view.Items[0].Quantity)
}
