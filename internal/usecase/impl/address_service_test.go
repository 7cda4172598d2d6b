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

type addressFixtures struct {
	service   usecase.AddressUsecase
	factory   *fakeFactory
	directory *fakeDirectory
}

func createTestAddressService(t *testing.T) addressFixtures {
	t.Helper()

	store := newMemStore()
	factory := newFakeFactory(store)
	directory := &fakeDirectory{}

	service := NewAddressService(AddressServiceParams{
		TxManager:   &fakeTxManager{factory: factory},
		AddressRepo: factory.addressRepo,
		Directory:   directory,
		Logger:      newDiscardLogger(),
	})

	return addressFixtures{service: service, factory: factory, directory: directory}
}

func newAddressInput(primary bool) *usecase.CreateAddressInput {
	return &usecase.CreateAddressInput{
		Phone:       "9876543210",
		HouseNo:     "12A",
		Street:      "MG Road",
		City:        "Kochi",
		State:       "Kerala",
		Pincode:     "682001",
		AddressType: entity.AddressHome,
		IsPrimary:   primary,
	}
}

func TestAddressService_Create_FirstAddressBecomesPrimary(t *testing.T) {
	fx := createTestAddressService(t)
	userID := uuid.New()

	created, err := fx.service.Create(context.Background(), userID, newAddressInput(false))

	require.NoError(t, err)
	assert.True(t, created.IsPrimary)
	assert.Equal(t, "India", created.Country)
}

func TestAddressService_Create_PrimaryDisplacesExisting(t *testing.T) {
	fx := createTestAddressService(t)
	userID := uuid.New()

	first, err := fx.service.Create(context.Background(), userID, newAddressInput(false))
	require.NoError(t, err)
	require.True(t, first.IsPrimary)

	second, err := fx.service.Create(context.Background(), userID, newAddressInput(true))
	require.NoError(t, err)
	assert.True(t, second.IsPrimary)

	reloaded, err := fx.factory.addressRepo.FindByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsPrimary)
}

func TestAddressService_Create_NonPrimaryKeepsExistingPrimary(t *testing.T) {
	fx := createTestAddressService(t)
	userID := uuid.New()

	first, err := fx.service.Create(context.Background(), userID, newAddressInput(false))
	require.NoError(t, err)

	second, err := fx.service.Create(context.Background(), userID, newAddressInput(false))
	require.NoError(t, err)
	assert.False(t, second.IsPrimary)

	reloaded, err := fx.factory.addressRepo.FindByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsPrimary)
}

func TestAddressService_Update_PromoteClearsOthers(t *testing.T) {
	fx := createTestAddressService(t)
	userID := uuid.New()

	first, err := fx.service.Create(context.Background(), userID, newAddressInput(false))
	require.NoError(t, err)
	second, err := fx.service.Create(context.Background(), userID, newAddressInput(false))
	require.NoError(t, err)

	isPrimary := true
	city := "Thrissur"
	updated, err := fx.service.Update(context.Background(), userID, second.ID, &usecase.UpdateAddressInput{
		City:      &city,
		IsPrimary: &isPrimary,
	})

	require.NoError(t, err)
	assert.True(t, updated.IsPrimary)
	assert.Equal(t, "Thrissur", updated.City)

	reloaded, err := fx.factory.addressRepo.FindByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsPrimary)
}

func TestAddressService_Update_NotOwned(t *testing.T) {
	fx := createTestAddressService(t)
	owner := uuid.New()

	address, err := fx.service.Create(context.Background(), owner, newAddressInput(false))
	require.NoError(t, err)

	city := "Thrissur"
	_, err = fx.service.Update(context.Background(), uuid.New(), address.ID, &usecase.UpdateAddressInput{City: &city})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAddressService_SetPrimary_MovesFlag(t *testing.T) {
	fx := createTestAddressService(t)
	userID := uuid.New()

	first, err := fx.service.Create(context.Background(), userID, newAddressInput(false))
	require.NoError(t, err)
	second, err := fx.service.Create(context.Background(), userID, newAddressInput(false))
	require.NoError(t, err)

	promoted, err := fx.service.SetPrimary(context.Background(), userID, second.ID)

	require.NoError(t, err)
	assert.True(t, promoted.IsPrimary)

	reloaded, err := fx.factory.addressRepo.FindByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsPrimary)
}

func TestAddressService_SetPrimary_UnknownAddress(t *testing.T) {
	fx := createTestAddressService(t)

	_, err := fx.service.SetPrimary(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAddressService_Delete_PrimaryPromotesLatest(t *testing.T) {
	fx := createTestAddressService(t)
	userID := uuid.New()

	primary, err := fx.service.Create(context.Background(), userID, newAddressInput(true))
	require.NoError(t, err)
	_, err = fx.service.Create(context.Background(), userID, newAddressInput(false))
	require.NoError(t, err)
	latest, err := fx.service.Create(context.Background(), userID, newAddressInput(false))
	require.NoError(t, err)

	require.NoError(t, fx.service.Delete(context.Background(), userID, primary.ID))

	reloaded, err := fx.factory.addressRepo.FindByID(context.Background(), latest.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsPrimary)
}

func TestAddressService_Delete_NonPrimaryLeavesPrimaryAlone(t *testing.T) {
	fx := createTestAddressService(t)
	userID := uuid.New()

	primary, err := fx.service.Create(context.Background(), userID, newAddressInput(true))
	require.NoError(t, err)
	other, err := fx.service.Create(context.Background(), userID, newAddressInput(false))
	require.NoError(t, err)

	require.NoError(t, fx.service.Delete(context.Background(), userID, other.ID))

	reloaded, err := fx.factory.addressRepo.FindByID(context.Background(), primary.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsPrimary)
}

func TestAddressService_Delete_LastAddress(t *testing.T) {
	fx := createTestAddressService(t)
	userID := uuid.New()

	only, err := fx.service.Create(context.Background(), userID, newAddressInput(false))
	require.NoError(t, err)

	require.NoError(t, fx.service.Delete(context.Background(), userID, only.ID))

	addresses, err := fx.service.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, addresses)
}

func TestAddressService_List_PrimaryFirst(t *testing.T) {
	fx := createTestAddressService(t)
	userID := uuid.New()

	_, err := fx.service.Create(context.Background(), userID, newAddressInput(false))
	require.NoError(t, err)
	primary, err := fx.service.Create(context.Background(), userID, newAddressInput(true))
	require.NoError(t, err)
	_, err = fx.service.Create(context.Background(), userID, newAddressInput(false))
	require.NoError(t, err)

	addresses, err := fx.service.List(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, addresses, 3)
	assert.Equal(t, primary.ID, addresses[0].ID)
}

func TestAddressService_LookupPincode_MalformedPincode(t *testing.T) {
	fx := createTestAddressService(t)

	for _, pincode := range []string{"12345", "1234567", "12345a", "082018"} {
		_, err := fx.service.LookupPincode(context.Background(), pincode)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "pincode %q", pincode)
	}
}

func TestAddressService_LookupPincode_DedupesAreasByName(t *testing.T) {
	fx := createTestAddressService(t)
	fx.directory.areas = []entity.PincodeArea{
		{Name: "Ernakulam North", Type: "S.O"},
		{Name: "Ernakulam North", Type: "B.O"},
		{Name: "Kaloor", Type: "S.O"},
	}

	out, err := fx.service.LookupPincode(context.Background(), "682018")

	require.NoError(t, err)
	require.Len(t, out.Areas, 2)
	assert.Equal(t, "Ernakulam North", out.Areas[0].Name)
	assert.Equal(t, "Kaloor", out.Areas[1].Name)
}

func TestAddressService_LookupPincode(t *testing.T) {
	fx := createTestAddressService(t)
	fx.directory.areas = []entity.PincodeArea{
		{Name: "Ernakulam North", District: "Ernakulam", State: "Kerala"},
	}

	out, err := fx.service.LookupPincode(context.Background(), "682018")

	require.NoError(t, err)
	assert.Equal(t, "682018", out.Pincode)
	require.Len(t, out.Areas, 1)
	assert.Equal(t, "Ernakulam North", out.Areas[0].Name)
}
