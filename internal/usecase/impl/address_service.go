package impl

import (
	"context"
	"log/slog"

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

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	directory   service.PincodeDirectory
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for addressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Directory   service.PincodeDirectory
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		directory:   params.Directory,
		logger:      params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the user's addresses, primary first.
func (srv *addressService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list addresses", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// Create adds an address. The user's first address is always promoted to
// primary; when the input asks for primary, every other primary flag is
// cleared inside the same transaction.
func (srv *addressService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateAddressInput) (*entity.Address, error) {
	srv.log(ctx).Info("Creating address", slog.Any("userID", userID))

	address := &entity.Address{
		UserID:      userID,
		Phone:       input.Phone,
		HouseNo:     input.HouseNo,
		Street:      input.Street,
		Landmark:    input.Landmark,
		City:        input.City,
		State:       input.State,
		Country:     input.Country,
		Pincode:     input.Pincode,
		AddressType: input.AddressType,
		IsPrimary:   input.IsPrimary,
	}
	if address.Country == "" {
		address.Country = "India"
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		count, countErr := addressRepo.CountByUser(ctx, userID)
		if countErr != nil {
			return errors.Wrap(countErr, "failed to count addresses")
		}

		if count == 0 {
			// First address is always the primary one.
			address.IsPrimary = true
		} else if address.IsPrimary {
			if clearErr := addressRepo.ClearPrimary(ctx, userID); clearErr != nil {
				return errors.Wrap(clearErr, "failed to clear primary flags")
			}
		}

		return errors.Wrap(addressRepo.Create(ctx, address), "failed to create address")
	})

	if err != nil {
		srv.log(ctx).Error("Failed to create address", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute address create transaction")
	}

	srv.log(ctx).Debug("Address created", slog.Any("addressID", address.ID), slog.Bool("isPrimary", address.IsPrimary))

	return address, nil
}

// Update applies a partial update to an owned address.
func (srv *addressService) Update(ctx context.Context, userID, addressID uuid.UUID, input *usecase.UpdateAddressInput) (*entity.Address, error) {
	srv.log(ctx).Info("Updating address", slog.Any("userID", userID), slog.Any("addressID", addressID))

	var updated *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, findErr := srv.findOwnedAddress(ctx, addressRepo, userID, addressID)
		if findErr != nil {
			return findErr
		}

		applyAddressUpdate(address, input)

		if input.IsPrimary != nil && *input.IsPrimary && !address.IsPrimary {
			if clearErr := addressRepo.ClearPrimary(ctx, userID); clearErr != nil {
				return errors.Wrap(clearErr, "failed to clear primary flags")
			}
			address.IsPrimary = true
		}

		if updateErr := addressRepo.Update(ctx, address); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update address")
		}
		updated = address

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update address", slog.Any("addressID", addressID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute address update transaction")
	}

	return updated, nil
}

// SetPrimary atomically moves the primary flag to the target address.
func (srv *addressService) SetPrimary(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error) {
	srv.log(ctx).Info("Setting primary address", slog.Any("userID", userID), slog.Any("addressID", addressID))

	var promoted *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, findErr := srv.findOwnedAddress(ctx, addressRepo, userID, addressID)
		if findErr != nil {
			return findErr
		}

		if clearErr := addressRepo.ClearPrimary(ctx, userID); clearErr != nil {
			return errors.Wrap(clearErr, "failed to clear primary flags")
		}

		address.IsPrimary = true
		if updateErr := addressRepo.Update(ctx, address); updateErr != nil {
			return errors.Wrap(updateErr, "failed to promote address")
		}
		promoted = address

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to set primary address", slog.Any("addressID", addressID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute set primary transaction")
	}

	return promoted, nil
}

// Delete removes an owned address. When the primary address is deleted the
// most recently created remaining one inherits the flag, so a non-empty
// address book always has exactly one primary.
func (srv *addressService) Delete(ctx context.Context, userID, addressID uuid.UUID) error {
	srv.log(ctx).Info("Deleting address", slog.Any("userID", userID), slog.Any("addressID", addressID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, findErr := srv.findOwnedAddress(ctx, addressRepo, userID, addressID)
		if findErr != nil {
			return findErr
		}

		if deleteErr := addressRepo.Delete(ctx, addressID); deleteErr != nil {
			return errors.Wrap(deleteErr, "failed to delete address")
		}

		if !address.IsPrimary {
			return nil
		}

		latest, latestErr := addressRepo.FindLatestByUser(ctx, userID)
		if latestErr != nil {
			if errors.Is(latestErr, repository.ErrAddressNotFound) {
				// Last address removed, nothing to promote.
				return nil
			}

			return errors.Wrap(latestErr, "failed to find successor address")
		}

		latest.IsPrimary = true

		return errors.Wrap(addressRepo.Update(ctx, latest), "failed to promote successor address")
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to delete address", slog.Any("addressID", addressID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute address delete transaction")
	}

	return nil
}

// LookupPincode resolves a pincode to its post-office areas for autofill.
// Areas sharing a name are collapsed; the directory lists one entry per
// branch office.
func (srv *addressService) LookupPincode(ctx context.Context, pincode string) (*usecase.PincodeLookupOutput, error) {
	if !validPincode(pincode) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "malformed pincode")
	}

	areas, err := srv.directory.Lookup(ctx, pincode)
	if err != nil {
		srv.log(ctx).Error("Pincode lookup failed", slog.String("pincode", pincode), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up pincode")
	}

	seen := make(map[string]struct{}, len(areas))
	deduped := make([]entity.PincodeArea, 0, len(areas))
	for _, area := range areas {
		if _, ok := seen[area.Name]; ok {
			continue
		}
		seen[area.Name] = struct{}{}
		deduped = append(deduped, area)
	}

	return &usecase.PincodeLookupOutput{Pincode: pincode, Areas: deduped}, nil
}

// validPincode accepts six digits not starting with zero, the Indian postal
// format.
func validPincode(pincode string) bool {
	if len(pincode) != 6 || pincode[0] == '0' {
		return false
	}
	for _, r := range pincode {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// findOwnedAddress loads an address and hides its existence from anyone but
// the owner.
func (srv *addressService) findOwnedAddress(ctx context.Context, addressRepo repository.AddressRepository, userID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := addressRepo.FindByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "address not found")
		}

		return nil, errors.Wrap(err, "failed to load address")
	}

	if address.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "address not owned by user")
	}

	return address, nil
}

func applyAddressUpdate(address *entity.Address, input *usecase.UpdateAddressInput) {
	if input.Phone != nil {
		address.Phone = *input.Phone
	}
	if input.HouseNo != nil {
		address.HouseNo = *input.HouseNo
	}
	if input.Street != nil {
		address.Street = *input.Street
	}
	if input.Landmark != nil {
		address.Landmark = *input.Landmark
	}
	if input.City != nil {
		address.City = *input.City
	}
	if input.State != nil {
		address.State = *input.State
	}
	if input.Country != nil {
		address.Country = *input.Country
	}
	if input.Pincode != nil {
		address.Pincode = *input.Pincode
	}
	if input.AddressType != nil {
		address.AddressType = *input.AddressType
	}
}
