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

// pincodeService implements the PincodeUsecase interface.
type pincodeService struct {
	txManager   repository.TransactionManager
	pincodeRepo repository.PincodeRepository
	logger      *slog.Logger
}

// PincodeServiceParams holds dependencies for pincodeService, injected by Fx.
type PincodeServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PincodeRepo repository.PincodeRepository
	Logger      *slog.Logger
}

// NewPincodeService is the constructor for pincodeService.
func NewPincodeService(params PincodeServiceParams) usecase.PincodeUsecase {
	return &pincodeService{
		txManager:   params.TxManager,
		pincodeRepo: params.PincodeRepo,
		logger:      params.Logger,
	}
}

func (srv *pincodeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckServiceability answers the public delivery check. Unknown pincodes
// are a negative answer, never an error.
func (srv *pincodeService) CheckServiceability(ctx context.Context, pincode string) (*usecase.ServiceabilityOutput, error) {
	record, err := srv.pincodeRepo.FindByPincode(ctx, pincode)
	if err != nil {
		if errors.Is(err, repository.ErrPincodeNotFound) {
			return &usecase.ServiceabilityOutput{Serviceable: false}, nil
		}
		srv.log(ctx).Error("Serviceability check failed", slog.String("pincode", pincode), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check serviceability")
	}

	return &usecase.ServiceabilityOutput{
		Serviceable:    true,
		City:           record.City,
		State:          record.State,
		DeliveryDays:   record.DeliveryDays,
		DeliveryCharge: record.DeliveryCharge,
	}, nil
}

// CreatePincode registers a serviceable pincode. Duplicate values conflict.
func (srv *pincodeService) CreatePincode(ctx context.Context, input *usecase.CreatePincodeInput) (*entity.ServiceablePincode, error) {
	srv.log(ctx).Info("Creating serviceable pincode", slog.String("pincode", input.Pincode))

	record := &entity.ServiceablePincode{
		Pincode:        input.Pincode,
		City:           input.City,
		State:          input.State,
		DeliveryDays:   input.DeliveryDays,
		DeliveryCharge: input.DeliveryCharge,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		pincodeRepo := repoFactory.PincodeRepo()

		if _, findErr := pincodeRepo.FindByPincode(ctx, input.Pincode); findErr == nil {
			return errors.Wrap(domainerrors.ErrConflict, "pincode already serviceable")
		} else if !errors.Is(findErr, repository.ErrPincodeNotFound) {
			return errors.Wrap(findErr, "failed to check existing pincode")
		}

		return errors.Wrap(pincodeRepo.Create(ctx, record), "failed to create serviceable pincode")
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to create serviceable pincode", slog.String("pincode", input.Pincode), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute pincode create transaction")
	}

	return record, nil
}

// UpdatePincode adjusts delivery terms for an existing record.
func (srv *pincodeService) UpdatePincode(ctx context.Context, pincodeID uuid.UUID, input *usecase.UpdatePincodeInput) (*entity.ServiceablePincode, error) {
	srv.log(ctx).Info("Updating serviceable pincode", slog.Any("pincodeID", pincodeID))

	record, err := srv.pincodeRepo.FindByID(ctx, pincodeID)
	if err != nil {
		if errors.Is(err, repository.ErrPincodeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "serviceable pincode not found")
		}

		return nil, errors.Wrap(err, "failed to load serviceable pincode")
	}

	if input.City != nil {
		record.City = *input.City
	}
	if input.State != nil {
		record.State = *input.State
	}
	if input.DeliveryDays != nil {
		record.DeliveryDays = *input.DeliveryDays
	}
	if input.DeliveryCharge != nil {
		record.DeliveryCharge = *input.DeliveryCharge
	}

	if err := srv.pincodeRepo.Update(ctx, record); err != nil {
		srv.log(ctx).Error("Failed to update serviceable pincode", slog.Any("pincodeID", pincodeID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update serviceable pincode")
	}

	return record, nil
}

// DeletePincode withdraws delivery coverage for a pincode.
func (srv *pincodeService) DeletePincode(ctx context.Context, pincodeID uuid.UUID) error {
	srv.log(ctx).Info("Deleting serviceable pincode", slog.Any("pincodeID", pincodeID))

	if err := srv.pincodeRepo.Delete(ctx, pincodeID); err != nil {
		if errors.Is(err, repository.ErrPincodeNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "serviceable pincode not found")
		}
		srv.log(ctx).Error("Failed to delete serviceable pincode", slog.Any("pincodeID", pincodeID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete serviceable pincode")
	}

	return nil
}

// ListPincodes returns every serviceable pincode.
func (srv *pincodeService) ListPincodes(ctx context.Context) ([]*entity.ServiceablePincode, error) {
	records, _, err := srv.pincodeRepo.List(ctx, repository.ListParams{PerPage: 1000})
	if err != nil {
		srv.log(ctx).Error("Failed to list serviceable pincodes", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list serviceable pincodes")
	}

	return records, nil
}
