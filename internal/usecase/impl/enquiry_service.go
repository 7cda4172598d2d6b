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

// enquiryService implements the EnquiryUsecase interface.
type enquiryService struct {
	enquiryRepo repository.EnquiryRepository
	logger      *slog.Logger
}

// EnquiryServiceParams holds dependencies for enquiryService, injected by Fx.
type EnquiryServiceParams struct {
	fx.In

	EnquiryRepo repository.EnquiryRepository
	Logger      *slog.Logger
}

// NewEnquiryService is the constructor for enquiryService.
func NewEnquiryService(params EnquiryServiceParams) usecase.EnquiryUsecase {
	return &enquiryService{
		enquiryRepo: params.EnquiryRepo,
		logger:      params.Logger,
	}
}

func (srv *enquiryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitEnquiry stores a public business enquiry.
func (srv *enquiryService) SubmitEnquiry(ctx context.Context, input *usecase.CreateEnquiryInput) (*entity.Enquiry, error) {
	srv.log(ctx).Info("Submitting enquiry", slog.String("company", input.CompanyName))

	enquiry := &entity.Enquiry{
		CompanyName:   input.CompanyName,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		BusinessNeed:  input.BusinessNeed,
	}

	if err := srv.enquiryRepo.Create(ctx, enquiry); err != nil {
		srv.log(ctx).Error("Failed to store enquiry", slog.String("company", input.CompanyName), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store enquiry")
	}

	return enquiry, nil
}

// ListEnquiries returns one admin page of enquiries, unanswered first.
func (srv *enquiryService) ListEnquiries(ctx context.Context, params repository.ListParams) (*usecase.EnquiryListOutput, error) {
	enquiries, total, err := srv.enquiryRepo.List(ctx, params)
	if err != nil {
		srv.log(ctx).Error("Failed to list enquiries", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list enquiries")
	}

	page := params.Page
	if page < 1 {
		page = 1
	}

	return &usecase.EnquiryListOutput{
		Enquiries: enquiries,
		Total:     total,
		Page:      page,
		PerPage:   params.Limit(),
	}, nil
}

// GetEnquiry fetches one enquiry for the admin panel.
func (srv *enquiryService) GetEnquiry(ctx context.Context, enquiryID uuid.UUID) (*entity.Enquiry, error) {
	enquiry, err := srv.enquiryRepo.FindByID(ctx, enquiryID)
	if err != nil {
		if errors.Is(err, repository.ErrEnquiryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "enquiry not found")
		}
		srv.log(ctx).Error("Failed to load enquiry", slog.Any("enquiryID", enquiryID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load enquiry")
	}

	return enquiry, nil
}

// MarkResponded flips the responded flag on an enquiry.
func (srv *enquiryService) MarkResponded(ctx context.Context, enquiryID uuid.UUID, responded bool) (*entity.Enquiry, error) {
	srv.log(ctx).Info("Marking enquiry", slog.Any("enquiryID", enquiryID), slog.Bool("responded", responded))

	enquiry, err := srv.enquiryRepo.FindByID(ctx, enquiryID)
	if err != nil {
		if errors.Is(err, repository.ErrEnquiryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "enquiry not found")
		}

		return nil, errors.Wrap(err, "failed to load enquiry")
	}

	enquiry.Responded = responded
	if err := srv.enquiryRepo.Update(ctx, enquiry); err != nil {
		srv.log(ctx).Error("Failed to update enquiry", slog.Any("enquiryID", enquiryID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update enquiry")
	}

	return enquiry, nil
}

// DeleteEnquiry removes an enquiry.
func (srv *enquiryService) DeleteEnquiry(ctx context.Context, enquiryID uuid.UUID) error {
	srv.log(ctx).Info("Deleting enquiry", slog.Any("enquiryID", enquiryID))

	if err := srv.enquiryRepo.Delete(ctx, enquiryID); err != nil {
		if errors.Is(err, repository.ErrEnquiryNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "enquiry not found")
		}
		srv.log(ctx).Error("Failed to delete enquiry", slog.Any("enquiryID", enquiryID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete enquiry")
	}

	return nil
}
