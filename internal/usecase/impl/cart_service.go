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

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem lazily creates the user's cart and upserts the product line.
// Adding a product already in the cart accumulates quantity.
func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, input *usecase.AddItemInput) (*usecase.CartItemOutput, error) {
	srv.log(ctx).Info("Adding cart item", slog.Any("userID", userID), slog.String("slug", input.Slug))

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		var findErr error
		product, findErr = srv.findProductBySlug(ctx, repoFactory, input.Slug)
		if findErr != nil {
			return findErr
		}

		cart, cartErr := srv.findOrCreateCart(ctx, cartRepo, userID)
		if cartErr != nil {
			return cartErr
		}

		return errors.Wrap(cartRepo.AddItemQuantity(ctx, cart.ID, product.ID, quantity), "failed to upsert cart line")
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to add cart item", slog.String("slug", input.Slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute cart add transaction")
	}

	return &usecase.CartItemOutput{ProductName: product.Name, Slug: product.Slug}, nil
}

// UpdateQuantity moves a line's quantity by one in either direction. The
// read-adjust-write runs inside one transaction so concurrent updates of the
// same line serialize instead of losing steps.
func (srv *cartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, input *usecase.UpdateQuantityInput) (*usecase.CartItemOutput, error) {
	srv.log(ctx).Info("Updating cart quantity",
		slog.Any("userID", userID),
		slog.String("slug", input.Slug),
		slog.String("direction", string(input.Direction)))

	if !input.Direction.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown quantity direction")
	}

	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		var findErr error
		product, findErr = srv.findProductBySlug(ctx, repoFactory, input.Slug)
		if findErr != nil {
			return findErr
		}

		cart, cartErr := srv.findCart(ctx, cartRepo, userID)
		if cartErr != nil {
			return cartErr
		}

		item, itemErr := cartRepo.FindItem(ctx, cart.ID, product.ID)
		if itemErr != nil {
			if errors.Is(itemErr, repository.ErrCartItemNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "product not in cart")
			}

			return errors.Wrap(itemErr, "failed to load cart line")
		}

		if input.Direction == entity.QuantityIncrement {
			return errors.Wrap(cartRepo.SetItemQuantity(ctx, cart.ID, product.ID, item.Quantity+1), "failed to increment cart line")
		}

		// Decrementing the last unit removes the line entirely.
		if item.Quantity <= 1 {
			return errors.Wrap(cartRepo.DeleteItem(ctx, cart.ID, product.ID), "failed to remove cart line")
		}

		return errors.Wrap(cartRepo.SetItemQuantity(ctx, cart.ID, product.ID, item.Quantity-1), "failed to decrement cart line")
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update cart quantity", slog.String("slug", input.Slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute cart quantity transaction")
	}

	return &usecase.CartItemOutput{ProductName: product.Name, Slug: product.Slug}, nil
}

// RemoveItem deletes the line regardless of its quantity.
func (srv *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, slug string) (*usecase.CartItemOutput, error) {
	srv.log(ctx).Info("Removing cart item", slog.Any("userID", userID), slog.String("slug", slug))

	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		var findErr error
		product, findErr = srv.findProductBySlug(ctx, repoFactory, slug)
		if findErr != nil {
			return findErr
		}

		cart, cartErr := srv.findCart(ctx, cartRepo, userID)
		if cartErr != nil {
			return cartErr
		}

		if deleteErr := cartRepo.DeleteItem(ctx, cart.ID, product.ID); deleteErr != nil {
			if errors.Is(deleteErr, repository.ErrCartItemNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "product not in cart")
			}

			return errors.Wrap(deleteErr, "failed to delete cart line")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to remove cart item", slog.String("slug", slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute cart remove transaction")
	}

	return &usecase.CartItemOutput{ProductName: product.Name, Slug: product.Slug}, nil
}

// GetCart renders the cart with per-line pricing. A user with no cart yet
// gets an empty view with zero totals, not an error.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartView, error) {
	cart, err := srv.cartRepo.FindByUserWithItems(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return &usecase.CartView{Items: []usecase.CartLineView{}}, nil
		}
		srv.log(ctx).Error("Failed to load cart", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load cart")
	}

	view := &usecase.CartView{Items: make([]usecase.CartLineView, 0, len(cart.Items))}
	for _, item := range cart.Items {
		if item.Product == nil {
			continue
		}

		offered := entity.OfferedPrice(item.Product.Price, item.Product.OfferType, item.Product.OfferValue)
		qty := float64(item.Quantity)
		view.TotalPrice += item.Product.Price * qty
		view.TotalOfferPrice += offered * qty

		view.Items = append(view.Items, usecase.CartLineView{
			ID:       item.ID,
			Quantity: item.Quantity,
			Product: usecase.CartProductView{
				ID:           item.Product.ID,
				Name:         item.Product.Name,
				Slug:         item.Product.Slug,
				Image:        item.Product.PrimaryImageURL(),
				Price:        item.Product.Price,
				OfferedPrice: offered,
			},
		})
	}

	return view, nil
}

func (srv *cartService) findProductBySlug(ctx context.Context, repoFactory repository.RepositoryFactory, slug string) (*entity.Product, error) {
	product, err := repoFactory.ProductRepo().FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

func (srv *cartService) findCart(ctx context.Context, cartRepo repository.CartRepository, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "cart is empty")
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

func (srv *cartService) findOrCreateCart(ctx context.Context, cartRepo repository.CartRepository, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := cartRepo.FindByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart = &entity.Cart{UserID: userID}
	if createErr := cartRepo.Create(ctx, cart); createErr != nil {
		return nil, errors.Wrap(createErr, "failed to create cart")
	}

	return cart, nil
}
