package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"ayurfresh/config"
	"ayurfresh/internal/domain/entity"
	"ayurfresh/internal/domain/repository"
	"ayurfresh/internal/domain/service"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memStore is a shared in-memory backing store for the fake repositories so
// that everything created inside a fake transaction is visible to the
// repositories handed out by the same factory.
type memStore struct {
	mu            sync.Mutex
	users         map[uuid.UUID]*entity.User
	verifications map[uuid.UUID]*entity.Verification
	addresses     map[uuid.UUID]*entity.Address
	carts         map[uuid.UUID]*entity.Cart
	cartsByUser   map[uuid.UUID]uuid.UUID
	items         map[uuid.UUID]map[uuid.UUID]*entity.CartItem
	products      map[uuid.UUID]*entity.Product
	categories    map[uuid.UUID]*entity.Category
	reviews       map[uuid.UUID]*entity.Review
	seq           int
}

func newMemStore() *memStore {
	return &memStore{
		users:         make(map[uuid.UUID]*entity.User),
		verifications: make(map[uuid.UUID]*entity.Verification),
		addresses:     make(map[uuid.UUID]*entity.Address),
		carts:         make(map[uuid.UUID]*entity.Cart),
		cartsByUser:   make(map[uuid.UUID]uuid.UUID),
		items:         make(map[uuid.UUID]map[uuid.UUID]*entity.CartItem),
		products:      make(map[uuid.UUID]*entity.Product),
		categories:    make(map[uuid.UUID]*entity.Category),
		reviews:       make(map[uuid.UUID]*entity.Review),
	}
}

// nextTime hands out strictly increasing timestamps so "most recently
// created" is deterministic in tests.
func (s *memStore) nextTime() time.Time {
	s.seq++

	return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(s.seq) * time.Second)
}

func (s *memStore) addProduct(p *entity.Product) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.products[p.ID] = p

	return p
}

func (s *memStore) addCategory(c *entity.Category) *entity.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	s.categories[c.ID] = c

	return c
}

func (s *memStore) addUser(u *entity.User) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	s.users[u.ID] = u
	if u.Verification != nil {
		u.Verification.UserID = u.ID
		s.verifications[u.ID] = u.Verification
	}

	return u
}

// --- Fake Repositories ---

type fakeUserRepo struct{ store *memStore }

func (r *fakeUserRepo) attach(u *entity.User) *entity.User {
	if v, ok := r.store.verifications[u.ID]; ok {
		u.Verification = v
	}

	return u
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if u, ok := r.store.users[id]; ok {
		return r.attach(u), nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Email == email {
			return r.attach(u), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.PhoneNumber != nil && *u.PhoneNumber == phone {
			return r.attach(u), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByLogin(_ context.Context, login string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Email == login || (u.PhoneNumber != nil && *u.PhoneNumber == login) {
			return r.attach(u), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = r.store.nextTime()
	r.store.users[user.ID] = user
	if user.Verification != nil {
		user.Verification.UserID = user.ID
		r.store.verifications[user.ID] = user.Verification
	}

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	r.store.users[user.ID] = user

	return nil
}

func (r *fakeUserRepo) ListByRole(_ context.Context, role entity.Role, params repository.ListParams) ([]*entity.User, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	matched := make([]*entity.User, 0)
	for _, u := range r.store.users {
		if u.Role == role {
			matched = append(matched, r.attach(u))
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	offset := params.Offset()
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + params.Limit()
	if end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end], total, nil
}

type fakeVerificationRepo struct{ store *memStore }

func (r *fakeVerificationRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Verification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if v, ok := r.store.verifications[userID]; ok {
		return v, nil
	}

	return nil, repository.ErrVerificationNotFound
}

func (r *fakeVerificationRepo) Create(_ context.Context, verification *entity.Verification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.verifications[verification.UserID] = verification

	return nil
}

func (r *fakeVerificationRepo) Update(_ context.Context, verification *entity.Verification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.verifications[verification.UserID] = verification

	return nil
}

type fakeAddressRepo struct{ store *memStore }

func (r *fakeAddressRepo) Create(_ context.Context, address *entity.Address) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if address.ID == uuid.Nil {
		address.ID = uuid.New()
	}
	address.CreatedAt = r.store.nextTime()
	r.store.addresses[address.ID] = address

	return nil
}

func (r *fakeAddressRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Address, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if a, ok := r.store.addresses[id]; ok {
		return a, nil
	}

	return nil, repository.ErrAddressNotFound
}

func (r *fakeAddressRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.Address, 0)
	for _, a := range r.store.addresses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsPrimary != out[j].IsPrimary {
			return out[i].IsPrimary
		}

		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *fakeAddressRepo) FindLatestByUser(_ context.Context, userID uuid.UUID) (*entity.Address, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var latest *entity.Address
	for _, a := range r.store.addresses {
		if a.UserID != userID {
			continue
		}
		if latest == nil || a.CreatedAt.After(latest.CreatedAt) {
			latest = a
		}
	}
	if latest == nil {
		return nil, repository.ErrAddressNotFound
	}

	return latest, nil
}

func (r *fakeAddressRepo) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, a := range r.store.addresses {
		if a.UserID == userID {
			count++
		}
	}

	return count, nil
}

func (r *fakeAddressRepo) ClearPrimary(_ context.Context, userID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, a := range r.store.addresses {
		if a.UserID == userID {
			a.IsPrimary = false
		}
	}

	return nil
}

func (r *fakeAddressRepo) Update(_ context.Context, address *entity.Address) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.addresses[address.ID]; !ok {
		return repository.ErrAddressNotFound
	}
	r.store.addresses[address.ID] = address

	return nil
}

func (r *fakeAddressRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.addresses[id]; !ok {
		return repository.ErrAddressNotFound
	}
	delete(r.store.addresses, id)

	return nil
}

type fakeCartRepo struct{ store *memStore }

func (r *fakeCartRepo) FindByUser(_ context.Context, userID uuid.UUID) (*entity.Cart, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if cartID, ok := r.store.cartsByUser[userID]; ok {
		return r.store.carts[cartID], nil
	}

	return nil, repository.ErrCartNotFound
}

func (r *fakeCartRepo) FindByUserWithItems(_ context.Context, userID uuid.UUID) (*entity.Cart, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cartID, ok := r.store.cartsByUser[userID]
	if !ok {
		return nil, repository.ErrCartNotFound
	}

	cart := r.store.carts[cartID]
	cart.Items = cart.Items[:0]
	for _, item := range r.store.items[cartID] {
		item.Product = r.store.products[item.ProductID]
		cart.Items = append(cart.Items, item)
	}
	sort.Slice(cart.Items, func(i, j int) bool { return cart.Items[i].CreatedAt.Before(cart.Items[j].CreatedAt) })

	return cart, nil
}

func (r *fakeCartRepo) Create(_ context.Context, cart *entity.Cart) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if cart.ID == uuid.Nil {
		cart.ID = uuid.New()
	}
	r.store.carts[cart.ID] = cart
	r.store.cartsByUser[cart.UserID] = cart.ID
	r.store.items[cart.ID] = make(map[uuid.UUID]*entity.CartItem)

	return nil
}

func (r *fakeCartRepo) FindItem(_ context.Context, cartID, productID uuid.UUID) (*entity.CartItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if item, ok := r.store.items[cartID][productID]; ok {
		return item, nil
	}

	return nil, repository.ErrCartItemNotFound
}

func (r *fakeCartRepo) AddItemQuantity(_ context.Context, cartID, productID uuid.UUID, delta int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if item, ok := r.store.items[cartID][productID]; ok {
		item.Quantity += delta

		return nil
	}
	r.store.items[cartID][productID] = &entity.CartItem{
		ID:        uuid.New(),
		CartID:    cartID,
		ProductID: productID,
		Quantity:  delta,
		CreatedAt: r.store.nextTime(),
	}

	return nil
}

func (r *fakeCartRepo) SetItemQuantity(_ context.Context, cartID, productID uuid.UUID, quantity int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	item, ok := r.store.items[cartID][productID]
	if !ok {
		return repository.ErrCartItemNotFound
	}
	item.Quantity = quantity

	return nil
}

func (r *fakeCartRepo) DeleteItem(_ context.Context, cartID, productID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.items[cartID][productID]; !ok {
		return repository.ErrCartItemNotFound
	}
	delete(r.store.items[cartID], productID)

	return nil
}

type fakeProductRepo struct{ store *memStore }

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.CreatedAt = r.store.nextTime()
	r.store.products[product.ID] = product

	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if p, ok := r.store.products[id]; ok {
		return p, nil
	}

	return nil, repository.ErrProductNotFound
}

func (r *fakeProductRepo) FindBySlug(_ context.Context, slug string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.products {
		if p.Slug == slug {
			return p, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (r *fakeProductRepo) List(_ context.Context, params repository.ProductListParams) ([]*entity.Product, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	matched := make([]*entity.Product, 0)
	for _, p := range r.store.products {
		if params.CategoryID != nil && p.CategoryID != *params.CategoryID {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	offset := params.Offset()
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + params.Limit()
	if end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end], total, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.products[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	r.store.products[product.ID] = product

	return nil
}

func (r *fakeProductRepo) ReplaceImages(_ context.Context, productID uuid.UUID, images []*entity.ProductImage) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.products[productID]
	if !ok {
		return repository.ErrProductNotFound
	}
	p.Images = images

	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(r.store.products, id)

	return nil
}

type fakeCategoryRepo struct{ store *memStore }

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	r.store.categories[category.ID] = category

	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if c, ok := r.store.categories[id]; ok {
		return c, nil
	}

	return nil, repository.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindBySlug(_ context.Context, slug string) (*entity.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range r.store.categories {
		if c.Slug == slug {
			return c, nil
		}
	}

	return nil, repository.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindByNameOrSlug(_ context.Context, name, slug string, excludeID *uuid.UUID) (*entity.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range r.store.categories {
		if excludeID != nil && c.ID == *excludeID {
			continue
		}
		if c.Name == name || c.Slug == slug {
			return c, nil
		}
	}

	return nil, repository.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.Category, 0, len(r.store.categories))
	for _, c := range r.store.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.categories[category.ID]; !ok {
		return repository.ErrCategoryNotFound
	}
	r.store.categories[category.ID] = category

	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.categories[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	delete(r.store.categories, id)

	return nil
}

type fakeReviewRepo struct{ store *memStore }

func (r *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	review.CreatedAt = r.store.nextTime()
	review.UpdatedAt = review.CreatedAt
	r.store.reviews[review.ID] = review

	return nil
}

func (r *fakeReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if review, ok := r.store.reviews[id]; ok {
		return review, nil
	}

	return nil, repository.ErrReviewNotFound
}

func (r *fakeReviewRepo) FindByUserAndProduct(_ context.Context, userID, productID uuid.UUID) (*entity.Review, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, review := range r.store.reviews {
		if review.UserID == userID && review.ProductID == productID {
			return review, nil
		}
	}

	return nil, repository.ErrReviewNotFound
}

func (r *fakeReviewRepo) ListByProduct(_ context.Context, productID uuid.UUID, params repository.ListParams) ([]*entity.Review, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	matched := make([]*entity.Review, 0)
	for _, review := range r.store.reviews {
		if review.ProductID != productID {
			continue
		}
		review.User = r.store.users[review.UserID]
		matched = append(matched, review)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	offset := params.Offset()
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + params.Limit()
	if end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end], total, nil
}

func (r *fakeReviewRepo) Update(_ context.Context, review *entity.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.reviews[review.ID]; !ok {
		return repository.ErrReviewNotFound
	}
	review.UpdatedAt = r.store.nextTime()
	r.store.reviews[review.ID] = review

	return nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.reviews[id]; !ok {
		return repository.ErrReviewNotFound
	}
	delete(r.store.reviews, id)

	return nil
}

// --- Fake Transaction Plumbing ---

// fakeFactory hands out repositories over a shared memStore. Repositories
// not needed by the services under test are left nil.
type fakeFactory struct {
	userRepo         *fakeUserRepo
	verificationRepo *fakeVerificationRepo
	addressRepo      *fakeAddressRepo
	cartRepo         *fakeCartRepo
	productRepo      *fakeProductRepo
	categoryRepo     *fakeCategoryRepo
	reviewRepo       *fakeReviewRepo
}

func newFakeFactory(store *memStore) *fakeFactory {
	return &fakeFactory{
		userRepo:         &fakeUserRepo{store: store},
		verificationRepo: &fakeVerificationRepo{store: store},
		addressRepo:      &fakeAddressRepo{store: store},
		cartRepo:         &fakeCartRepo{store: store},
		productRepo:      &fakeProductRepo{store: store},
		categoryRepo:     &fakeCategoryRepo{store: store},
		reviewRepo:       &fakeReviewRepo{store: store},
	}
}

func (f *fakeFactory) UserRepo() repository.UserRepository                 { return f.userRepo }
func (f *fakeFactory) VerificationRepo() repository.VerificationRepository { return f.verificationRepo }
func (f *fakeFactory) AddressRepo() repository.AddressRepository           { return f.addressRepo }
func (f *fakeFactory) ProductRepo() repository.ProductRepository           { return f.productRepo }
func (f *fakeFactory) CategoryRepo() repository.CategoryRepository         { return f.categoryRepo }
func (f *fakeFactory) CartRepo() repository.CartRepository                 { return f.cartRepo }
func (f *fakeFactory) ReviewRepo() repository.ReviewRepository             { return f.reviewRepo }
func (f *fakeFactory) EnquiryRepo() repository.EnquiryRepository           { return nil }
func (f *fakeFactory) PincodeRepo() repository.PincodeRepository           { return nil }

// fakeTxManager runs the callback against the shared factory without any
// real transaction semantics.
type fakeTxManager struct{ factory *fakeFactory }

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// --- Fake Domain Services ---

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Check(password, hash string) bool { return hash == "hashed:"+password }

type fakeTokenService struct{}

func (fakeTokenService) GenerateToken(userID uuid.UUID, role string) (string, error) {
	return fmt.Sprintf("token:%s:%s", userID, role), nil
}

func (fakeTokenService) ValidateToken(string) (*service.Claims, error) {
	return nil, fmt.Errorf("not implemented")
}

// fakeCodes hands out fixed secrets so tests can assert what was stored.
type fakeCodes struct {
	token string
	otp   string
}

func (g fakeCodes) Token() string { return g.token }
func (g fakeCodes) OTP() string   { return g.otp }

// recorderMailSender and recorderSMSSender absorb fire-and-forget
// notifications. They are mutex-guarded because the notifier delivers from
// its own goroutines.
type recorderMailSender struct {
	mu    sync.Mutex
	sends []string
}

func (m *recorderMailSender) Send(_ context.Context, to, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sends = append(m.sends, to)

	return nil
}

type recorderSMSSender struct {
	mu     sync.Mutex
	sends  []string
	bodies []string
}

func (s *recorderSMSSender) Send(_ context.Context, to, body string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sends = append(s.sends, to)
	s.bodies = append(s.bodies, body)

	return "msg-1", nil
}

func (s *recorderSMSSender) sentBodies() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.bodies...)
}

// fakeImageStore fabricates URLs from the key prefix and filenames.
type fakeImageStore struct {
	err error
}

func (s *fakeImageStore) Store(_ context.Context, keyPrefix string, uploads []service.ImageUpload) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}

	urls := make([]string, 0, len(uploads))
	for _, u := range uploads {
		urls = append(urls, "https://cdn.example.com/"+keyPrefix+"/"+u.Filename)
	}

	return urls, nil
}

type fakeDirectory struct {
	areas []entity.PincodeArea
	err   error
}

func (d *fakeDirectory) Lookup(context.Context, string) ([]entity.PincodeArea, error) {
	return d.areas, d.err
}

func newTestNotifier() *notifier {
	return NewNotifier(NotifierParams{
		Mail:   &recorderMailSender{},
		SMS:    &recorderSMSSender{},
		Config: &config.Config{},
		Logger: newDiscardLogger(),
	})
}
