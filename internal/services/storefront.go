package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"stylehive/internal/models"
	"stylehive/internal/notify"
	"stylehive/internal/receipt"
	"stylehive/internal/repositories"
	"stylehive/internal/storage"
)

// Dependencies are shared by every client's storefront.
type Dependencies struct {
	Store         storage.Store
	Verifier      receipt.Verifier
	Notifier      notify.Notifier
	Admin         AdminCredential
	VerifyTimeout time.Duration
	Logger        *slog.Logger
	Now           func() time.Time
}

func (d Dependencies) withDefaults() Dependencies {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Verifier == nil {
		d.Verifier = receipt.NewSimulated(2 * time.Second)
	}
	if d.Notifier == nil {
		d.Notifier = notify.NewLogNotifier(d.Logger)
	}
	return d
}

// Storefront is the complete state of one client: its catalog, cart, orders,
// accounts, session, wishlist and checkout wizard. All persisted state lives in
// the client's own storage namespace.
//
// Two processes writing the same namespace race on read-modify-write; the last
// writer wins.
type Storefront struct {
	ClientID string
	Products *ProductService
	Orders   *OrderService
	Auth     *AuthService
	Wishlist *WishlistService
	Cart     *Cart

	deps     Dependencies
	mu       sync.Mutex
	checkout *Checkout
}

// NewStorefront wires the services of one client over its storage namespace.
func NewStorefront(clientID string, deps Dependencies) *Storefront {
	deps = deps.withDefaults()
	store := storage.Scope(deps.Store, clientID)
	deps.Logger = deps.Logger.With("client_id", clientID)

	products := NewProductService(repositories.NewStoreProductRepository(store, repositories.SeedProducts()))
	return &Storefront{
		ClientID: clientID,
		Products: products,
		Orders:   NewOrderService(repositories.NewStoreOrderRepository(store), deps.Logger),
		Auth: NewAuthService(
			repositories.NewStoreUserRepository(store),
			repositories.NewStoreSessionRepository(store),
			deps.Admin,
		),
		Wishlist: NewWishlistService(repositories.NewStoreWishlistRepository(store), products),
		Cart:     NewCart(),
		deps:     deps,
	}
}

// AddToCart looks the product up in the catalog and adds one unit of it.
func (s *Storefront) AddToCart(ctx context.Context, productID int64) (*models.Product, error) {
	product, err := s.Products.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	s.Cart.Add(*product)
	return product, nil
}

// BeginCheckout opens a fresh wizard over the cart, closing the cart panel.
// A wizard with a submission in flight is never replaced.
func (s *Storefront) BeginCheckout() (*Checkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.checkout != nil && s.checkout.Status() == StatusAnalyzing {
		return nil, ErrSubmissionInFlight
	}
	if s.Cart.Empty() {
		return nil, ErrEmptyCart
	}

	s.Cart.ClosePanel()
	s.checkout = &Checkout{
		cart:     s.Cart,
		orders:   s.Orders,
		sessions: s.Auth,
		verifier: s.deps.Verifier,
		notifier: s.deps.Notifier,
		timeout:  s.deps.VerifyTimeout,
		logger:   s.deps.Logger,
		now:      s.deps.Now,
		step:     StepShipping,
		status:   StatusIdle,
		shipping: models.ShippingOptions()[0],
	}
	return s.checkout, nil
}

// Checkout returns the current wizard.
func (s *Storefront) Checkout() (*Checkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.checkout == nil {
		return nil, ErrNoCheckout
	}
	return s.checkout, nil
}

// Admin hands out the admin console when the current session carries the admin
// role. The check is advisory: the session lives in client-controlled storage.
func (s *Storefront) Admin(ctx context.Context) (*AdminConsole, error) {
	session, err := s.Auth.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil || !session.IsAdmin() {
		return nil, ErrAdminRequired
	}
	return &AdminConsole{
		products: s.Products,
		orders:   s.Orders,
		now:      s.deps.Now,
	}, nil
}

// Registry keeps one storefront per client id for the life of the process.
type Registry struct {
	deps   Dependencies
	mu     sync.Mutex
	fronts map[string]*Storefront
}

func NewRegistry(deps Dependencies) *Registry {
	return &Registry{
		deps:   deps.withDefaults(),
		fronts: make(map[string]*Storefront),
	}
}

// Get returns the storefront for clientID, creating it on first use.
func (r *Registry) Get(clientID string) *Storefront {
	r.mu.Lock()
	defer r.mu.Unlock()

	front, ok := r.fronts[clientID]
	if !ok {
		front = NewStorefront(clientID, r.deps)
		r.fronts[clientID] = front
	}
	return front
}
