package dashboard

import (
	"context"
	stdsync "sync"

	"github.com/africommerce/backend/internal/domain/catalog"
	"github.com/africommerce/backend/internal/domain/logistics"
	"github.com/africommerce/backend/internal/domain/partner"
	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/africommerce/backend/internal/domain/trade"
	"github.com/africommerce/backend/internal/sync"
	"github.com/google/uuid"
)

// Workspace bundles one synchronizer per management screen for a
// vendor session. All five share the same session provider and
// notification channel, and all follow the uniform stale-after-write
// policy, so every screen sees fresh collections after any mutation
// it performs.
type Workspace struct {
	Orders     *sync.Synchronizer[trade.Order]
	Products   *sync.Synchronizer[catalog.Product]
	Services   *sync.Synchronizer[catalog.Service]
	Customers  *sync.Synchronizer[partner.Customer]
	Deliveries *sync.Synchronizer[logistics.Delivery]
}

// NewWorkspace wires a synchronizer over each repository-backed
// gateway for the session.
func NewWorkspace(
	orderRepo trade.OrderRepository,
	productRepo catalog.ProductRepository,
	serviceRepo catalog.ServiceRepository,
	customerRepo partner.CustomerRepository,
	deliveryRepo logistics.DeliveryRepository,
	session sync.SessionProvider,
	notifier sync.Notifier,
) *Workspace {
	return &Workspace{
		Orders:     sync.NewSynchronizer[trade.Order](orderGateway{orderRepo}, session, notifier),
		Products:   sync.NewSynchronizer[catalog.Product](productGateway{productRepo}, session, notifier),
		Services:   sync.NewSynchronizer[catalog.Service](serviceGateway{serviceRepo}, session, notifier),
		Customers:  sync.NewSynchronizer[partner.Customer](customerGateway{customerRepo}, session, notifier),
		Deliveries: sync.NewSynchronizer[logistics.Delivery](deliveryGateway{deliveryRepo}, session, notifier),
	}
}

// RefreshAll loads every collection for the session
func (w *Workspace) RefreshAll(ctx context.Context) {
	w.Orders.Refresh(ctx)
	w.Products.Refresh(ctx)
	w.Services.Refresh(ctx)
	w.Customers.Refresh(ctx)
	w.Deliveries.Refresh(ctx)
}

// Close detaches all synchronizers; in-flight results are discarded
func (w *Workspace) Close() {
	w.Orders.Close()
	w.Products.Close()
	w.Services.Close()
	w.Customers.Close()
	w.Deliveries.Close()
}

// WorkspaceHub hands out one workspace per vendor. Synchronizer
// collections are session state, so vendors can never share one;
// workspaces are created lazily on first use and live until the hub
// closes.
type WorkspaceHub struct {
	mu         stdsync.Mutex
	workspaces map[uuid.UUID]*Workspace
	build      func() *Workspace
}

// NewWorkspaceHub wires a hub over the shared repositories. Every
// workspace it creates uses the same session provider and notifier.
func NewWorkspaceHub(
	orderRepo trade.OrderRepository,
	productRepo catalog.ProductRepository,
	serviceRepo catalog.ServiceRepository,
	customerRepo partner.CustomerRepository,
	deliveryRepo logistics.DeliveryRepository,
	session sync.SessionProvider,
	notifier sync.Notifier,
) *WorkspaceHub {
	return &WorkspaceHub{
		workspaces: make(map[uuid.UUID]*Workspace),
		build: func() *Workspace {
			return NewWorkspace(orderRepo, productRepo, serviceRepo, customerRepo, deliveryRepo, session, notifier)
		},
	}
}

// ForVendor returns the vendor's workspace, creating it on first use.
// The same vendor always gets the same workspace back.
func (h *WorkspaceHub) ForVendor(vendorID uuid.UUID) *Workspace {
	h.mu.Lock()
	defer h.mu.Unlock()
	ws, ok := h.workspaces[vendorID]
	if !ok {
		ws = h.build()
		h.workspaces[vendorID] = ws
	}
	return ws
}

// Close closes every vendor workspace the hub handed out
func (h *WorkspaceHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ws := range h.workspaces {
		ws.Close()
	}
	h.workspaces = make(map[uuid.UUID]*Workspace)
}

// Repository-backed gateway adapters. Each scopes every call by the
// owning vendor; a cross-vendor id surfaces as ErrNotFound from the
// repository layer.

type orderGateway struct {
	repo trade.OrderRepository
}

func (g orderGateway) List(ctx context.Context, vendorID uuid.UUID) ([]trade.Order, error) {
	return g.repo.FindAllForVendor(ctx, vendorID, shared.UnpagedFilter())
}

func (g orderGateway) Insert(ctx context.Context, entity *trade.Order) error {
	return g.repo.Save(ctx, entity)
}

func (g orderGateway) Update(ctx context.Context, vendorID uuid.UUID, entity *trade.Order) error {
	if !entity.BelongsTo(vendorID) {
		return shared.ErrNotFound
	}
	return g.repo.Save(ctx, entity)
}

func (g orderGateway) Delete(ctx context.Context, vendorID, id uuid.UUID) error {
	return g.repo.DeleteForVendor(ctx, vendorID, id)
}

type productGateway struct {
	repo catalog.ProductRepository
}

func (g productGateway) List(ctx context.Context, vendorID uuid.UUID) ([]catalog.Product, error) {
	return g.repo.FindAllForVendor(ctx, vendorID, shared.UnpagedFilter())
}

func (g productGateway) Insert(ctx context.Context, entity *catalog.Product) error {
	return g.repo.Save(ctx, entity)
}

func (g productGateway) Update(ctx context.Context, vendorID uuid.UUID, entity *catalog.Product) error {
	if !entity.BelongsTo(vendorID) {
		return shared.ErrNotFound
	}
	return g.repo.Save(ctx, entity)
}

func (g productGateway) Delete(ctx context.Context, vendorID, id uuid.UUID) error {
	return g.repo.DeleteForVendor(ctx, vendorID, id)
}

type serviceGateway struct {
	repo catalog.ServiceRepository
}

func (g serviceGateway) List(ctx context.Context, vendorID uuid.UUID) ([]catalog.Service, error) {
	return g.repo.FindAllForVendor(ctx, vendorID, shared.UnpagedFilter())
}

func (g serviceGateway) Insert(ctx context.Context, entity *catalog.Service) error {
	return g.repo.Save(ctx, entity)
}

func (g serviceGateway) Update(ctx context.Context, vendorID uuid.UUID, entity *catalog.Service) error {
	if !entity.BelongsTo(vendorID) {
		return shared.ErrNotFound
	}
	return g.repo.Save(ctx, entity)
}

func (g serviceGateway) Delete(ctx context.Context, vendorID, id uuid.UUID) error {
	return g.repo.DeleteForVendor(ctx, vendorID, id)
}

type customerGateway struct {
	repo partner.CustomerRepository
}

func (g customerGateway) List(ctx context.Context, vendorID uuid.UUID) ([]partner.Customer, error) {
	return g.repo.FindAllForVendor(ctx, vendorID, shared.UnpagedFilter())
}

func (g customerGateway) Insert(ctx context.Context, entity *partner.Customer) error {
	return g.repo.Save(ctx, entity)
}

func (g customerGateway) Update(ctx context.Context, vendorID uuid.UUID, entity *partner.Customer) error {
	if !entity.BelongsTo(vendorID) {
		return shared.ErrNotFound
	}
	return g.repo.Save(ctx, entity)
}

func (g customerGateway) Delete(ctx context.Context, vendorID, id uuid.UUID) error {
	return g.repo.DeleteForVendor(ctx, vendorID, id)
}

type deliveryGateway struct {
	repo logistics.DeliveryRepository
}

func (g deliveryGateway) List(ctx context.Context, vendorID uuid.UUID) ([]logistics.Delivery, error) {
	return g.repo.FindAllForVendor(ctx, vendorID, shared.UnpagedFilter())
}

func (g deliveryGateway) Insert(ctx context.Context, entity *logistics.Delivery) error {
	return g.repo.Save(ctx, entity)
}

func (g deliveryGateway) Update(ctx context.Context, vendorID uuid.UUID, entity *logistics.Delivery) error {
	if !entity.BelongsTo(vendorID) {
		return shared.ErrNotFound
	}
	return g.repo.Save(ctx, entity)
}

func (g deliveryGateway) Delete(ctx context.Context, vendorID, id uuid.UUID) error {
	return g.repo.DeleteForVendor(ctx, vendorID, id)
}
