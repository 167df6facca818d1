package dashboard

import (
	"context"

	"github.com/africommerce/backend/internal/domain/catalog"
	"github.com/africommerce/backend/internal/domain/insight"
	"github.com/africommerce/backend/internal/domain/logistics"
	"github.com/africommerce/backend/internal/domain/partner"
	"github.com/africommerce/backend/internal/domain/shared"
	"github.com/africommerce/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Summary is the dashboard's headline card: counts by status, revenue,
// and the low-stock and VIP tallies, all derived from one read of the
// vendor's collections.
type Summary struct {
	TotalOrders       int             `json:"total_orders"`
	PendingOrders     int             `json:"pending_orders"`
	ConfirmedOrders   int             `json:"confirmed_orders"`
	DeliveredOrders   int             `json:"delivered_orders"`
	CancelledOrders   int             `json:"cancelled_orders"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalProducts     int             `json:"total_products"`
	LowStockProducts  int             `json:"low_stock_products"`
	OutOfStockCount   int             `json:"out_of_stock_products"`
	TotalCustomers    int             `json:"total_customers"`
	VIPCustomers      int             `json:"vip_customers"`
	ActiveDeliveries  int             `json:"active_deliveries"`
	PendingDeliveries int             `json:"pending_deliveries"`
}

// SummaryService computes the dashboard summary for a vendor
type SummaryService struct {
	orderRepo    trade.OrderRepository
	productRepo  catalog.ProductRepository
	customerRepo partner.CustomerRepository
	deliveryRepo logistics.DeliveryRepository
	vipPolicy    insight.VIPPolicy
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(orderRepo trade.OrderRepository, productRepo catalog.ProductRepository, customerRepo partner.CustomerRepository, deliveryRepo logistics.DeliveryRepository, vipPolicy insight.VIPPolicy) *SummaryService {
	return &SummaryService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		deliveryRepo: deliveryRepo,
		vipPolicy:    vipPolicy,
	}
}

// Compute derives the vendor's dashboard summary from a single
// snapshot of each collection.
func (s *SummaryService) Compute(ctx context.Context, vendorID uuid.UUID) (*Summary, error) {
	// Aggregates must see the whole of each collection or the tallies
	// drift from the real counts.
	wide := shared.UnpagedFilter()

	orders, err := s.orderRepo.FindAllForVendor(ctx, vendorID, wide)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.FindAllForVendor(ctx, vendorID, wide)
	if err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.FindAllForVendor(ctx, vendorID, wide)
	if err != nil {
		return nil, err
	}
	deliveries, err := s.deliveryRepo.FindAllForVendor(ctx, vendorID, wide)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalOrders:     len(orders),
		PendingOrders:   insight.CountByStatus(orders, trade.OrderStatusPending),
		ConfirmedOrders: insight.CountByStatus(orders, trade.OrderStatusConfirmed),
		DeliveredOrders: insight.CountByStatus(orders, trade.OrderStatusDelivered),
		CancelledOrders: insight.CountByStatus(orders, trade.OrderStatusCancelled),
		TotalRevenue:    insight.SumAmounts(orders),
		TotalProducts:   len(products),
		TotalCustomers:  len(customers),
	}

	for i := range products {
		switch products[i].StockClassification() {
		case catalog.StockLevelLow:
			summary.LowStockProducts++
		case catalog.StockLevelOutOfStock:
			summary.OutOfStockCount++
		}
	}

	for i := range customers {
		if s.vipPolicy.IsVIP(insight.StatsFor(customers[i].ID, orders)) {
			summary.VIPCustomers++
		}
	}

	for i := range deliveries {
		switch deliveries[i].Status {
		case logistics.DeliveryStatusPending:
			summary.PendingDeliveries++
			summary.ActiveDeliveries++
		case logistics.DeliveryStatusInTransit:
			summary.ActiveDeliveries++
		}
	}

	return summary, nil
}
