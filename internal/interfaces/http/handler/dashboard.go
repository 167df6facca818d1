package handler

import (
	dashboardapp "github.com/africommerce/backend/internal/application/dashboard"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard API endpoints. Screen state is
// per-vendor, so every request resolves the authenticated vendor's own
// workspace from the hub.
type DashboardHandler struct {
	BaseHandler
	summaryService *dashboardapp.SummaryService
	hub            *dashboardapp.WorkspaceHub
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(summaryService *dashboardapp.SummaryService, hub *dashboardapp.WorkspaceHub) *DashboardHandler {
	return &DashboardHandler{
		summaryService: summaryService,
		hub:            hub,
	}
}

// ScreenStatus reports the sync state of one dashboard screen
type ScreenStatus struct {
	Screen string `json:"screen"`
	Status string `json:"status"`
	Items  int    `json:"items"`
}

// Summary handles GET /dashboard/summary
func (h *DashboardHandler) Summary(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}

	summary, err := h.summaryService.Compute(c.Request.Context(), vendorID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// Refresh handles POST /dashboard/refresh. It reloads every screen's
// collection for the authenticated vendor.
func (h *DashboardHandler) Refresh(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}
	if h.hub == nil {
		h.InternalError(c, "Dashboard workspace is not configured")
		return
	}

	workspace := h.hub.ForVendor(vendorID)
	workspace.RefreshAll(c.Request.Context())
	h.Success(c, screenStatuses(workspace))
}

// Screens handles GET /dashboard/screens
func (h *DashboardHandler) Screens(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor session required")
		return
	}
	if h.hub == nil {
		h.InternalError(c, "Dashboard workspace is not configured")
		return
	}

	h.Success(c, screenStatuses(h.hub.ForVendor(vendorID)))
}

func screenStatuses(w *dashboardapp.Workspace) []ScreenStatus {
	return []ScreenStatus{
		{Screen: "orders", Status: w.Orders.Status().String(), Items: len(w.Orders.Items())},
		{Screen: "products", Status: w.Products.Status().String(), Items: len(w.Products.Items())},
		{Screen: "services", Status: w.Services.Status().String(), Items: len(w.Services.Items())},
		{Screen: "customers", Status: w.Customers.Status().String(), Items: len(w.Customers.Items())},
		{Screen: "deliveries", Status: w.Deliveries.Status().String(), Items: len(w.Deliveries.Items())},
	}
}
