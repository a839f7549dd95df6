package rest

import (
	"net/http"

	"github.com/atelier-soudage/outillage-backend/internal/transport/middleware"
)

// NewRouter mounts every REST endpoint on a ServeMux. The auth middleware
// runs outside this mux and only resolves identities; routes that need an
// authenticated caller are wrapped with RequireUser here. Admin checks
// happen one layer down, in the handlers and services.
func NewRouter(
	health *HealthHandler,
	auth *AuthHandler,
	dashboard *DashboardHandler,
	catalog *CatalogHandler,
	admin *AdminHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /auth/login", auth.Login)
	mux.HandleFunc("POST /auth/refresh", auth.Refresh)
	mux.Handle("POST /auth/logout", middleware.RequireUser(http.HandlerFunc(auth.Logout)))

	protected := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, middleware.RequireUser(fn))
	}

	protected("GET /dashboard/state", dashboard.State)
	protected("GET /dashboard/pattes", dashboard.SearchPattes)
	protected("GET /dashboard/coupelles", dashboard.SearchCoupelles)
	protected("GET /dashboard/availability", dashboard.Availability)

	protected("GET /dashboard/selections", dashboard.Selections)
	protected("POST /dashboard/selections/toggle", dashboard.Toggle)
	protected("PUT /dashboard/selections/quantity", dashboard.UpdateQuantity)
	protected("DELETE /dashboard/selections", dashboard.ClearSelections)

	protected("POST /dashboard/shim", dashboard.ConfirmShim)
	protected("POST /dashboard/shim/ack", dashboard.AcknowledgeShim)
	protected("DELETE /dashboard/shim", dashboard.CancelShim)

	protected("POST /dashboard/validate", dashboard.Validate)
	protected("POST /dashboard/threshold/confirm", dashboard.ConfirmThreshold)
	protected("POST /dashboard/threshold/decline", dashboard.DeclineThreshold)
	protected("POST /dashboard/critical/confirm", dashboard.ConfirmCritical)
	protected("POST /dashboard/critical/decline", dashboard.DeclineCritical)

	protected("GET /dashboard/in-progress", dashboard.InProgress)
	protected("GET /dashboard/in-progress/{id}", dashboard.SelectForCheckin)
	protected("POST /dashboard/checkin", dashboard.ConfirmCheckin)

	protected("GET /dashboard/history", dashboard.History)
	protected("GET /dashboard/history/entries", dashboard.EntryHistory)

	protected("GET /catalog/pattes", catalog.ListPattes)
	protected("GET /catalog/coupelles", catalog.ListCoupelles)
	protected("POST /admin/catalog/pattes", catalog.CreatePatte)
	protected("PUT /admin/catalog/pattes/{id}", catalog.UpdatePatte)
	protected("DELETE /admin/catalog/pattes/{id}", catalog.DeletePatte)
	protected("POST /admin/catalog/coupelles", catalog.CreateCoupelle)
	protected("PUT /admin/catalog/coupelles/{id}", catalog.UpdateCoupelle)
	protected("DELETE /admin/catalog/coupelles/{id}", catalog.DeleteCoupelle)

	protected("GET /admin/users", admin.ListUsers)
	protected("POST /admin/users", admin.CreateUser)
	protected("PUT /admin/users/{id}/password", admin.UpdateUserPassword)
	protected("DELETE /admin/users/{id}", admin.DeleteUser)

	protected("GET /admin/history", admin.ListHistory)
	protected("PUT /admin/history/{id}", admin.UpdateHistory)
	protected("DELETE /admin/history/{id}", admin.DeleteHistory)
	protected("GET /admin/history/entries", admin.ListEntries)
	protected("DELETE /admin/history/entries/{id}", admin.DeleteEntry)

	protected("GET /admin/shims", admin.ListShims)
	protected("PUT /admin/shims/{id}", admin.UpdateShim)
	protected("DELETE /admin/shims/{id}", admin.DeleteShim)

	protected("GET /admin/critical", admin.ListCritical)
	protected("POST /admin/critical", admin.CreateCritical)
	protected("DELETE /admin/critical/{id}", admin.DeleteCritical)

	return mux
}
