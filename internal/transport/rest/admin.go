package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
	authservice "github.com/atelier-soudage/outillage-backend/internal/service/auth"
	"github.com/atelier-soudage/outillage-backend/internal/service/maintenance"
)

// userService defines the user-management surface needed by AdminHandler.
// Every method is admin-gated inside the service.
type userService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, input authservice.CreateUserInput) (*domain.User, error)
	UpdateUserPassword(ctx context.Context, input authservice.UpdatePasswordInput) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// maintenanceService defines the register surface needed by AdminHandler.
type maintenanceService interface {
	ListHistory(ctx context.Context, f domain.HistoryFilter) ([]domain.HistoryItem, error)
	UpdateHistory(ctx context.Context, input maintenance.UpdateHistoryInput) error
	DeleteHistory(ctx context.Context, id uuid.UUID) error
	ListEntries(ctx context.Context, day time.Time) ([]domain.EntryHistoryItem, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	ListShims(ctx context.Context, f domain.ShimFilter) ([]domain.ShimRecord, error)
	UpdateShim(ctx context.Context, input maintenance.UpdateShimInput) error
	DeleteShim(ctx context.Context, id uuid.UUID) error
	ListCritical(ctx context.Context) ([]domain.CriticalTool, error)
	CreateCritical(ctx context.Context, input maintenance.CreateCriticalInput) (*domain.CriticalTool, error)
	DeleteCritical(ctx context.Context, id uuid.UUID) error
}

// AdminHandler serves user management and register maintenance endpoints.
type AdminHandler struct {
	users       userService
	maintenance maintenanceService
	log         *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(users userService, maint maintenanceService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		users:       users,
		maintenance: maint,
		log:         logger.With("handler", "admin"),
	}
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userResponse{
			ID:          u.ID.String(),
			Username:    u.Username,
			DisplayName: u.DisplayName,
			Role:        u.Role.String(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type createUserRequest struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

// CreateUser handles POST /admin/users.
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.users.CreateUser(r.Context(), authservice.CreateUserInput{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Password:    req.Password,
		Role:        domain.UserRole(req.Role),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{
		ID:          user.ID.String(),
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Role:        user.Role.String(),
	})
}

type updatePasswordRequest struct {
	Password string `json:"password"`
}

// UpdateUserPassword handles PUT /admin/users/{id}/password.
func (h *AdminHandler) UpdateUserPassword(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.users.UpdateUserPassword(r.Context(), authservice.UpdatePasswordInput{
		UserID:      id,
		NewPassword: req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// DeleteUser handles DELETE /admin/users/{id}.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.users.DeleteUser(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---------------------------------------------------------------------------
// Exit log
// ---------------------------------------------------------------------------

// ListHistory handles GET /admin/history?from=&to=&reference=&asc=&limit=.
func (h *AdminHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	f, err := parseHistoryFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.maintenance.ListHistory(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]historyItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toHistoryItemDTO(item))
	}
	writeJSON(w, http.StatusOK, out)
}

type updateHistoryRequest struct {
	Reference   string  `json:"reference"`
	ToolRef     string  `json:"toolRef"`
	Location    *string `json:"location"`
	PersonName  string  `json:"personName"`
	Activity    string  `json:"activity"`
	Quantity    int     `json:"quantity"`
	OperationAt string  `json:"operationAt"`
}

// UpdateHistory handles PUT /admin/history/{id}.
func (h *AdminHandler) UpdateHistory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	operationAt, err := time.Parse(time.RFC3339, req.OperationAt)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid operationAt, expected RFC 3339")
		return
	}

	err = h.maintenance.UpdateHistory(r.Context(), maintenance.UpdateHistoryInput{
		ID:          id,
		Reference:   req.Reference,
		ToolRef:     req.ToolRef,
		Location:    req.Location,
		PersonName:  req.PersonName,
		Activity:    domain.ActivityKind(req.Activity),
		Quantity:    req.Quantity,
		OperationAt: operationAt,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// DeleteHistory handles DELETE /admin/history/{id}.
func (h *AdminHandler) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.maintenance.DeleteHistory)
}

// ListEntries handles GET /admin/history/entries?day=2006-01-02.
func (h *AdminHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	day, err := parseDay(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid day, expected YYYY-MM-DD")
		return
	}

	items, err := h.maintenance.ListEntries(r.Context(), day)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]entryItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toEntryItemDTO(item))
	}
	writeJSON(w, http.StatusOK, out)
}

// DeleteEntry handles DELETE /admin/history/entries/{id}.
func (h *AdminHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.maintenance.DeleteEntry)
}

// ---------------------------------------------------------------------------
// Cale registry
// ---------------------------------------------------------------------------

// ListShims handles GET /admin/shims?from=&to=&assise=&axe=.
func (h *AdminHandler) ListShims(w http.ResponseWriter, r *http.Request) {
	f, err := parseShimFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	recs, err := h.maintenance.ListShims(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]shimRecordDTO, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toShimRecordDTO(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

type updateShimRequest struct {
	AmortisseurRef string `json:"amortisseurRef"`
	Assise         string `json:"assise"`
	Axe            string `json:"axe"`
	ThicknessMm    int    `json:"thicknessMm"`
}

// UpdateShim handles PUT /admin/shims/{id}.
func (h *AdminHandler) UpdateShim(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateShimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.maintenance.UpdateShim(r.Context(), maintenance.UpdateShimInput{
		ID:             id,
		AmortisseurRef: req.AmortisseurRef,
		Assise:         req.Assise,
		Axe:            req.Axe,
		ThicknessMm:    req.ThicknessMm,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// DeleteShim handles DELETE /admin/shims/{id}.
func (h *AdminHandler) DeleteShim(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.maintenance.DeleteShim)
}

// ---------------------------------------------------------------------------
// Critical tools
// ---------------------------------------------------------------------------

// ListCritical handles GET /admin/critical.
func (h *AdminHandler) ListCritical(w http.ResponseWriter, r *http.Request) {
	tools, err := h.maintenance.ListCritical(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]criticalToolDTO, 0, len(tools))
	for _, tool := range tools {
		out = append(out, criticalToolDTO{
			ID:           tool.ID.String(),
			Reference:    tool.Reference,
			ComposantRef: tool.ComposantRef,
			ToolRef:      tool.ToolRef,
			Location:     tool.Location,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type createCriticalRequest struct {
	Reference    string  `json:"reference"`
	ComposantRef *string `json:"composantRef"`
	ToolRef      string  `json:"toolRef"`
	Location     *string `json:"location"`
}

// CreateCritical handles POST /admin/critical.
func (h *AdminHandler) CreateCritical(w http.ResponseWriter, r *http.Request) {
	var req createCriticalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tool, err := h.maintenance.CreateCritical(r.Context(), maintenance.CreateCriticalInput{
		Reference:    req.Reference,
		ComposantRef: req.ComposantRef,
		ToolRef:      req.ToolRef,
		Location:     req.Location,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, criticalToolDTO{
		ID:           tool.ID.String(),
		Reference:    tool.Reference,
		ComposantRef: tool.ComposantRef,
		ToolRef:      tool.ToolRef,
		Location:     tool.Location,
	})
}

// DeleteCritical handles DELETE /admin/critical/{id}.
func (h *AdminHandler) DeleteCritical(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, h.maintenance.DeleteCritical)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (h *AdminHandler) deleteByID(w http.ResponseWriter, r *http.Request, del func(context.Context, uuid.UUID) error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := del(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func parseHistoryFilter(r *http.Request) (domain.HistoryFilter, error) {
	var f domain.HistoryFilter
	q := r.URL.Query()

	if raw := q.Get("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return f, err
		}
		f.From = &t
	}
	if raw := q.Get("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return f, err
		}
		f.To = &t
	}
	if ref := q.Get("reference"); ref != "" {
		f.Reference = &ref
	}
	f.Ascending = q.Get("asc") == "true"
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return f, err
		}
		f.Limit = limit
	}
	return f, nil
}

func parseShimFilter(r *http.Request) (domain.ShimFilter, error) {
	var f domain.ShimFilter
	q := r.URL.Query()

	if raw := q.Get("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return f, err
		}
		f.From = &t
	}
	if raw := q.Get("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return f, err
		}
		f.To = &t
	}
	if assise := q.Get("assise"); assise != "" {
		f.Assise = &assise
	}
	if axe := q.Get("axe"); axe != "" {
		f.Axe = &axe
	}
	return f, nil
}
