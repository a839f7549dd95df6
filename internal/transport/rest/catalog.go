package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
	"github.com/atelier-soudage/outillage-backend/internal/service/catalog"
	"github.com/atelier-soudage/outillage-backend/pkg/ctxutil"
)

// catalogService defines the minimal interface needed by CatalogHandler.
type catalogService interface {
	ListPattes(ctx context.Context, term string) ([]domain.PatteTool, error)
	ListCoupelles(ctx context.Context, term string) ([]domain.CoupelleTool, error)
	CreatePatte(ctx context.Context, input catalog.CreatePatteInput) (*domain.PatteTool, error)
	UpdatePatte(ctx context.Context, input catalog.UpdatePatteInput) (*domain.PatteTool, error)
	DeletePatte(ctx context.Context, id uuid.UUID) error
	CreateCoupelle(ctx context.Context, input catalog.CreateCoupelleInput) (*domain.CoupelleTool, error)
	UpdateCoupelle(ctx context.Context, input catalog.UpdateCoupelleInput) (*domain.CoupelleTool, error)
	DeleteCoupelle(ctx context.Context, id uuid.UUID) error
}

// CatalogHandler serves catalog listing and admin CRUD endpoints.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type patteSlotRequest struct {
	ToolRef  *string `json:"toolRef"`
	Location *string `json:"location"`
}

type patteRequest struct {
	PatteAnneauRef string             `json:"patteAnneauRef"`
	Reference      string             `json:"reference"`
	Slots          []patteSlotRequest `json:"slots"`
	Commentaire    *string            `json:"commentaire"`
	Observation    *string            `json:"observation"`
}

type patteResponse struct {
	ID             string             `json:"id"`
	PatteAnneauRef string             `json:"patteAnneauRef"`
	Reference      string             `json:"reference"`
	Slots          []patteSlotRequest `json:"slots"`
	Commentaire    *string            `json:"commentaire,omitempty"`
	Observation    *string            `json:"observation,omitempty"`
}

type coupelleSlotRequest struct {
	Assise         *string `json:"assise"`
	AssiseLocation *string `json:"assiseLocation"`
	Axe            *string `json:"axe"`
	AxeLocation    *string `json:"axeLocation"`
	Remark         *string `json:"remark"`
}

type coupelleRequest struct {
	AmortisseurRef string                `json:"amortisseurRef"`
	CoupelleRef    string                `json:"coupelleRef"`
	Slots          []coupelleSlotRequest `json:"slots"`
}

type coupelleResponse struct {
	ID             string                `json:"id"`
	AmortisseurRef string                `json:"amortisseurRef"`
	CoupelleRef    string                `json:"coupelleRef"`
	Slots          []coupelleSlotRequest `json:"slots"`
}

// ---------------------------------------------------------------------------
// Listing
// ---------------------------------------------------------------------------

// ListPattes handles GET /catalog/pattes?q=term.
func (h *CatalogHandler) ListPattes(w http.ResponseWriter, r *http.Request) {
	tools, err := h.svc.ListPattes(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]patteResponse, 0, len(tools))
	for i := range tools {
		out = append(out, toPatteResponse(&tools[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// ListCoupelles handles GET /catalog/coupelles?q=term.
func (h *CatalogHandler) ListCoupelles(w http.ResponseWriter, r *http.Request) {
	tools, err := h.svc.ListCoupelles(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]coupelleResponse, 0, len(tools))
	for i := range tools {
		out = append(out, toCoupelleResponse(&tools[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// ---------------------------------------------------------------------------
// Admin CRUD
// ---------------------------------------------------------------------------

// CreatePatte handles POST /admin/catalog/pattes.
func (h *CatalogHandler) CreatePatte(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req patteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tool, err := h.svc.CreatePatte(r.Context(), catalog.CreatePatteInput{
		PatteAnneauRef: req.PatteAnneauRef,
		Reference:      req.Reference,
		Slots:          toPatteSlotInputs(req.Slots),
		Commentaire:    req.Commentaire,
		Observation:    req.Observation,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPatteResponse(tool))
}

// UpdatePatte handles PUT /admin/catalog/pattes/{id}.
func (h *CatalogHandler) UpdatePatte(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req patteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tool, err := h.svc.UpdatePatte(r.Context(), catalog.UpdatePatteInput{
		ID:             id,
		PatteAnneauRef: req.PatteAnneauRef,
		Reference:      req.Reference,
		Slots:          toPatteSlotInputs(req.Slots),
		Commentaire:    req.Commentaire,
		Observation:    req.Observation,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPatteResponse(tool))
}

// DeletePatte handles DELETE /admin/catalog/pattes/{id}.
func (h *CatalogHandler) DeletePatte(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.DeletePatte(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CreateCoupelle handles POST /admin/catalog/coupelles.
func (h *CatalogHandler) CreateCoupelle(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req coupelleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tool, err := h.svc.CreateCoupelle(r.Context(), catalog.CreateCoupelleInput{
		AmortisseurRef: req.AmortisseurRef,
		CoupelleRef:    req.CoupelleRef,
		Slots:          toCoupelleSlotInputs(req.Slots),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCoupelleResponse(tool))
}

// UpdateCoupelle handles PUT /admin/catalog/coupelles/{id}.
func (h *CatalogHandler) UpdateCoupelle(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req coupelleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tool, err := h.svc.UpdateCoupelle(r.Context(), catalog.UpdateCoupelleInput{
		ID:             id,
		AmortisseurRef: req.AmortisseurRef,
		CoupelleRef:    req.CoupelleRef,
		Slots:          toCoupelleSlotInputs(req.Slots),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCoupelleResponse(tool))
}

// DeleteCoupelle handles DELETE /admin/catalog/coupelles/{id}.
func (h *CatalogHandler) DeleteCoupelle(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.DeleteCoupelle(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *CatalogHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !ctxutil.IsAdminCtx(r.Context()) {
		writeError(w, http.StatusForbidden, "admin access required")
		return false
	}
	return true
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func toPatteSlotInputs(slots []patteSlotRequest) [domain.MaxSlots]catalog.PatteSlotInput {
	var out [domain.MaxSlots]catalog.PatteSlotInput
	for i, slot := range slots {
		if i >= domain.MaxSlots {
			break
		}
		out[i] = catalog.PatteSlotInput{ToolRef: slot.ToolRef, Location: slot.Location}
	}
	return out
}

func toCoupelleSlotInputs(slots []coupelleSlotRequest) [domain.MaxSlots]catalog.CoupelleSlotInput {
	var out [domain.MaxSlots]catalog.CoupelleSlotInput
	for i, slot := range slots {
		if i >= domain.MaxSlots {
			break
		}
		out[i] = catalog.CoupelleSlotInput{
			Assise:         slot.Assise,
			AssiseLocation: slot.AssiseLocation,
			Axe:            slot.Axe,
			AxeLocation:    slot.AxeLocation,
			Remark:         slot.Remark,
		}
	}
	return out
}

func toPatteResponse(tool *domain.PatteTool) patteResponse {
	resp := patteResponse{
		ID:             tool.ID.String(),
		PatteAnneauRef: tool.PatteAnneauRef,
		Reference:      tool.Reference,
		Commentaire:    tool.Commentaire,
		Observation:    tool.Observation,
		Slots:          make([]patteSlotRequest, 0, domain.MaxSlots),
	}
	for _, slot := range tool.Slots {
		resp.Slots = append(resp.Slots, patteSlotRequest{ToolRef: slot.ToolRef, Location: slot.Location})
	}
	return resp
}

func toCoupelleResponse(tool *domain.CoupelleTool) coupelleResponse {
	resp := coupelleResponse{
		ID:             tool.ID.String(),
		AmortisseurRef: tool.AmortisseurRef,
		CoupelleRef:    tool.CoupelleRef,
		Slots:          make([]coupelleSlotRequest, 0, domain.MaxSlots),
	}
	for _, slot := range tool.Slots {
		resp.Slots = append(resp.Slots, coupelleSlotRequest{
			Assise:         slot.Assise,
			AssiseLocation: slot.AssiseLocation,
			Axe:            slot.Axe,
			AxeLocation:    slot.AxeLocation,
			Remark:         slot.Remark,
		})
	}
	return resp
}
