package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
	"github.com/atelier-soudage/outillage-backend/internal/service/dashboard"
	"github.com/atelier-soudage/outillage-backend/pkg/ctxutil"
)

// dashboardService defines the orchestrator surface needed by DashboardHandler.
type dashboardService interface {
	SearchPattes(ctx context.Context, term string) ([]dashboard.PatteSearchResult, error)
	SearchCoupelles(ctx context.Context, term string) ([]dashboard.CoupelleSearchResult, error)
	IsAvailable(ctx context.Context, reference, toolRef string) (bool, error)

	State() dashboard.State
	Selections() []domain.Selection
	ToggleSelection(ctx context.Context, input dashboard.ToggleInput) (*dashboard.ToggleResult, error)
	UpdateQuantity(input dashboard.UpdateQuantityInput) error
	ClearSelections()

	ConfirmShim(ctx context.Context, input dashboard.ShimInput) (*domain.ShimRecord, error)
	AcknowledgeShim() error
	CancelShim()

	Validate(ctx context.Context, input dashboard.ValidateInput) (*dashboard.CommitOutcome, error)
	ConfirmThreshold(ctx context.Context) (*dashboard.CommitOutcome, error)
	DeclineThreshold(ctx context.Context) (*dashboard.CommitOutcome, error)
	ConfirmCritical(ctx context.Context) (*dashboard.CommitOutcome, error)
	DeclineCritical() error

	InProgress(ctx context.Context) ([]domain.InProgressTool, error)
	SelectForCheckin(ctx context.Context, id uuid.UUID) (*domain.InProgressTool, error)
	ConfirmCheckin(ctx context.Context, input dashboard.CheckinInput) (*dashboard.CheckinResult, error)

	TodayHistory(ctx context.Context, day time.Time) ([]domain.HistoryItem, error)
	TodayEntryHistory(ctx context.Context, day time.Time) ([]domain.EntryHistoryItem, error)
}

// sessionSource mints a fresh orchestrator with empty workflow state.
type sessionSource interface {
	NewSession() *dashboard.Service
}

// DashboardHandler serves the check-out/check-in workflow endpoints.
// Each authenticated operator gets their own orchestrator, created on
// first use, so selections and pending confirmations never leak between
// users and one operator's commit does not block another's.
type DashboardHandler struct {
	sessions sessionSource
	log      *slog.Logger

	mu     sync.Mutex
	byUser map[uuid.UUID]dashboardService
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(sessions sessionSource, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		sessions: sessions,
		log:      logger.With("handler", "dashboard"),
		byUser:   make(map[uuid.UUID]dashboardService),
	}
}

// session returns the orchestrator owned by the request's user.
func (h *DashboardHandler) session(r *http.Request) (dashboardService, error) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	svc, ok := h.byUser[userID]
	if !ok {
		svc = h.sessions.NewSession()
		h.byUser[userID] = svc
	}
	return svc, nil
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type selectionDTO struct {
	ItemID    string  `json:"itemId"`
	Kind      string  `json:"kind"`
	SlotIndex *int    `json:"slotIndex,omitempty"`
	Quantity  int     `json:"quantity"`
	Assise    *string `json:"assise,omitempty"`
	Axe       *string `json:"axe,omitempty"`
}

type shimRecordDTO struct {
	ID             string `json:"id"`
	AmortisseurRef string `json:"amortisseurRef"`
	Assise         string `json:"assise"`
	Axe            string `json:"axe"`
	ThicknessMm    int    `json:"thicknessMm"`
	PersonName     string `json:"personName"`
	RecordedAt     string `json:"recordedAt"`
}

type toggleResponse struct {
	State             string         `json:"state"`
	Added             bool           `json:"added"`
	Removed           bool           `json:"removed"`
	ShimPromptPending bool           `json:"shimPromptPending"`
	ShimExisting      *shimRecordDTO `json:"shimExisting,omitempty"`
}

type tupleOutcomeDTO struct {
	Reference string  `json:"reference"`
	ToolRef   string  `json:"toolRef"`
	Location  *string `json:"location,omitempty"`
	Quantity  int     `json:"quantity"`
	Error     string  `json:"error,omitempty"`
}

type thresholdPromptDTO struct {
	Reference    string `json:"reference"`
	ToolRef      string `json:"toolRef"`
	Requested    int    `json:"requested"`
	CurrentTotal int    `json:"currentTotal"`
}

type criticalToolDTO struct {
	ID           string  `json:"id"`
	Reference    string  `json:"reference"`
	ComposantRef *string `json:"composantRef,omitempty"`
	ToolRef      string  `json:"toolRef"`
	Location     *string `json:"location,omitempty"`
}

type commitOutcomeResponse struct {
	State     string              `json:"state"`
	Done      bool                `json:"done"`
	Results   []tupleOutcomeDTO   `json:"results"`
	Critical  []criticalToolDTO   `json:"critical,omitempty"`
	Threshold *thresholdPromptDTO `json:"threshold,omitempty"`
}

type patteSearchDTO struct {
	ID             string    `json:"id"`
	PatteAnneauRef string    `json:"patteAnneauRef"`
	Reference      string    `json:"reference"`
	Slots          []slotDTO `json:"slots"`
	Commentaire    *string   `json:"commentaire,omitempty"`
	Observation    *string   `json:"observation,omitempty"`
	HasHistory     bool      `json:"hasHistory"`
}

type slotDTO struct {
	ToolRef   *string `json:"toolRef,omitempty"`
	Location  *string `json:"location,omitempty"`
	Available bool    `json:"available"`
}

type coupelleSearchDTO struct {
	ID             string            `json:"id"`
	AmortisseurRef string            `json:"amortisseurRef"`
	CoupelleRef    string            `json:"coupelleRef"`
	Slots          []coupelleSlotDTO `json:"slots"`
	HasHistory     bool              `json:"hasHistory"`
}

type coupelleSlotDTO struct {
	Assise          *string `json:"assise,omitempty"`
	AssiseLocation  *string `json:"assiseLocation,omitempty"`
	AssiseAvailable bool    `json:"assiseAvailable"`
	Axe             *string `json:"axe,omitempty"`
	AxeLocation     *string `json:"axeLocation,omitempty"`
	AxeAvailable    bool    `json:"axeAvailable"`
	Remark          *string `json:"remark,omitempty"`
}

type inProgressDTO struct {
	ID          string  `json:"id"`
	Reference   string  `json:"reference"`
	ToolRef     string  `json:"toolRef"`
	Location    *string `json:"location,omitempty"`
	PersonName  string  `json:"personName"`
	Activity    string  `json:"activity"`
	Quantity    int     `json:"quantity"`
	OperationAt string  `json:"operationAt"`
}

type historyItemDTO struct {
	ID          string  `json:"id"`
	Reference   string  `json:"reference"`
	ToolRef     string  `json:"toolRef"`
	Location    *string `json:"location,omitempty"`
	PersonName  string  `json:"personName"`
	Activity    string  `json:"activity"`
	Quantity    int     `json:"quantity"`
	OperationAt string  `json:"operationAt"`
}

type entryItemDTO struct {
	ID          string  `json:"id"`
	Reference   string  `json:"reference"`
	ToolRef     string  `json:"toolRef"`
	Location    *string `json:"location,omitempty"`
	PersonName  string  `json:"personName"`
	Quantity    int     `json:"quantity"`
	OperationAt string  `json:"operationAt"`
}

// ---------------------------------------------------------------------------
// Search and availability
// ---------------------------------------------------------------------------

// SearchPattes handles GET /dashboard/pattes?q=term.
func (h *DashboardHandler) SearchPattes(w http.ResponseWriter, r *http.Request) {
	svc, err := h.session(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	results, err := svc.SearchPattes(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]patteSearchDTO, 0, len(results))
	for _, res := range results {
		out = append(out, toPatteSearchDTO(res))
	}
	writeJSON(w, http.StatusOK, out)
}

// SearchCoupelles handles GET /dashboard/coupelles?q=term.
func (h *DashboardHandler) SearchCoupelles(w http.ResponseWriter, r *http.Request) {
	svc, err := h.session(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	results, err := svc.SearchCoupelles(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]coupelleSearchDTO, 0, len(results))
	for _, res := range results {
		out = append(out, toCoupelleSearchDTO(res))
	}
	writeJSON(w, http.StatusOK, out)
}

// Availability handles GET /dashboard/availability?reference=R&toolRef=T.
func (h *DashboardHandler) Availability(w http.ResponseWriter, r *http.Request) {
	svc, err := h.session(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	reference := r.URL.Query().Get("reference")
	toolRef := r.URL.Query().Get("toolRef")
	if reference == "" || toolRef == "" {
		writeError(w, http.StatusBadRequest, "reference and toolRef are required")
		return
	}

	available, err := svc.IsAvailable(r.Context(), reference, toolRef)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"available": available})
}

// ---------------------------------------------------------------------------
// Selection workflow
// ---------------------------------------------------------------------------

// State handles GET /dashboard/state.
func (h *DashboardHandler) State(w http.ResponseWriter, r *http.Request) {
	svc, err := h.session(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"state": svc.State().String()})
}

// Selections handles GET /dashboard/selections.
func (h *DashboardHandler) Selections(w http.ResponseWriter, r *http.Request) {
	svc, err := h.session(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	selections := svc.Selections()
	out := make([]selectionDTO, 0, len(selections))
	for _, sel := range selections {
		out = append(out, toSelectionDTO(sel))
	}
	writeJSON(w, http.StatusOK, out)
}

type toggleRequest struct {
	ItemID    string  `json:"itemId"`
	Kind      string  `json:"kind"`
	SlotIndex *int    `json:"slotIndex"`
	Quantity  int     `json:"quantity"`
	Assise    *string `json:"assise"`
	Axe       *string `json:"axe"`
}

// Toggle handles POST /dashboard/selections/toggle.
func (h *DashboardHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	svc, err := h.session(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid itemId")
		return
	}

	result, err := svc.ToggleSelection(r.Context(), dashboard.ToggleInput{
		Selection: domain.Selection{
			ItemID:    itemID,
			Kind:      domain.ToolKind(req.Kind),
			SlotIndex: req.SlotIndex,
			Quantity:  req.Quantity,
			Assise:    req.Assise,
			Axe:       req.Axe,
		},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := toggleResponse{
		State:             svc.State().String(),
		Added:             result.Added,
		Removed:           result.Removed,
		ShimPromptPending: result.ShimPromptPending,
	}
	if result.ShimExisting != nil {
		dto := toShimRecordDTO(*result.ShimExisting)
		resp.ShimExisting = &dto
	}
	writeJSON(w, http.StatusOK, resp)
}

type quantityRequest struct {
	ItemID    string  `json:"itemId"`
	Kind      string  `json:"kind"`
	SlotIndex *int    `json:"slotIndex"`
	Assise    *string `json:"assise"`
	Axe       *string `json:"axe"`
	Quantity  int     `json:"quantity"`
}

// UpdateQuantity handles PUT /dashboard/selections/quantity.
func (h *DashboardHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	svc, err := h.session(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req quantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid itemId")
		return
	}

	err = svc.UpdateQuantity(dashboard.UpdateQuantityInput{
		Selection: domain.Selection{
			ItemID:    itemID,
			Kind:      domain.ToolKind(req.Kind),
			SlotIndex: req.SlotIndex,
			Assise:    req.Assise,
			Axe:       req.Axe,
		},
		Quantity: req.Quantity,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ClearSelections handles DELETE /dashboard/selections.
func (h *DashboardHandler) ClearSelections(w http.ResponseWriter, r *http.Request) {
	svc, err := h.session(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	svc.ClearSelections()
	writeJSON(w, http.StatusOK, map[string]string{"state": svc.State().String()})
}

// ---------------------------------------------------------------------------
// Shim workflow
// ---------------------------------------------------------------------------

type shimRequest struct {
	ThicknessMm int `json:"thicknessMm"`
}

// ConfirmShim handles POST /dashboard/shim.
func (h *DashboardHandler) ConfirmShim(w http.ResponseWriter, r *http.Request) {
	svc, err := h.session(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req shimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := svc.ConfirmShim(r.Context(), dashboard.ShimInput{ThicknessMm: req.ThicknessMm})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toShimRecordDTO(*rec))
}

// AcknowledgeShim handles POST /dashboard/shim/ack.
func (h *DashboardHandler) AcknowledgeShim(w http.ResponseWriter, r *http.Request) {
	svc, err := h.session(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := svc.AcknowledgeShim(); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"state": svc.State().String()})
}

// CancelShim handles DELETE /dashboard/shim.
func (h *DashboardHandler) CancelShim(w http.ResponseWriter, r *http.Request) {
	svc, err := h.session(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	svc.CancelShim()
	writeJSON(w, http.StatusOK, map[string]string{"state": svc.State().String()})
}

// ---------------------------------------------------------------------------
// Check-out commit
// ---------------------------------------------------------------------------

type validateRequest struct {
	PersonName string `json:"personName"`
}

// Validate handles POST /dashboard/validate: commit of the pending
// selection set as a sortie batch.
func (h *DashboardHandler) Validate(w http.ResponseWriter, r *http.Request) {
	svc, err := h.session(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := svc.Validate(r.Context(), dashboard.ValidateInput{PersonName: req.PersonName})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commitResponse(svc, outcome))
}

// ConfirmThreshold handles POST /dashboard/threshold/confirm.
func (h *DashboardHandler) ConfirmThreshold(w http.ResponseWriter, r *http.Request) {
	svc, err := h.session(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	outcome, err := svc.ConfirmThreshold(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commitResponse(svc, outcome))
}

// DeclineThreshold handles POST /dashboard/threshold/decline.
func (h *DashboardHandler) DeclineThreshold(w http.ResponseWriter, r *http.Request) {
	svc, err := h.session(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	outcome, err := svc.DeclineThreshold(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commitResponse(svc, outcome))
}

// ConfirmCritical handles POST /dashboard/critical/confirm.
func (h *DashboardHandler) ConfirmCritical(w http.ResponseWriter, r *http.Request) {
	svc, err := h.session(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	outcome, err := svc.ConfirmCritical(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commitResponse(svc, outcome))
}

// DeclineCritical handles POST /dashboard/critical/decline.
func (h *DashboardHandler) DeclineCritical(w http.ResponseWriter, r *http.Request) {
	svc, err := h.session(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := svc.DeclineCritical(); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"state": svc.State().String()})
}

// ---------------------------------------------------------------------------
// Check-in
// ---------------------------------------------------------------------------

// InProgress handles GET /dashboard/in-progress.
func (h *DashboardHandler) InProgress(w http.ResponseWriter, r *http.Request) {
	svc, err := h.session(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tools, err := svc.InProgress(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]inProgressDTO, 0, len(tools))
	for _, tool := range tools {
		out = append(out, toInProgressDTO(tool))
	}
	writeJSON(w, http.StatusOK, out)
}

// SelectForCheckin handles GET /dashboard/in-progress/{id}.
func (h *DashboardHandler) SelectForCheckin(w http.ResponseWriter, r *http.Request) {
	svc, err := h.session(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	tool, err := svc.SelectForCheckin(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toInProgressDTO(*tool))
}

type checkinRequest struct {
	ID        string `json:"id"`
	Inspected bool   `json:"inspected"`
	Cleaned   bool   `json:"cleaned"`
	Restocked bool   `json:"restocked"`
}

// ConfirmCheckin handles POST /dashboard/checkin.
func (h *DashboardHandler) ConfirmCheckin(w http.ResponseWriter, r *http.Request) {
	svc, err := h.session(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req checkinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	result, err := svc.ConfirmCheckin(r.Context(), dashboard.CheckinInput{
		ID:        id,
		Inspected: req.Inspected,
		Cleaned:   req.Cleaned,
		Restocked: req.Restocked,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryItemDTO(result.Entry))
}

// ---------------------------------------------------------------------------
// Day histories
// ---------------------------------------------------------------------------

// History handles GET /dashboard/history?day=2006-01-02.
func (h *DashboardHandler) History(w http.ResponseWriter, r *http.Request) {
	svc, err := h.session(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	day, err := parseDay(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid day, expected YYYY-MM-DD")
		return
	}

	items, err := svc.TodayHistory(r.Context(), day)
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

// EntryHistory handles GET /dashboard/history/entries?day=2006-01-02.
func (h *DashboardHandler) EntryHistory(w http.ResponseWriter, r *http.Request) {
	svc, err := h.session(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	day, err := parseDay(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid day, expected YYYY-MM-DD")
		return
	}

	items, err := svc.TodayEntryHistory(r.Context(), day)
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

func parseDay(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("day")
	if raw == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", raw)
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func commitResponse(svc dashboardService, outcome *dashboard.CommitOutcome) commitOutcomeResponse {
	resp := commitOutcomeResponse{
		State:   svc.State().String(),
		Done:    outcome.Done,
		Results: make([]tupleOutcomeDTO, 0, len(outcome.Results)),
	}
	for _, res := range outcome.Results {
		dto := tupleOutcomeDTO{
			Reference: res.Reference,
			ToolRef:   res.ToolRef,
			Location:  res.Location,
			Quantity:  res.Quantity,
		}
		if res.Err != nil {
			dto.Error = res.Err.Error()
		}
		resp.Results = append(resp.Results, dto)
	}
	for _, tool := range outcome.Critical {
		resp.Critical = append(resp.Critical, criticalToolDTO{
			ID:           tool.ID.String(),
			Reference:    tool.Reference,
			ComposantRef: tool.ComposantRef,
			ToolRef:      tool.ToolRef,
			Location:     tool.Location,
		})
	}
	if outcome.Threshold != nil {
		resp.Threshold = &thresholdPromptDTO{
			Reference:    outcome.Threshold.Reference,
			ToolRef:      outcome.Threshold.ToolRef,
			Requested:    outcome.Threshold.Requested,
			CurrentTotal: outcome.Threshold.CurrentTotal,
		}
	}
	return resp
}

func toSelectionDTO(sel domain.Selection) selectionDTO {
	return selectionDTO{
		ItemID:    sel.ItemID.String(),
		Kind:      sel.Kind.String(),
		SlotIndex: sel.SlotIndex,
		Quantity:  sel.Quantity,
		Assise:    sel.Assise,
		Axe:       sel.Axe,
	}
}

func toShimRecordDTO(rec domain.ShimRecord) shimRecordDTO {
	return shimRecordDTO{
		ID:             rec.ID.String(),
		AmortisseurRef: rec.AmortisseurRef,
		Assise:         rec.Assise,
		Axe:            rec.Axe,
		ThicknessMm:    rec.ThicknessMm,
		PersonName:     rec.PersonName,
		RecordedAt:     rec.RecordedAt.Format(time.RFC3339),
	}
}

func toPatteSearchDTO(res dashboard.PatteSearchResult) patteSearchDTO {
	dto := patteSearchDTO{
		ID:             res.Tool.ID.String(),
		PatteAnneauRef: res.Tool.PatteAnneauRef,
		Reference:      res.Tool.Reference,
		Commentaire:    res.Tool.Commentaire,
		Observation:    res.Tool.Observation,
		HasHistory:     res.HasHistory,
		Slots:          make([]slotDTO, 0, domain.MaxSlots),
	}
	for i, slot := range res.Tool.Slots {
		dto.Slots = append(dto.Slots, slotDTO{
			ToolRef:   slot.ToolRef,
			Location:  slot.Location,
			Available: res.SlotAvailable[i],
		})
	}
	return dto
}

func toCoupelleSearchDTO(res dashboard.CoupelleSearchResult) coupelleSearchDTO {
	dto := coupelleSearchDTO{
		ID:             res.Tool.ID.String(),
		AmortisseurRef: res.Tool.AmortisseurRef,
		CoupelleRef:    res.Tool.CoupelleRef,
		HasHistory:     res.HasHistory,
		Slots:          make([]coupelleSlotDTO, 0, domain.MaxSlots),
	}
	for i, slot := range res.Tool.Slots {
		dto.Slots = append(dto.Slots, coupelleSlotDTO{
			Assise:          slot.Assise,
			AssiseLocation:  slot.AssiseLocation,
			AssiseAvailable: res.AssiseAvailable[i],
			Axe:             slot.Axe,
			AxeLocation:     slot.AxeLocation,
			AxeAvailable:    res.AxeAvailable[i],
			Remark:          slot.Remark,
		})
	}
	return dto
}

func toInProgressDTO(tool domain.InProgressTool) inProgressDTO {
	return inProgressDTO{
		ID:          tool.ID.String(),
		Reference:   tool.Reference,
		ToolRef:     tool.ToolRef,
		Location:    tool.Location,
		PersonName:  tool.PersonName,
		Activity:    tool.Activity.String(),
		Quantity:    tool.Quantity,
		OperationAt: tool.OperationAt.Format(time.RFC3339),
	}
}

func toHistoryItemDTO(item domain.HistoryItem) historyItemDTO {
	return historyItemDTO{
		ID:          item.ID.String(),
		Reference:   item.Reference,
		ToolRef:     item.ToolRef,
		Location:    item.Location,
		PersonName:  item.PersonName,
		Activity:    item.Activity.String(),
		Quantity:    item.Quantity,
		OperationAt: item.OperationAt.Format(time.RFC3339),
	}
}

func toEntryItemDTO(item domain.EntryHistoryItem) entryItemDTO {
	return entryItemDTO{
		ID:          item.ID.String(),
		Reference:   item.Reference,
		ToolRef:     item.ToolRef,
		Location:    item.Location,
		PersonName:  item.PersonName,
		Quantity:    item.Quantity,
		OperationAt: item.OperationAt.Format(time.RFC3339),
	}
}
