package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/quantdash/retirement-planner/internal/calculation"
	"github.com/quantdash/retirement-planner/internal/domain"
	"github.com/quantdash/retirement-planner/internal/store"
)

// Handler holds the dependencies of the HTTP handlers.
type Handler struct {
	Engine *calculation.PlanEngine
	Store  store.ScenarioStore
}

// NewHandler creates a handler backed by the given engine and store.
func NewHandler(engine *calculation.PlanEngine, st store.ScenarioStore) *Handler {
	return &Handler{Engine: engine, Store: st}
}

// errorResponse is the JSON error body. Field and Constraint are set for
// parameter validation failures so the frontend can annotate the offending
// input.
type errorResponse struct {
	Error      string `json:"error"`
	Field      string `json:"field,omitempty"`
	Constraint string `json:"constraint,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeCalcError maps engine errors: validation failures become 422 with the
// field and constraint; anything else is a 500.
func writeCalcError(w http.ResponseWriter, err error) {
	var pe *domain.ParamError
	if errors.As(err, &pe) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:      err.Error(),
			Field:      pe.Field,
			Constraint: pe.Constraint,
		})
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// CalculatePlan runs the engine on the posted parameters.
func (h *Handler) CalculatePlan(w http.ResponseWriter, r *http.Request) {
	var params domain.PlanParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	results, err := h.Engine.CalculatePlan(params)
	if err != nil {
		writeCalcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios, err := h.Store.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if scenarios == nil {
		scenarios = []domain.Scenario{}
	}
	writeJSON(w, http.StatusOK, scenarios)
}

// SaveScenario validates and upserts a named scenario.
func (h *Handler) SaveScenario(w http.ResponseWriter, r *http.Request) {
	var scenario domain.Scenario
	if err := json.NewDecoder(r.Body).Decode(&scenario); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if scenario.Name == "" {
		writeError(w, http.StatusBadRequest, "scenario name is required")
		return
	}
	if err := scenario.Params.Validate(); err != nil {
		writeCalcError(w, err)
		return
	}
	if err := h.Store.Save(scenario); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, scenario)
}

func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	scenario, ok := h.lookupScenario(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, scenario)
}

func (h *Handler) DeleteScenario(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	switch err := h.Store.Delete(name); {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "scenario not found: "+name)
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// PlanScenario loads a stored scenario and runs the engine on it.
func (h *Handler) PlanScenario(w http.ResponseWriter, r *http.Request) {
	scenario, ok := h.lookupScenario(w, r)
	if !ok {
		return
	}
	summary, err := h.Engine.RunScenario(scenario)
	if err != nil {
		writeCalcError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) lookupScenario(w http.ResponseWriter, r *http.Request) (*domain.Scenario, bool) {
	name := chi.URLParam(r, "name")
	scenario, err := h.Store.Get(name)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "scenario not found: "+name)
		return nil, false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return scenario, true
}
