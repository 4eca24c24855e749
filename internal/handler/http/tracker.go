package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dchernov/weightkeeper/internal/app"
	"github.com/dchernov/weightkeeper/internal/logger"
	"github.com/dchernov/weightkeeper/internal/utils"
	"github.com/dchernov/weightkeeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getGoal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	value, err := h.services.AccountService.GetGoalWeight(ctx, accountID)
	if err != nil {
		log.Err(err).Msg("goal weight lookup failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, models.GoalResponse{GoalWeight: value})
}

func (h *Handler) setGoal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.SetGoalWeight(ctx, accountID, request.GoalWeight); err != nil {
		log.Err(err).Msg("storing goal weight failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, models.GoalResponse{GoalWeight: request.GoalWeight})
}

func (h *Handler) appendMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.MeasurementRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	entry, status, err := h.services.LedgerService.Append(ctx, accountID, request.EntryDate, request.Weight)
	if err != nil {
		log.Err(err).Msg("measurement append failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusCreated, models.MeasurementResponse{Entry: entry, Status: status})
}

func (h *Handler) listMeasurements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entries, status, err := h.services.LedgerService.List(ctx, accountID)
	if err != nil {
		log.Err(err).Msg("measurement listing failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, models.MeasurementListResponse{Entries: entries, Status: status})
}

func (h *Handler) updateMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entryID, err := entryIDFromURL(r)
	if err != nil {
		http.Error(w, app.MsgInvalidMeasurementID, http.StatusBadRequest)
		return
	}

	var request models.MeasurementRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.LedgerService.Update(ctx, accountID, entryID, request.EntryDate, request.Weight)
	if err != nil {
		log.Err(err).Msg("measurement update failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	if !updated {
		http.Error(w, app.MsgMeasurementNotFound, http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entryID, err := entryIDFromURL(r)
	if err != nil {
		http.Error(w, app.MsgInvalidMeasurementID, http.StatusBadRequest)
		return
	}

	// deleting an absent or foreign entry is a no-op, reported as success
	if _, err = h.services.LedgerService.Remove(ctx, accountID, entryID); err != nil {
		log.Err(err).Msg("measurement removal failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func entryIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
