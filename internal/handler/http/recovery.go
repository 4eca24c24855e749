package http

import (
	"encoding/json"
	"net/http"

	"github.com/dchernov/weightkeeper/internal/app"
	"github.com/dchernov/weightkeeper/internal/logger"
	"github.com/dchernov/weightkeeper/models"
)

// The recovery endpoints form a three-step flow. Each step hands the client
// a signed recovery token carrying the session state; the next step refuses
// to run without it, so no server-side state is held between requests.

func (h *Handler) recoveryStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RecoveryStartRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	session, question, err := h.services.RecoveryService.Start(ctx, request.Email)
	if err != nil {
		log.Err(err).Msg("recovery start failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	tokenString, err := h.services.RecoveryService.IssueToken(session)
	if err != nil {
		log.Err(err).Msg("recovery token creation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.RecoveryStartResponse{
		Question:      question,
		RecoveryToken: tokenString,
	})
}

func (h *Handler) recoveryAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RecoveryAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	session, err := h.services.RecoveryService.ParseToken(request.RecoveryToken)
	if err != nil {
		log.Err(err).Msg("invalid recovery token")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	session, err = h.services.RecoveryService.VerifyAnswer(ctx, session, request.Answer)
	if err != nil {
		log.Err(err).Msg("security answer verification failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	tokenString, err := h.services.RecoveryService.IssueToken(session)
	if err != nil {
		log.Err(err).Msg("recovery token creation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.RecoveryAnswerResponse{RecoveryToken: tokenString})
}

func (h *Handler) recoveryPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RecoveryPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	session, err := h.services.RecoveryService.ParseToken(request.RecoveryToken)
	if err != nil {
		log.Err(err).Msg("invalid recovery token")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if err = h.services.RecoveryService.CompleteReset(ctx, session, request.NewPassword, request.NewPassword2); err != nil {
		log.Err(err).Msg("password reset failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
