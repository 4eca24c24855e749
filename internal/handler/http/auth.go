package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dchernov/weightkeeper/internal/app"
	"github.com/dchernov/weightkeeper/internal/logger"
	"github.com/dchernov/weightkeeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	account, err := h.services.AccountService.Register(ctx, request)
	if err != nil {
		log.Err(err).Msg("account registration failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	token, err := h.services.AccountService.CreateToken(ctx, account)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	writeJSON(w, http.StatusOK, account)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	account, err := h.services.AccountService.Authenticate(ctx, request.Username, request.Password)
	if err != nil {
		log.Err(err).Msg("login failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Debug().Int64("id", account.AccountID).Msg("account successfully logged in")

	token, err := h.services.AccountService.CreateToken(ctx, account)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	writeJSON(w, http.StatusOK, account)
}

// availability reports whether a username or email from the query string is
// already registered. The checks are advisory for registration forms; the
// registration insert remains the authoritative duplicate guard.
func (h *Handler) availability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := r.URL.Query().Get("username")
	email := r.URL.Query().Get("email")
	if username == "" && email == "" {
		http.Error(w, app.MsgAvailabilityQueryRequired, http.StatusBadRequest)
		return
	}

	var response models.AvailabilityResponse
	var err error

	if username != "" {
		if response.UsernameTaken, err = h.services.AccountService.UsernameTaken(ctx, username); err != nil {
			log.Err(err).Msg("username availability lookup failed")
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
	}
	if email != "" {
		if response.EmailTaken, err = h.services.AccountService.EmailTaken(ctx, email); err != nil {
			log.Err(err).Msg("email availability lookup failed")
			http.Error(w, err.Error(), statusFromError(err))
			return
		}
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) usernameByEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RecoveryStartRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	username, found, err := h.services.AccountService.FindUsernameByEmail(ctx, request.Email)
	if err != nil {
		log.Err(err).Msg("username lookup by email failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}
	if !found {
		http.Error(w, app.MsgNoAccountWithEmail, http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, models.UsernameResponse{Username: username})
}

// writeJSON serializes v into the response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
