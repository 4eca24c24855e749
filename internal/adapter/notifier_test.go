package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dchernov/weightkeeper/internal/config"
	"github.com/dchernov/weightkeeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookNotifier_Delivers(t *testing.T) {
	var received GoalReachedEvent
	var calls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := NewGoalNotifier(config.Notify{WebhookURL: srv.URL, Timeout: time.Second}, logger.Nop())

	err := n.NotifyGoalReached(context.Background(), 7, 169.5, 170)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, GoalReachedEvent{AccountID: 7, CurrentWeight: 169.5, GoalWeight: 170}, received)
}

func TestWebhookNotifier_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := NewGoalNotifier(config.Notify{WebhookURL: srv.URL, Timeout: time.Second}, logger.Nop())

	err := n.NotifyGoalReached(context.Background(), 7, 169.5, 170)
	assert.Error(t, err)
}

func TestWebhookNotifier_Unconfigured(t *testing.T) {
	n := NewGoalNotifier(config.Notify{}, logger.Nop())

	assert.NoError(t, n.NotifyGoalReached(context.Background(), 7, 169.5, 170))
}
