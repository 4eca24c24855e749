// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Chernov

// Package adapter holds outbound integrations: collaborators the services
// talk to over the network.
package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/dchernov/weightkeeper/internal/config"
	"github.com/dchernov/weightkeeper/internal/logger"
	"github.com/go-resty/resty/v2"
)

// GoalReachedEvent is the webhook payload sent when an appended measurement
// puts an account at or under its goal weight.
type GoalReachedEvent struct {
	AccountID     int64   `json:"account_id"`
	CurrentWeight float64 `json:"current_weight"`
	GoalWeight    float64 `json:"goal_weight"`
}

// webhookNotifier delivers goal events with a single POST per event.
// Delivery is fire-and-forget from the caller's point of view: the ledger
// logs a failed delivery and moves on.
type webhookNotifier struct {
	client *resty.Client
	url    string
	logger *logger.Logger
}

// NewGoalNotifier builds the webhook notifier from cfg. When no webhook URL
// is configured it returns a no-op notifier, so callers never need a nil
// check.
func NewGoalNotifier(cfg config.Notify, log *logger.Logger) GoalNotifier {
	if cfg.WebhookURL == "" {
		return nopNotifier{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &webhookNotifier{
		client: resty.New().SetTimeout(timeout),
		url:    cfg.WebhookURL,
		logger: log,
	}
}

func (w *webhookNotifier) NotifyGoalReached(ctx context.Context, accountID int64, currentWeight, goalWeight float64) error {
	resp, err := w.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(GoalReachedEvent{
			AccountID:     accountID,
			CurrentWeight: currentWeight,
			GoalWeight:    goalWeight,
		}).
		Post(w.url)
	if err != nil {
		return fmt.Errorf("goal webhook request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("goal webhook responded with status %d", resp.StatusCode())
	}

	w.logger.Info().
		Str("func", "NotifyGoalReached").
		Int64("account", accountID).
		Float64("current", currentWeight).
		Float64("goal", goalWeight).
		Msg("goal reached notification delivered")

	return nil
}

// nopNotifier is the notifier used when no webhook is configured.
type nopNotifier struct{}

func (nopNotifier) NotifyGoalReached(context.Context, int64, float64, float64) error { return nil }
