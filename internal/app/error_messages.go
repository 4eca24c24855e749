// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denis Chernov

// Package app contains shared application-layer constants used across the
// weightkeeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded as
	// JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body decodes but
	// fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgAvailabilityQueryRequired is returned when the availability
	// endpoint is called with neither a username nor an email to check.
	MsgAvailabilityQueryRequired = "username or email query parameter is required"

	// MsgNoAccountWithEmail is returned when no account is registered under
	// the supplied email address.
	MsgNoAccountWithEmail = "no account with that email"

	// MsgInvalidMeasurementID is returned when the measurement id path
	// segment is not a valid integer.
	MsgInvalidMeasurementID = "invalid measurement id"

	// MsgMeasurementNotFound is returned when an update targets a
	// measurement entry that does not exist.
	MsgMeasurementNotFound = "measurement not found"
)
