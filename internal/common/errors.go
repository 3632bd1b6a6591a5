// Package common defines shared constants and sentinel errors used across
// the pixelprompt backend. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors (malformed or out-of-policy client input,
	// reported as 4xx and never retried).
	ErrValidation = errors.New("validation error")

	// Upstream errors (object storage or metadata store call failed,
	// safe for the caller to retry).
	ErrUpstream = errors.New("upstream error")

	// Classifier errors (vision-language call failed; propagates per
	// event entry so the notification system can redeliver).
	ErrClassifier = errors.New("classifier error")

	// Internal errors (unexpected/signing failure, 5xx).
	ErrInternal = errors.New("internal error")
)
