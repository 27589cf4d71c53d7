// Package errors contains domain-specific errors for the heartbeat domain
package errors

import (
	pkgerrors "github.com/Conte777/keepalive-service/pkg/errors"
)

// Domain errors for heartbeat operations. Callers only ever see these
// sentinels; transport detail is logged where the failure originates.
var (
	ErrSession      = pkgerrors.NewUnavailableError("session request failed")
	ErrPing         = pkgerrors.NewUnavailableError("ping request failed")
	ErrNotifier     = pkgerrors.NewInternalError("notification delivery failed")
	ErrInvalidProxy = pkgerrors.NewValidationError("invalid proxy")
	ErrNoAccounts   = pkgerrors.NewValidationError("no accounts configured")
)
