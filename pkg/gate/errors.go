// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gate

import "errors"

// Every operation failure aborts the enclosing transaction with one of these
// identifiers and no partial state mutation. Translation to human-readable
// text is the caller's concern.
var (
	ErrWalletCapExceeded        = errors.New("wallet cap exceeded")
	ErrInsufficientAccountSpace = errors.New("insufficient account space for extra account meta list")
	ErrUnauthorizedGovernance   = errors.New("unauthorized governance operation")
	ErrInvalidWalletCap         = errors.New("invalid wallet cap value")
	ErrNoPendingUpdate          = errors.New("no pending cap update")
	ErrUpdatePending            = errors.New("a cap update is already pending")
	ErrTimelockNotExpired       = errors.New("timelock period has not expired")
	ErrInvalidAccountOwner      = errors.New("invalid account owner")
	ErrInvalidMigrationVersion  = errors.New("invalid migration version")
	ErrUnsupportedVersion       = errors.New("unsupported version")
	ErrUnsupportedMigration     = errors.New("unsupported migration path")
	ErrAlreadyInitialized       = errors.New("record already initialized")
	ErrConfigNotFound           = errors.New("no config found for mint")
	ErrInvalidRecord            = errors.New("malformed record")
)
