// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gate

import (
	"github.com/luxfi/ids"
	luxlog "github.com/luxfi/log"
)

// Event is a governance side effect recorded for external observers
// (monitoring, audit trails). Events never affect stored state.
type Event interface {
	Kind() string
}

// Emitter receives governance events. The default sink logs them; tests
// capture them.
type Emitter interface {
	Emit(Event)
}

type CapUpdateProposed struct {
	Mint          ids.ID
	NewCap        uint64
	CurrentCap    uint64
	ProposedAt    int64
	ExecutionTime int64
	Authority     ids.ID
}

func (CapUpdateProposed) Kind() string { return "cap_update_proposed" }

type CapUpdated struct {
	Mint      ids.ID
	OldCap    uint64
	NewCap    uint64
	UpdatedAt int64
	Authority ids.ID
}

func (CapUpdated) Kind() string { return "cap_updated" }

type CapUpdateCanceled struct {
	Mint        ids.ID
	CanceledCap uint64
	CurrentCap  uint64
	CanceledAt  int64
	Authority   ids.ID
}

func (CapUpdateCanceled) Kind() string { return "cap_update_canceled" }

type AuthorityRotated struct {
	Mint         ids.ID
	OldAuthority ids.ID
	NewAuthority ids.ID
	RotatedAt    int64
}

func (AuthorityRotated) Kind() string { return "authority_rotated" }

type ConfigMigrated struct {
	Mint       ids.ID
	OldVersion uint8
	NewVersion uint8
	MigratedAt int64
	Authority  ids.ID
}

func (ConfigMigrated) Kind() string { return "config_migrated" }

// LogEmitter writes events as structured log records.
type LogEmitter struct {
	log luxlog.Logger
}

func NewLogEmitter(log luxlog.Logger) *LogEmitter {
	return &LogEmitter{log: log}
}

func (e *LogEmitter) Emit(ev Event) {
	e.log.Info("governance event", "kind", ev.Kind(), "event", ev)
}

// NopEmitter discards events.
type NopEmitter struct{}

func (NopEmitter) Emit(Event) {}
