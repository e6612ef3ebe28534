// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package governance mutates per-asset config records: cap proposals under a
// mandatory timelock, authority rotation, and schema migration. Every
// operation loads the record, verifies the signer against the stored
// authority, applies the change, and persists it back.
package governance

import (
	"fmt"
	"time"

	"github.com/luxfi/capgate/pkg/configstore"
	"github.com/luxfi/capgate/pkg/gate"
	"github.com/luxfi/ids"
)

// Engine executes governance operations against a config store.
type Engine struct {
	store   *configstore.Store
	emitter gate.Emitter
	now     func() time.Time
}

type Option func(*Engine)

// WithClock overrides the time source. Tests use this to cross the timelock
// boundary without waiting.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithEmitter sets the event sink.
func WithEmitter(emitter gate.Emitter) Option {
	return func(e *Engine) {
		e.emitter = emitter
	}
}

func New(store *configstore.Store, opts ...Option) *Engine {
	e := &Engine{
		store:   store,
		emitter: gate.NopEmitter{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Initialize provisions the config record for mint with the default cap.
// It fails if the record already exists.
func (e *Engine) Initialize(mint ids.ID, exemptWallet ids.ID, authority ids.ID) (gate.Config, error) {
	cfg := gate.NewConfig(exemptWallet, authority)
	if err := e.store.InitializeConfig(mint, cfg); err != nil {
		return gate.Config{}, err
	}
	return cfg, nil
}

// Propose records a pending cap change for mint. The new cap must be within
// (0, MaxWalletCap], and at most one proposal may be outstanding; a second
// proposal is rejected rather than silently replacing the first.
func (e *Engine) Propose(mint ids.ID, signer ids.ID, newCap uint64) (gate.PendingCapUpdate, error) {
	cfg, err := e.loadAuthorized(mint, signer)
	if err != nil {
		return gate.PendingCapUpdate{}, err
	}
	if newCap == 0 || newCap > gate.MaxWalletCap {
		return gate.PendingCapUpdate{}, fmt.Errorf("%w: %d not in (0, %d]",
			gate.ErrInvalidWalletCap, newCap, gate.MaxWalletCap)
	}
	if cfg.Pending.Present() {
		return gate.PendingCapUpdate{}, fmt.Errorf("%w: mint %s", gate.ErrUpdatePending, mint)
	}

	now := e.now().Unix()
	update := gate.PendingCapUpdate{
		NewCap:        newCap,
		ProposedAt:    now,
		ExecutionTime: now + int64(gate.TimelockDuration/time.Second),
	}
	cfg.Pending = gate.SomePending(update)
	if err := e.store.PutConfig(mint, cfg); err != nil {
		return gate.PendingCapUpdate{}, err
	}

	e.emitter.Emit(gate.CapUpdateProposed{
		Mint:          mint,
		NewCap:        newCap,
		CurrentCap:    cfg.WalletCapRaw,
		ProposedAt:    update.ProposedAt,
		ExecutionTime: update.ExecutionTime,
		Authority:     signer,
	})
	return update, nil
}

// Execute applies the pending cap change once the timelock has elapsed. The
// boundary is inclusive: execution at exactly the recorded execution time
// succeeds.
func (e *Engine) Execute(mint ids.ID, signer ids.ID) (gate.Config, error) {
	cfg, err := e.loadAuthorized(mint, signer)
	if err != nil {
		return gate.Config{}, err
	}
	update, ok := cfg.Pending.Get()
	if !ok {
		return gate.Config{}, fmt.Errorf("%w: mint %s", gate.ErrNoPendingUpdate, mint)
	}
	now := e.now().Unix()
	if now < update.ExecutionTime {
		return gate.Config{}, fmt.Errorf("%w: %ds remaining",
			gate.ErrTimelockNotExpired, update.ExecutionTime-now)
	}

	oldCap := cfg.WalletCapRaw
	cfg.WalletCapRaw = update.NewCap
	cfg.Pending.Clear()
	if err := e.store.PutConfig(mint, cfg); err != nil {
		return gate.Config{}, err
	}

	e.emitter.Emit(gate.CapUpdated{
		Mint:      mint,
		OldCap:    oldCap,
		NewCap:    update.NewCap,
		UpdatedAt: now,
		Authority: signer,
	})
	return cfg, nil
}

// Cancel withdraws the pending cap change without applying it. Cancellation
// is allowed at any point of the timelock, including after expiry.
func (e *Engine) Cancel(mint ids.ID, signer ids.ID) (gate.Config, error) {
	cfg, err := e.loadAuthorized(mint, signer)
	if err != nil {
		return gate.Config{}, err
	}
	update, ok := cfg.Pending.Get()
	if !ok {
		return gate.Config{}, fmt.Errorf("%w: mint %s", gate.ErrNoPendingUpdate, mint)
	}

	cfg.Pending.Clear()
	if err := e.store.PutConfig(mint, cfg); err != nil {
		return gate.Config{}, err
	}

	e.emitter.Emit(gate.CapUpdateCanceled{
		Mint:        mint,
		CanceledCap: update.NewCap,
		CurrentCap:  cfg.WalletCapRaw,
		CanceledAt:  e.now().Unix(),
		Authority:   signer,
	})
	return cfg, nil
}

// RotateAuthority hands governance to a new principal, effective immediately.
// A pending cap proposal survives rotation untouched.
func (e *Engine) RotateAuthority(mint ids.ID, signer ids.ID, newAuthority ids.ID) (gate.Config, error) {
	cfg, err := e.loadAuthorized(mint, signer)
	if err != nil {
		return gate.Config{}, err
	}

	old := cfg.GovernanceAuthority
	cfg.GovernanceAuthority = newAuthority
	if err := e.store.PutConfig(mint, cfg); err != nil {
		return gate.Config{}, err
	}

	e.emitter.Emit(gate.AuthorityRotated{
		Mint:         mint,
		OldAuthority: old,
		NewAuthority: newAuthority,
		RotatedAt:    e.now().Unix(),
	})
	return cfg, nil
}

// Migrate upgrades the config record schema to target.
func (e *Engine) Migrate(mint ids.ID, signer ids.ID, target uint8) (gate.Config, error) {
	cfg, err := e.loadAuthorized(mint, signer)
	if err != nil {
		return gate.Config{}, err
	}

	oldVersion := cfg.Version
	if err := gate.ApplyMigration(&cfg, target); err != nil {
		return gate.Config{}, err
	}
	if err := e.store.PutConfig(mint, cfg); err != nil {
		return gate.Config{}, err
	}

	e.emitter.Emit(gate.ConfigMigrated{
		Mint:       mint,
		OldVersion: oldVersion,
		NewVersion: cfg.Version,
		MigratedAt: e.now().Unix(),
		Authority:  signer,
	})
	return cfg, nil
}

// loadAuthorized loads the config for mint and rejects signers other than the
// stored governance authority.
func (e *Engine) loadAuthorized(mint ids.ID, signer ids.ID) (gate.Config, error) {
	cfg, err := e.store.GetConfig(mint)
	if err != nil {
		return gate.Config{}, err
	}
	if signer != cfg.GovernanceAuthority {
		return gate.Config{}, fmt.Errorf("%w: signer %s", gate.ErrUnauthorizedGovernance, signer)
	}
	return cfg, nil
}
