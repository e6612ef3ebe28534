// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gate

import "fmt"

// LatestVersion is the newest schema version this build understands.
// Bump it together with a new transform registration.
const LatestVersion uint8 = 1

// A transform rewrites a config in place from one schema version to the next
// without discarding governance or exemption state.
type transform func(*Config) error

type versionPair struct {
	from uint8
	to   uint8
}

// transforms is the explicit table of supported migration paths. It is
// extended only when a new schema version is introduced; there is nothing to
// register while version 1 is the only schema.
var transforms = map[versionPair]transform{}

// ApplyMigration migrates cfg to targetVersion using the registered
// transform, or fails without touching cfg.
func ApplyMigration(cfg *Config, targetVersion uint8) error {
	current := cfg.Version
	if targetVersion <= current {
		return fmt.Errorf("%w: target %d is not above current %d", ErrInvalidMigrationVersion, targetVersion, current)
	}
	if targetVersion > LatestVersion {
		return fmt.Errorf("%w: target %d is beyond latest known version %d", ErrUnsupportedVersion, targetVersion, LatestVersion)
	}
	fn, ok := transforms[versionPair{from: current, to: targetVersion}]
	if !ok {
		return fmt.Errorf("%w: no transform from %d to %d", ErrUnsupportedMigration, current, targetVersion)
	}
	if err := fn(cfg); err != nil {
		return err
	}
	cfg.Version = targetVersion
	return nil
}
