// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import (
	"time"
)

const (
	DefaultPerms755    = 0o755
	WriteReadReadPerms = 0o644

	BaseDirName = ".capgate"
	LogDir      = "logs"
	DBDir       = "db"

	DefaultConfigFileName = "config"
	DefaultConfigFileType = "json"

	// ConfigSeed and ExtraAccountMetasSeed are the fixed labels used to
	// derive per-asset record addresses. They are part of the public wire
	// contract: any reader can recompute the addresses from label + mint.
	ConfigSeed            = "capgate-config"
	ExtraAccountMetasSeed = "capgate-extra-metas"

	// ExtraAccountMetasSize is the allocated slot size for the extra account
	// meta list record. Generous for the single config descriptor.
	ExtraAccountMetasSize = 128

	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	OperationTimeout = 30 * time.Second
)
