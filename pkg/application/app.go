// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"fmt"
	"path/filepath"

	"github.com/luxfi/capgate/pkg/config"
	"github.com/luxfi/capgate/pkg/constants"
	"github.com/luxfi/database"
	"github.com/luxfi/database/badgerdb"
	luxlog "github.com/luxfi/log"
)

// Capgate carries the per-invocation context shared by all command packages.
type Capgate struct {
	Log     luxlog.Logger
	Conf    *config.Config
	baseDir string
}

func New() *Capgate {
	return &Capgate{}
}

func (app *Capgate) Setup(baseDir string, log luxlog.Logger, conf *config.Config) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
}

func (app *Capgate) GetBaseDir() string {
	return app.baseDir
}

func (app *Capgate) GetDBDir() string {
	return filepath.Join(app.baseDir, constants.DBDir)
}

func (app *Capgate) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *Capgate) ConfigFileExists() bool {
	return app.Conf != nil && app.Conf.ConfigFileExists()
}

// OpenDB opens the local store holding per-asset config records. Callers own
// the returned handle and must close it.
func (app *Capgate) OpenDB() (database.Database, error) {
	db, err := badgerdb.New(app.GetDBDir(), nil, "", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", app.GetDBDir(), err)
	}
	return db, nil
}
