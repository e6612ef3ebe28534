// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/luxfi/capgate/cmd/assetcmd"
	"github.com/luxfi/capgate/cmd/govcmd"
	"github.com/luxfi/capgate/cmd/validatecmd"
	"github.com/luxfi/capgate/pkg/application"
	"github.com/luxfi/capgate/pkg/config"
	"github.com/luxfi/capgate/pkg/constants"
	"github.com/luxfi/capgate/pkg/ux"
	"github.com/luxfi/filesystem/perms"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	app        *application.Capgate
	logFactory luxlog.Factory

	logLevel string
	Version  = "0.1.0"
	cfgFile  string
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "capgate",
		Long: `Capgate - per-asset wallet-cap enforcement and timelocked governance.

Capgate maintains one governed config record per asset mint: a wallet cap
that bounds every non-exempt holder's resting balance, a single exempt
wallet, and a governance authority that can change the cap only through a
48-hour timelock.

COMMAND OVERVIEW:

  asset      Provision and inspect per-asset records
  gov        Governance operations (propose/execute/cancel/rotate/migrate)
  validate   Run the transfer check against a stored config

QUICK START:

  # Provision an asset
  capgate asset init <mint> --exempt <wallet> --authority <wallet>
  capgate asset resolver-init <mint>

  # Propose and (after 48h) apply a new cap
  capgate gov propose <mint> <new-cap> --signer <wallet>
  capgate gov execute <mint> --signer <wallet>

  # Simulate the transfer check
  capgate validate <mint> --owner <wallet> --balance 0 --amount 1000000000

For detailed command help, use: capgate <command> --help`,
		PersistentPreRunE: createApp,
		Version:           Version,
	}

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.capgate/config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "ERROR", "log level for the application")

	rootCmd.AddCommand(assetcmd.NewCmd(app))
	rootCmd.AddCommand(govcmd.NewCmd(app))
	rootCmd.AddCommand(validatecmd.NewCmd(app))

	return rootCmd
}

func createApp(_ *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}

	if logLevel != "" {
		if level, err := luxlog.ToLevel(logLevel); err == nil {
			logFactory.SetDisplayLevel("capgate", level)
		}
	}

	cf := config.New()
	app.Setup(baseDir, log, cf)

	initConfig()
	return nil
}

func setupEnv() (string, error) {
	usr, err := user.Current()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get system user %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(usr.HomeDir, constants.BaseDirName)

	if err := os.MkdirAll(baseDir, constants.DefaultPerms755); err != nil {
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		return "", err
	}

	dbDir := filepath.Join(baseDir, constants.DBDir)
	if err := os.MkdirAll(dbDir, constants.DefaultPerms755); err != nil {
		fmt.Printf("failed creating the db dir %s: %s\n", dbDir, err)
		return "", err
	}

	return baseDir, nil
}

func setupLogging(baseDir string) (luxlog.Logger, error) {
	config := luxlog.Config{}
	config.LogLevel = luxlog.Level(-6)
	config.DisplayLevel, _ = luxlog.ToLevel("WARN")

	config.Directory = filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(config.Directory, perms.ReadWriteExecute); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	config.LogFormat = luxlog.Colors
	config.MaxSize = constants.MaxLogFileSize
	config.MaxFiles = constants.MaxNumOfLogFiles
	config.MaxAge = constants.RetainOldFiles

	// Register ux package as internal so caller tracking shows actual source, not the wrapper
	luxlog.RegisterInternalPackages("github.com/luxfi/capgate/pkg/ux")

	factory := luxlog.NewFactoryWithConfig(config)
	log, err := factory.Make("capgate")
	if err != nil {
		factory.Close()
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	logFactory = factory
	// User output goes to stdout, logs go to stderr
	ux.NewUserLog(log, os.Stdout)
	return log, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		capgateDir := filepath.Join(home, constants.BaseDirName)
		viper.AddConfigPath(capgateDir)
		viper.SetConfigType(constants.DefaultConfigFileType)
		viper.SetConfigName(constants.DefaultConfigFileName)
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		app.Log.Debug("using config file", "config-file", viper.ConfigFileUsed())
	}
	// No config file is normal - most users don't have one, so we silently continue
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	app = application.New()
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		os.Exit(1)
	}
}
