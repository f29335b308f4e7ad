package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openmediahub/mediashelf/internal/filestore"
	"github.com/openmediahub/mediashelf/internal/logging"
	"github.com/openmediahub/mediashelf/internal/paths"
	"github.com/openmediahub/mediashelf/internal/sqlite"
	"github.com/openmediahub/mediashelf/pkg/mediashelf"
	"github.com/openmediahub/mediashelf/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Persistent flags.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Shell state wired by initShell before every command except version.
var (
	session   *logging.Session
	shellLog  *logging.Logger
	schema    *types.FieldSet
	digest    types.Digest
	snapshots types.SnapshotStore
	repo      *types.Repository
	accounts  *types.Accounts

	// configDataDir carries the data_dir value read from config.yaml
	// into the data directory resolution.
	configDataDir string

	// closeSnapshots releases backend resources when the backend holds
	// any (sqlite). Nil for the file backend.
	closeSnapshots func() error
)

var rootCmd = &cobra.Command{
	Use:   "shelf",
	Short: "Content-addressed media metadata repository",
	Long: `shelf keeps metadata records for media files, identified by the
digest of the file content, together with a registry of contributor
accounts. Every change is persisted immediately, so the repository
survives restarts.`,
	Version:           mediashelf.Version,
	PersistentPreRunE: initShell,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeShell()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "",
		"configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "",
		"data directory for snapshots (default: ./"+paths.DefaultDataDirName+")")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false,
		"print results as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(accountCmd)
}

func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// initShell loads configuration, opens the session log, opens the
// snapshot backend and restores repository and accounts state. The
// version command skips all of it.
func initShell(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := resolveConfigDir()
	if err != nil {
		return fmt.Errorf("resolving config directory: %w", err)
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	sess, err := logging.Open(filepath.Join(configDir, "logs"))
	if err != nil {
		// Commands still work, log lines go to stderr.
		fmt.Fprintln(os.Stderr, "Warning: file logging unavailable:", err)
	}
	session = sess
	shellLog = sess.Component("shell")
	shellLog.Infof("session %s running %q", sess.ID(), cmd.Name())

	schema, err = schemaFromConfig(cfg)
	if err != nil {
		return err
	}
	digest, err = digestFromConfig(cfg)
	if err != nil {
		return err
	}

	configDataDir = cfg.GetString(cfgKeyDataDir)
	dataDir, err := resolveDataDir()
	if err != nil {
		return fmt.Errorf("resolving data directory: %w", err)
	}

	switch backend := cfg.GetString(cfgKeyBackend); backend {
	case backendFile:
		store, err := filestore.New(dataDir, sess.Component("filestore"))
		if err != nil {
			return fmt.Errorf("opening file backend: %w", err)
		}
		snapshots = store
	case backendSQLite:
		store, err := sqlite.Open(filepath.Join(dataDir, sqlite.DefaultFileName), sess.Component("sqlite"))
		if err != nil {
			return fmt.Errorf("opening sqlite backend: %w", err)
		}
		snapshots = store
		closeSnapshots = store.Close
	default:
		return fmt.Errorf("unknown backend %q in config, valid backends: %s, %s",
			backend, backendFile, backendSQLite)
	}

	repo = types.NewRepository(schema, snapshots)
	accounts = types.NewAccounts(snapshots)

	if err := repo.Load(); err != nil {
		if !errors.Is(err, types.ErrNoSnapshot) {
			return fmt.Errorf("restoring repository: %w", err)
		}
		shellLog.Infof("no repository snapshot, starting empty")
	} else {
		shellLog.Infof("restored %d item(s)", repo.Len())
	}

	if err := accounts.Load(); err != nil {
		if !errors.Is(err, types.ErrNoSnapshot) {
			return fmt.Errorf("restoring accounts: %w", err)
		}
		shellLog.Infof("no accounts snapshot, starting empty")
	} else {
		shellLog.Infof("restored %d account(s)", accounts.Len())
	}

	return nil
}

func closeShell() error {
	if closeSnapshots != nil {
		if err := closeSnapshots(); err != nil {
			return fmt.Errorf("closing backend: %w", err)
		}
	}
	if session != nil {
		return session.Close()
	}
	return nil
}
