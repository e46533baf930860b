package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marcus/ocean-notes/internal/api"
	"github.com/marcus/ocean-notes/internal/app"
	"github.com/marcus/ocean-notes/internal/config"
	"github.com/marcus/ocean-notes/internal/keymap"
	"github.com/marcus/ocean-notes/internal/notesync"
	"github.com/marcus/ocean-notes/internal/state"
	"github.com/marcus/ocean-notes/internal/store"
	"github.com/marcus/ocean-notes/internal/store/local"
	"github.com/marcus/ocean-notes/internal/store/remote"
	"github.com/marcus/ocean-notes/internal/styles"
)

var (
	configPath string
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "ocean",
	Short: "A notes client that keeps working offline",
	Long: `Ocean Notes browses, searches and edits notes stored by a remote
notes service. When the service is unreachable it falls back to a local
SQLite store.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env files only fill variables that are not already set.
		return config.LoadEnvFiles(".env", filepath.Join(config.ConfigDir(), ".env"))
	},
	RunE: runTUI,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fatal("ocean", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (.json or .yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if debugFlag {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// openClient builds the remote/local fallback client. The returned close
// function releases the local store.
func openClient(cfg *config.Config, logger *slog.Logger) (*api.FallbackClient, func(), error) {
	localStore, err := local.Open(cfg.Local.Driver, cfg.Local.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open local store: %w", err)
	}

	var remoteStore store.NoteStore
	if cfg.Remote.URL != "" {
		remoteStore = remote.New(cfg.Remote.URL, cfg.Remote.Timeout, nil)
	}

	client := api.New(remoteStore, localStore,
		api.WithLogger(logger),
		api.WithMirror(cfg.Local.Mirror),
	)
	return client, func() { localStore.Close() }, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The terminal belongs to the UI, so logs go to a file.
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newLogger(logFile)
	slog.SetDefault(logger)

	styles.ApplyTheme(cfg.UI.Theme)

	// State is optional.
	if err := state.Init(); err != nil {
		logger.Warn("load state", "error", err)
	}

	client, closeStore, err := openClient(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := []app.Option{
		app.WithContext(ctx),
		app.WithLogger(logger),
		app.WithSession(state.GetLastSearch(), state.GetSelectedID()),
	}
	watchPath := configPath
	if watchPath == "" {
		watchPath = config.ConfigPath()
	}
	if updates, err := config.Watch(ctx, watchPath); err != nil {
		logger.Warn("config watch disabled", "path", watchPath, "error", err)
	} else {
		opts = append(opts, app.WithConfigUpdates(updates))
	}

	ctrl := notesync.New(client, notesync.WithLogger(logger))
	km := keymap.NewRegistry(cfg.Keymap.Overrides)
	model := app.New(ctrl, km, cfg, opts...)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func openLogFile() (*os.File, error) {
	dir := config.ConfigDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	return os.OpenFile(filepath.Join(dir, "ocean.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
