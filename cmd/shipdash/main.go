// shipdash is a terminal dashboard for the shipment management API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/omarelders/shipdash/internal/api"
	"github.com/omarelders/shipdash/internal/common"
	"github.com/omarelders/shipdash/internal/config"
	"github.com/omarelders/shipdash/internal/dashboard"
	"github.com/omarelders/shipdash/internal/prefs"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "shipdash",
		Short: "Terminal dashboard for shipment management",
		Long: `shipdash: an interactive terminal client for the shipment management
server. Browse orders, change statuses, upload spreadsheets and watch
the analytics without leaving your terminal.`,
		PersistentPreRunE: initConfig,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashboard(cmd.Context())
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/shipdash/config.yaml)")
	rootCmd.PersistentFlags().String("server", "", "server base URL")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	_ = viper.BindPFlag("server_url", rootCmd.PersistentFlags().Lookup("server"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(uploadCmd())
	rootCmd.AddCommand(paymentsCmd())
	rootCmd.AddCommand(statusesCmd())
	rootCmd.AddCommand(restoreCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(fmt.Sprintf("%s/.config/shipdash", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SHIPDASH")
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	return setupLogging()
}

func setupLogging() error {
	var level slog.Level
	switch viper.GetString("log_level") {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", viper.GetString("log_level"))
	}

	return common.SetupLogger(level, viper.GetString("log_format"))
}

func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

func newAPIClient() (*api.Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	return api.NewClient(cfg.ServerURL, cfg.Timeout()), cfg, nil
}

func runDashboard(ctx context.Context) error {
	client, cfg, err := newAPIClient()
	if err != nil {
		return err
	}

	store, err := prefs.Open(cfg.PrefsPath)
	if err != nil {
		// The dashboard works without persisted preferences.
		slog.Warn("Failed to open preferences, theme will not persist", "error", err)
		store = nil
	}
	if store != nil {
		defer func() { _ = store.Close() }()
	}

	return dashboard.Run(ctx, dashboard.Config{
		Client:  client,
		Prefs:   store,
		Timeout: cfg.Timeout(),
	})
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			slog.Info("shipdash version", "version", version)
		},
	}
}
