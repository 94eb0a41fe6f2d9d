package cmd

import (
	"context"
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/facade/internal/app"
	"github.com/zhubert/facade/internal/assistant"
	"github.com/zhubert/facade/internal/config"
	"github.com/zhubert/facade/internal/logger"
	"github.com/zhubert/facade/internal/seed"
)

var (
	debugMode             bool
	configPath            string
	seedPath              string
	logFile               string
	modelName             string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "facade",
	Short: "A code editor workbench in the terminal",
	Long: `facade is a terminal rendition of a code editor workbench: file tree,
editor tabs, a bottom panel, a mock debugger, an extensions marketplace,
a command palette and an assistant chat.

The workspace is seeded from static data at startup and lives only in
memory. Nothing is ever written back to disk.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", logger.DefaultLogPath, "Write logs to this file (- discards them)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Settings file (default ~/.facade/settings.json)")
	rootCmd.Flags().StringVar(&seedPath, "seed", "", "YAML seed replacing the built-in workspace")
	rootCmd.Flags().StringVar(&modelName, "model", "", "Assistant model id (default "+assistant.DefaultModel+")")
}

func initConfig() {
	logger.SetDebug(debugMode)
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("facade %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("facade %s\n", version)
}

// loadWorkspace reads the settings and the seed named by the flags
func loadWorkspace() (*config.Config, *seed.Data, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading config: %w", err)
	}
	if modelName != "" {
		cfg.AssistantModel = modelName
	}

	path := seedPath
	if path == "" {
		path = cfg.SeedFile
	}
	data, err := seed.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading seed: %w", err)
	}
	return cfg, data, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	if logFile == "-" {
		logger.InitWriter(io.Discard)
	} else if err := logger.Init(logFile); err != nil {
		return err
	}
	// Ensure logger is closed on exit
	defer logger.Close()

	cfg, data, err := loadWorkspace()
	if err != nil {
		return err
	}

	var opts []app.Option
	client, err := assistant.NewGeminiClient(context.Background(), cfg.AssistantAPIKeyEnv, cfg.AssistantModel)
	if err != nil {
		logger.Warn("Assistant disabled: %v", err)
	} else {
		logger.Info("Assistant using model %s", client.Model())
		opts = append(opts, app.WithAssistant(client))
	}

	// Create and run the app
	m := app.New(cfg, data, version, opts...)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
