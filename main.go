package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"raceoverlay/internal/app"
	"raceoverlay/internal/config"
	"raceoverlay/internal/conn"
)

var (
	flagHost string
	flagPort int
	flagDemo bool
	flagFPS  int
	flagLog  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "raceoverlay",
		Short: "Terminal racing-telemetry overlay with radar, lap bar and delta readout",
		Long: `raceoverlay connects to a local racing-telemetry WebSocket feed and
renders a proximity radar, lap-progress bar, and delta-time readout in the
terminal.

The feed is schemaless JSON; field names are sniffed per frame, so the
overlay works across upstream server versions. Use --demo to run against a
synthetic feed without a server.`,
		RunE: run,
	}

	rootCmd.Flags().StringVar(&flagHost, "host", config.DefaultHost, "Telemetry server host")
	rootCmd.Flags().IntVar(&flagPort, "port", config.DefaultPort, "Telemetry server port (1-65535)")
	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Run against a synthetic feed (no server required)")
	rootCmd.Flags().IntVar(&flagFPS, "fps", config.TargetFPS, "Frame-rate cap")
	rootCmd.Flags().StringVar(&flagLog, "log", "", "Write a structured log to this file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if !flagDemo && !conn.ValidPort(flagPort) {
		return fmt.Errorf("port %d is out of range (1-65535)", flagPort)
	}
	if flagFPS < 1 || flagFPS > 120 {
		return fmt.Errorf("fps %d is out of range (1-120)", flagFPS)
	}

	logger := zap.NewNop()
	if flagLog != "" {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{flagLog}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	model := app.New(flagHost, flagPort, flagFPS, flagDemo, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(flagFPS),
	)

	// Wire the telemetry connection to the running program
	model.Start(p)

	_, err := p.Run()
	return err
}
