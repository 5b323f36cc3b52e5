package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"robot-rig.klederson.com/internal/app"
	"robot-rig.klederson.com/internal/config"
	"robot-rig.klederson.com/internal/logging"
	"robot-rig.klederson.com/internal/telemetry"
)

var (
	flagConfig   string
	flagDemo     bool
	flagTrack    bool
	flagRecord   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "robot-rig",
		Short: "Robot Rig - Terminal sensor geometry simulator",
		Long: `Robot Rig draws a round platform ringed by eight distance sensors and
simulates their readings as the mouse moves through the sensing zone.
Two wheels steer the heading arrow and a gripper can be raised, lowered,
opened and closed from the keyboard.

Mouse tracking is off until you press T. Use --demo to orbit a virtual
cursor through the zone without a mouse.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&flagConfig, "config", "", "YAML file overriding the built-in defaults")
	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Drive the cursor synthetically (implies --track)")
	rootCmd.Flags().BoolVar(&flagTrack, "track", false, "Start with mouse tracking enabled")
	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Write every tracked frame to this CSV file")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write JSON logs to this file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, err := logging.New(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	recorder, err := telemetry.NewRecorder(flagRecord)
	if err != nil {
		return err
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			logger.Error("closing recording", zap.Error(err))
		}
	}()

	logger.Info("starting",
		zap.String("version", config.AppVersion),
		zap.Bool("demo", flagDemo),
		zap.String("config", flagConfig),
		zap.String("session", recorder.Session()))

	model := app.New(cfg, app.Options{
		Demo:     flagDemo,
		Track:    flagTrack,
		Recorder: recorder,
		Logger:   logger,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithFPS(cfg.Display.TargetFPS),
	)

	// The demo driver needs the program to send pointer moves.
	model.StartDemo(p)
	defer model.Stop()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	logger.Info("stopped", zap.Int("frames_recorded", recorder.Rows()))
	return nil
}
