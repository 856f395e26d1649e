package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yigit/collegeadmin/internal/bootstrap"
	"github.com/yigit/collegeadmin/internal/config"
	"github.com/yigit/collegeadmin/internal/demo"
)

var (
	version = "dev"
	commit  = "none"
)

// CLI flags
var (
	configPath string
	pace       bool
	verbosity  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "collegeadmin-demo",
		Short: "Run the campus walkthrough",
		Long: `Seeds a campus with the default courses, departments, students and desks,
then walks through every campus operation and logs each outcome.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Path to the YAML config file")
	rootCmd.Flags().BoolVar(&pace, "pace", true, "Honour the configured desk delays (--pace=false runs without pauses)")
	rootCmd.Flags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v debug)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("collegeadmin-demo %s (commit: %s)\n", version, commit)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if verbosity > 0 {
		os.Setenv("LOG_LEVEL", "debug")
	}

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !pace {
		cfg.Campus.HostelFeeDelay = "0s"
		cfg.Campus.CanteenRequestDelay = "0s"
		cfg.Campus.LibraryShelvingDelay = "0s"
	}

	campus, fx, err := bootstrap.SetupCampus(cfg, lgr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lgr.Info().Str("version", version).Bool("pace", pace).Msg("Starting campus walkthrough")
	if err := demo.Run(ctx, campus, fx, lgr); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("walkthrough interrupted: %w", context.Cause(ctx))
		}
		return err
	}
	lgr.Info().Msg("Campus walkthrough complete")
	return nil
}
