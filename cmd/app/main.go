package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arjunmw/focal/internal/config"
	"github.com/arjunmw/focal/internal/database"
	"github.com/arjunmw/focal/internal/tui"
	"github.com/arjunmw/focal/internal/util"
)

// Set by ldflags at release time.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	root := &cobra.Command{
		Use:           "focal",
		Short:         "A Pomodoro-style focus timer for the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimer(cfgPath)
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "",
		"path to config.yaml (default: ~/.config/focal/config.yaml)")
	root.AddCommand(newReportCmd())
	return root
}

func newReportCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a PDF report of recent focus sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			db, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()
			path, err := tui.GenerateSessionReport(ctx, db, outDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "PDF report generated: %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: current directory)")
	return cmd
}

func openStore(ctx context.Context) (*database.Database, error) {
	dbRoot := util.DataDir(config.AppName)
	if err := os.MkdirAll(dbRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return database.Open(ctx, filepath.Join(dbRoot, config.DBFileName))
}

func runTimer(cfgPath string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("focal needs an interactive terminal")
	}

	ctx := context.Background()
	fileCfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.SeedDefaults(ctx, fileCfg.Muted, fileCfg.Theme); err != nil {
		return err
	}
	cfg := db.LoadTimerConfig(ctx, fileCfg.TimerConfig())

	tui.AppVersion = version
	model := tui.NewTimerModel(ctx, db, cfg, os.Stdout)
	p := tea.NewProgram(model, tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run timer: %w", err)
	}
	return nil
}
