package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"togari/internal/assessment"
	"togari/internal/config"
	"togari/internal/report"
	"togari/internal/session/filestore"
	"togari/internal/utils"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dataDir   string
		outputDir string
		fontPath  string
		debug     bool
	)

	root := &cobra.Command{
		Use:   "togari",
		Short: "尖(とがり)診断 - AI時代のキャリア・セルフチェック",
		Long: "togari walks you through the five-step 尖(とがり) self-assessment,\n" +
			"scores how exposed your work is to AI agents, and exports the\n" +
			"result as a PDF report. Everything stays on this machine.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("data-dir") {
				cfg.DataDir = dataDir
			}
			if cmd.Flags().Changed("output-dir") {
				cfg.OutputDir = outputDir
			}
			if cmd.Flags().Changed("font") {
				cfg.FontPath = fontPath
			}
			if debug {
				cfg.Debug = true
			}
			return run(cfg)
		},
	}

	root.Flags().StringVar(&dataDir, "data-dir", "", "directory holding the session file (default ~/.togari)")
	root.Flags().StringVar(&outputDir, "output-dir", "", "directory receiving the PDF report (default .)")
	root.Flags().StringVar(&fontPath, "font", "", "TrueType font used in the PDF report")
	root.Flags().BoolVar(&debug, "debug", false, "verbose logging to ~/togari-debug.log")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("togari %s\n", version)
		},
	})

	return root
}

func run(cfg config.Config) error {
	if cfg.Debug {
		utils.SetGlobalLevel(utils.DEBUG)
	}
	logger := utils.NewComponentLogger("Main")
	defer func() {
		if err := utils.GetLogger().Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Cleanup error: %v\n", err)
		}
	}()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("togari is an interactive tool and needs a terminal")
	}

	store := filestore.New(cfg.DataDir)
	snapshot := store.Load()
	logger.Info("Loaded session from %s", store.Path())

	state := assessment.NewStore(snapshot, func(s assessment.Snapshot) {
		if err := store.Save(s); err != nil {
			logger.Error("Failed to persist session: %v", err)
		}
	})

	exporter := report.NewExporter(cfg.OutputDir, cfg.FontPath)

	return RunTUI(state, exporter)
}
