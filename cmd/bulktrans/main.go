package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"codeberg.org/snonux/bulktrans/internal/archive"
	"codeberg.org/snonux/bulktrans/internal/cli"
	"codeberg.org/snonux/bulktrans/internal/logger"
	"codeberg.org/snonux/bulktrans/internal/models"
	"codeberg.org/snonux/bulktrans/internal/processor"
	"codeberg.org/snonux/bulktrans/internal/translation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, flags)
	}
	rootCmd.SilenceUsage = true

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, flags *cli.Flags) error {
	settings := cli.ResolveSettings(flags)
	logger.Init(logger.ParseLevel(settings.LogLevel), nil)

	if settings.NoColor {
		color.NoColor = true
	}

	// Handle --archive flag
	if flags.Archive {
		if settings.OutputDir == "" {
			return fmt.Errorf("--archive needs an output directory (--output or output.directory)")
		}
		archivePath, moved, err := archive.ArchiveExports(settings.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to archive exports: %w", err)
		}
		if moved == 0 {
			fmt.Println("No exports to archive")
		} else {
			fmt.Printf("%d exports archived to: %s\n", moved, archivePath)
		}
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetAPIKey(translation.ProviderOpenAI), settings.Translation.BaseURL)
		return lister.PrintChatModels(cmd.Context(), os.Stdout)
	}

	// Create processor
	proc, err := processor.NewProcessor(settings)
	if err != nil {
		return err
	}

	if !flags.Headless() {
		// No input provided - launch GUI mode by default
		return proc.RunGUIMode()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flags.InputFile != "" {
		return proc.ProcessFile(ctx, flags.InputFile)
	}
	return proc.ProcessText(ctx, flags.Title, flags.Description)
}
