package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"tagmore/app"
	"tagmore/config"
	"tagmore/inspect"
	"tagmore/log"
	"tagmore/tagset"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultRenderWidth = 80

var (
	version          = "0.3.0"
	fileFlag         string
	rowsFlag         int
	gapFlag          int
	maxItemWidthFlag int
	measurerFlag     string
	widthFlag        int
	noColorFlag      bool
	rootCmd          = &cobra.Command{
		Use:   "tagmore",
		Short: "tagmore - Show as many tags as fit on a line and count the rest.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize()
			defer log.Close()

			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			opts := app.Options{Path: fileFlag}
			if fileFlag == "" {
				board, err := tagset.Demo(rowsFlag)
				if err != nil {
					return err
				}
				opts.Board = board
			}
			return app.Run(ctx, cfg, opts)
		},
	}

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Print each row's visible tags and +N indicator for a fixed width",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Discard()

			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			board, err := loadBoard()
			if err != nil {
				return err
			}
			if noColorFlag {
				lipgloss.SetColorProfile(termenv.Ascii)
			}

			width := widthFlag
			if !cmd.Flags().Changed("width") {
				width = terminalWidth()
			}
			return app.Render(cmd.OutOrStdout(), board, app.RenderOptions{
				Width:        width,
				Gap:          cfg.Gap,
				MaxItemWidth: cfg.MaxItemWidth,
				Measurer:     cfg.Measurer,
				EastAsian:    cfg.EastAsianWidth,
			})
		},
	}

	measureCmd = &cobra.Command{
		Use:   "measure",
		Short: "Print the measured width of every tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Discard()

			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			board, err := loadBoard()
			if err != nil {
				return err
			}
			return app.Measure(cmd.OutOrStdout(), board, cfg.Measurer, cfg.EastAsianWidth)
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")
			stateJson, _ := json.MarshalIndent(config.LoadState(), "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("State: %s\n%s\n", filepath.Join(configDir, config.StateFileName), stateJson)
			fmt.Printf("Log: %s\n", log.LogFile())
			if inspect.IsEnabled() {
				fmt.Printf("Inspect: %s\n", inspect.GetInspectFile())
			}

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of tagmore",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tagmore version %s\n", version)
		},
	}
)

// resolveConfig loads the config file and applies the flags the user set.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.LoadConfig()
	flags := cmd.Flags()
	if flags.Changed("gap") {
		cfg.Gap = gapFlag
	}
	if flags.Changed("max-item-width") {
		cfg.MaxItemWidth = maxItemWidthFlag
	}
	if flags.Changed("measurer") {
		cfg.Measurer = measurerFlag
	}
	for _, msg := range cfg.Normalize() {
		log.WarningLog.Printf("flags: %s", msg)
	}
	// Normalize falls back to the default measurer; a bad flag is an error instead.
	if flags.Changed("measurer") && cfg.Measurer != measurerFlag {
		return nil, fmt.Errorf("invalid measurer: %s (must be 'cells', 'runewidth' or 'styled')", measurerFlag)
	}
	return cfg, nil
}

func loadBoard() (*tagset.Board, error) {
	if fileFlag == "" {
		return tagset.Demo(rowsFlag)
	}
	return tagset.Load(fileFlag)
}

// terminalWidth returns the width of stdout, or defaultRenderWidth when stdout
// is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultRenderWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultRenderWidth
	}
	return width
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&fileFlag, "file", "f", "",
		"Tag file to show (.json, .yaml or .yml). A demo board is generated when empty.")
	flags.IntVar(&rowsFlag, "rows", 12, "Number of rows on the generated demo board")
	flags.IntVar(&gapFlag, "gap", config.DefaultGap, "Cells between chips and before the +N indicator")
	flags.IntVar(&maxItemWidthFlag, "max-item-width", config.DefaultMaxItemWidth,
		"Maximum width of one chip in cells, padding included")
	flags.StringVarP(&measurerFlag, "measurer", "m", config.DefaultMeasurer,
		"Width oracle: 'cells', 'runewidth' or 'styled'")

	renderCmd.Flags().IntVarP(&widthFlag, "width", "w", defaultRenderWidth,
		"Line width. Defaults to the terminal width, or 80 when not a terminal.")
	renderCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "Print without ANSI colors")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(measureCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
