// Package commands implements the quickshape CLI commands.
package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quickshape/quickshape/internal/cli/config"
	"github.com/quickshape/quickshape/internal/namer"
	"github.com/quickshape/quickshape/internal/proptypes"
	"github.com/quickshape/quickshape/internal/typegraph"
	"github.com/quickshape/quickshape/internal/watch"
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	var (
		output     string
		topLevel   string
		indent     int
		noEnums    bool
		noFormats  bool
		detectMaps bool
		watchMode  bool
		force      bool
	)

	cmd := &cobra.Command{
		Use:     "generate [samples...]",
		Aliases: []string{"g"},
		Short:   "Generate a PropTypes validator module from JSON samples",
		Long: `Generate a JavaScript PropTypes validator module from one or more JSON
sample files. All samples describe the same top-level value; properties
missing from some samples become optional and conflicting types widen
into unions.

Examples:
  quickshape generate person.json
  quickshape generate person.json more-people.json -o person.js
  quickshape generate person.json --top-level Person --watch -o person.js`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("indent") {
				cfg.Indent = indent
			}
			if cmd.Flags().Changed("out") {
				cfg.Output = output
			}
			if cmd.Flags().Changed("top-level") {
				cfg.TopLevel = topLevel
			}
			if noEnums {
				cfg.Inference.DetectEnums = false
			}
			if noFormats {
				cfg.Inference.DetectFormats = false
			}
			if detectMaps {
				cfg.Inference.DetectMaps = true
			}

			if cfg.TopLevel == "" {
				cfg.TopLevel = topLevelFromFilename(args[0])
			}

			if watchMode {
				return runWatch(args, cfg)
			}
			return runOnce(args, cfg, force)
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&topLevel, "top-level", "", "Name of the top-level type (default: derived from the first sample filename)")
	cmd.Flags().IntVar(&indent, "indent", 4, "Indentation width in spaces")
	cmd.Flags().BoolVar(&noEnums, "no-enums", false, "Disable enum inference")
	cmd.Flags().BoolVar(&noFormats, "no-formats", false, "Disable date/uuid string detection")
	cmd.Flags().BoolVar(&detectMaps, "detect-maps", false, "Treat wide uniform objects as maps")
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "Regenerate when sample files change (requires --out)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite the output file without asking")

	return cmd
}

// runOnce generates the module a single time.
func runOnce(samples []string, cfg *config.Config, force bool) error {
	code, err := generate(samples, cfg)
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		fmt.Print(code)
		return nil
	}

	if !force {
		if _, err := os.Stat(cfg.Output); err == nil {
			overwrite := false
			prompt := &survey.Confirm{
				Message: fmt.Sprintf("%s already exists. Overwrite?", cfg.Output),
			}
			if err := survey.AskOne(prompt, &overwrite); err != nil {
				return err
			}
			if !overwrite {
				return fmt.Errorf("aborted: %s not overwritten", cfg.Output)
			}
		}
	}

	if err := os.WriteFile(cfg.Output, []byte(code), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	color.New(color.FgGreen, color.Bold).Printf("✓ Wrote %s\n", cfg.Output)
	return nil
}

// runWatch generates once, then regenerates on every sample change until
// interrupted.
func runWatch(samples []string, cfg *config.Config) error {
	if cfg.Output == "" {
		return fmt.Errorf("--watch requires --out")
	}

	regenerate := func([]string) error {
		code, err := generate(samples, cfg)
		if err != nil {
			return err
		}
		return os.WriteFile(cfg.Output, []byte(code), 0644)
	}

	if err := regenerate(nil); err != nil {
		return err
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	watcher, err := watch.New(samples, logger, regenerate)
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		return err
	}

	color.New(color.FgCyan).Printf("Watching %d sample(s), writing %s\n", len(samples), cfg.Output)
	fmt.Println("Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\nShutting down...")
	return watcher.Stop()
}

// generate runs the full pipeline: read samples, infer the graph, render
// the module. A fresh Identifiers table per run keeps output deterministic.
func generate(paths []string, cfg *config.Config) (string, error) {
	samples := make([][]byte, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		samples = append(samples, data)
	}

	graph, err := typegraph.Infer(samples, cfg.TopLevel, typegraph.Options{
		DetectEnums:   cfg.Inference.DetectEnums,
		DetectFormats: cfg.Inference.DetectFormats,
		DetectMaps:    cfg.Inference.DetectMaps,
	})
	if err != nil {
		return "", err
	}

	return proptypes.Render(graph, namer.NewIdentifiers(), proptypes.Options{
		Indent:     strings.Repeat(" ", cfg.Indent),
		SourceName: filepath.Base(paths[0]),
	})
}

// topLevelFromFilename derives a top-level type name from a sample path
// (samples/person.json -> person; the namer handles casing).
func topLevelFromFilename(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
