package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	verbose bool
	output  string
	logger  *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "creational",
		Short: "Walk through the builder and prototype patterns",
		Long: `creational drives the step-wise assembler and the self-cloning registry.

Run "creational build" to assemble products from recipes, and
"creational clone" to copy prototypes out of the registry.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch a.output {
			case formatText, formatJSON, formatYAML:
			default:
				return fmt.Errorf("unknown output format %q", a.output)
			}
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", formatText, "output format: text, json or yaml")

	root.AddCommand(newBuildCmd(a), newRecipesCmd(a), newCloneCmd(a), newTagsCmd(a))
	return root
}
