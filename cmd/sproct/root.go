package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var detectorFlag string
	var formatFlag string

	ctx := newCommandContext(&configFlag, &detectorFlag, &formatFlag)

	rootCmd := &cobra.Command{
		Use:           "sproct",
		Short:         "Analyze theatrical scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.outputFormat(); err != nil {
				return err
			}
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&detectorFlag, "detector", "", "Speaker detection strategy (uppercase or colon)")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "o", formatTable, fmt.Sprintf("Output format (%s, %s, %s)", formatTable, formatJSON, formatYAML))

	rootCmd.AddCommand(newWordCountCommand(ctx))
	rootCmd.AddCommand(newStatsCommand(ctx))
	rootCmd.AddCommand(newTextCommand(ctx))
	rootCmd.AddCommand(newDiffCommand(ctx))
	rootCmd.AddCommand(newSimilarCommand(ctx))
	rootCmd.AddCommand(newRepresentativeCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
