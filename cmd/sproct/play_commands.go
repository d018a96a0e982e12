package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sproct/internal/script"
)

type wordCountRow struct {
	Speaker string `json:"speaker" yaml:"speaker"`
	Words   int    `json:"words" yaml:"words"`
}

func newWordCountCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "word-count <script> <speaker>",
		Aliases: []string{"character_word_count"},
		Short:   "Count the words a speaker has in a script",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			play, err := ctx.loadPlay(cmd, args[0])
			if err != nil {
				return err
			}
			speaker := resolveSpeaker(play, args[1])
			row := wordCountRow{Speaker: speaker, Words: play.WordCount(speaker)}
			return ctx.writeReport(cmd, row, func() error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), row.Words)
				return err
			})
		},
	}
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <script>",
		Short: "Summarize speeches and words per speaker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			play, err := ctx.loadPlay(cmd, args[0])
			if err != nil {
				return err
			}
			stats := play.Stats()
			return ctx.writeReport(cmd, stats, func() error {
				rows := make([][]string, 0, len(stats))
				totalSpeeches, totalWords := 0, 0
				for _, row := range stats {
					rows = append(rows, []string{
						displaySpeaker(row.Speaker),
						strconv.Itoa(row.Speeches),
						strconv.Itoa(row.Words),
						strconv.FormatFloat(row.AverageWords, 'f', 1, 64),
					})
					totalSpeeches += row.Speeches
					totalWords += row.Words
				}
				table := renderTable(
					[]string{"Speaker", "Speeches", "Words", "Avg words"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
					"Total", strconv.Itoa(totalSpeeches), strconv.Itoa(totalWords), "",
				)
				_, err := fmt.Fprintln(cmd.OutOrStdout(), table)
				return err
			})
		},
	}
}

type textReport struct {
	Speaker    string `json:"speaker,omitempty" yaml:"speaker,omitempty"`
	Normalized bool   `json:"normalized" yaml:"normalized"`
	Text       string `json:"text" yaml:"text"`
}

func newTextCommand(ctx *commandContext) *cobra.Command {
	var speakerFlag string
	var normalized bool

	cmd := &cobra.Command{
		Use:   "text <script>",
		Short: "Reconstruct a script or one speaker's speeches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			play, err := ctx.loadPlay(cmd, args[0])
			if err != nil {
				return err
			}
			speaker := resolveSpeaker(play, speakerFlag)
			report := textReport{Speaker: speaker, Normalized: normalized}
			if normalized {
				report.Text = play.NormalizedText(speaker)
			} else {
				report.Text = play.Text(speaker)
			}
			return ctx.writeReport(cmd, report, func() error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Text)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&speakerFlag, "speaker", "s", "", "Only include this speaker's speeches")
	cmd.Flags().BoolVar(&normalized, "normalized", false, "Render lowercase tokens instead of raw lines")
	return cmd
}

// speechesFor returns the selected speeches of play, or an error naming the
// missing speaker.
func speechesFor(play *script.Play, speaker string) ([]script.Speech, error) {
	speeches := play.Speeches(speaker)
	if speaker != script.AllSpeakers && len(speeches) == 0 {
		return nil, fmt.Errorf("speaker %q not found", speaker)
	}
	return speeches, nil
}
