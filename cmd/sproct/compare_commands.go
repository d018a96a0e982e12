package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"sproct/internal/diff"
	"sproct/internal/logging"
	"sproct/internal/script"
	"sproct/internal/similarity"
)

type diffReport struct {
	Speaker string        `json:"speaker,omitempty" yaml:"speaker,omitempty"`
	Ratio   float64       `json:"ratio" yaml:"ratio"`
	Summary diff.Summary  `json:"summary" yaml:"summary"`
	Opcodes []diff.Opcode `json:"opcodes" yaml:"opcodes"`
}

func newDiffCommand(ctx *commandContext) *cobra.Command {
	var speakerFlag string
	var lines bool

	cmd := &cobra.Command{
		Use:   "diff <script-a> <script-b>",
		Short: "Align two scripts word by word or line by line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			playA, err := ctx.loadPlay(cmd, args[0])
			if err != nil {
				return err
			}
			playB, err := ctx.loadPlay(cmd, args[1])
			if err != nil {
				return err
			}
			speaker := resolveSpeaker(playA, speakerFlag)
			for _, play := range []*script.Play{playA, playB} {
				if _, err := speechesFor(play, speaker); err != nil {
					return err
				}
			}
			textA, textB := playA.Text(speaker), playB.Text(speaker)

			if lines {
				transcript := diff.RenderLineDiff(
					strings.Split(textA, "\n"),
					strings.Split(textB, "\n"),
					diff.WithChangedCutoff(cfg.Diff.ChangedLineCutoff),
				)
				return ctx.writeReport(cmd, transcript, func() error {
					out := cmd.OutOrStdout()
					colorize := shouldColorize(out)
					for _, line := range transcript {
						fmt.Fprintln(out, renderMarkedLine(line, colorize))
					}
					return nil
				})
			}

			res := diff.Texts(textA, textB)
			report := diffReport{Speaker: speaker, Ratio: res.Ratio, Summary: res.Summary(), Opcodes: res.Opcodes}
			return ctx.writeReport(cmd, report, func() error {
				rows := [][]string{
					{"Ratio", strconv.FormatFloat(res.Ratio, 'f', 4, 64)},
					{"Matched words", strconv.Itoa(res.Matched)},
					{"Inserted", strconv.Itoa(report.Summary.Inserted)},
					{"Deleted", strconv.Itoa(report.Summary.Deleted)},
					{"Replaced", strconv.Itoa(report.Summary.Replaced)},
					{"Opcodes", strconv.Itoa(len(res.Opcodes))},
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&speakerFlag, "speaker", "s", "", "Only compare this speaker's speeches")
	cmd.Flags().BoolVar(&lines, "lines", false, "Print a marked line-by-line transcript")
	return cmd
}

type similarRow struct {
	Row       int     `json:"row" yaml:"row"`
	Col       int     `json:"col" yaml:"col"`
	SpeakerA  string  `json:"speaker_a" yaml:"speaker_a"`
	SpeakerB  string  `json:"speaker_b" yaml:"speaker_b"`
	Cosine    float64 `json:"cosine" yaml:"cosine"`
	DiffRatio float64 `json:"diff_ratio" yaml:"diff_ratio"`
}

type analysisFlags struct {
	minWords  int
	ngram     int
	threshold float64
	idf       bool
}

func (f *analysisFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.minWords, "min-words", 0, "Word count a speech must exceed (default from config)")
	cmd.Flags().IntVar(&f.ngram, "ngram", 0, "N-gram size (default from config)")
	cmd.Flags().Float64Var(&f.threshold, "threshold", 0, "Cosine score a pair must exceed (default from config)")
	cmd.Flags().BoolVar(&f.idf, "idf", false, "Weight n-grams by inverse document frequency")
}

func (f *analysisFlags) options(cmd *cobra.Command, ctx *commandContext) (similarity.Options, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return similarity.Options{}, err
	}
	opts := similarity.Options{
		MinWords:  cfg.Analysis.MinWords,
		NGramSize: cfg.Analysis.NGramSize,
		Threshold: cfg.Analysis.CandidateThreshold,
		IDF:       cfg.Analysis.IDFWeighting,
	}
	if cmd.Flags().Changed("min-words") {
		opts.MinWords = f.minWords
	}
	if cmd.Flags().Changed("ngram") {
		opts.NGramSize = f.ngram
	}
	if cmd.Flags().Changed("threshold") {
		opts.Threshold = f.threshold
	}
	if cmd.Flags().Changed("idf") {
		opts.IDF = f.idf
	}
	if opts.MinWords < 0 || opts.NGramSize < 1 || opts.Threshold < 0 || opts.Threshold >= 1 {
		return similarity.Options{}, fmt.Errorf("invalid analysis options: min-words=%d ngram=%d threshold=%g (threshold must be in [0, 1))", opts.MinWords, opts.NGramSize, opts.Threshold)
	}
	return opts, nil
}

func newSimilarCommand(ctx *commandContext) *cobra.Command {
	var flags analysisFlags
	var speakerFlag string

	cmd := &cobra.Command{
		Use:   "similar <script-a> [script-b]",
		Short: "Find near-duplicate long speeches",
		Long: "Compare the long speeches of two scripts, or of one script against itself, " +
			"and report pairs whose n-gram cosine similarity exceeds the threshold.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, ctx)
			if err != nil {
				return err
			}
			playA, err := ctx.loadPlay(cmd, args[0])
			if err != nil {
				return err
			}
			playB := playA
			self := len(args) == 1
			if !self {
				if playB, err = ctx.loadPlay(cmd, args[1]); err != nil {
					return err
				}
			}

			speechesA, err := speechesFor(playA, resolveSpeaker(playA, speakerFlag))
			if err != nil {
				return err
			}
			speechesB := speechesA
			if !self {
				if speechesB, err = speechesFor(playB, resolveSpeaker(playB, speakerFlag)); err != nil {
					return err
				}
			}

			runCtx := ctx.runContext(cmd)
			engine := similarity.NewEngine(opts, ctx.loggerFor(cmd))
			matrix, pairs, err := engine.Candidates(runCtx, speechesA, speechesB)
			if err != nil {
				return err
			}

			results := make([]similarRow, 0, len(pairs))
			for _, pair := range pairs {
				// A script compared with itself reports each unordered pair once.
				if self && pair.Col <= pair.Row {
					continue
				}
				a, b := matrix.Rows[pair.Row], matrix.Cols[pair.Col]
				results = append(results, similarRow{
					Row:       pair.Row,
					Col:       pair.Col,
					SpeakerA:  a.Speaker(),
					SpeakerB:  b.Speaker(),
					Cosine:    pair.Score,
					DiffRatio: diff.Words(a, b).Ratio,
				})
			}
			rows, cols := matrix.Dims()
			logging.WithContext(runCtx, ctx.loggerFor(cmd)).Info("similarity scan complete",
				logging.Int("rows", rows),
				logging.Int("cols", cols),
				logging.Int("candidates", len(results)),
			)

			return ctx.writeReport(cmd, results, func() error {
				out := cmd.OutOrStdout()
				if len(results) == 0 {
					_, err := fmt.Fprintf(out, "No candidate pairs among %d x %d long speeches\n", rows, cols)
					return err
				}
				tableRows := make([][]string, 0, len(results))
				for _, r := range results {
					tableRows = append(tableRows, []string{
						strconv.Itoa(r.Row),
						displaySpeaker(r.SpeakerA),
						strconv.Itoa(r.Col),
						displaySpeaker(r.SpeakerB),
						strconv.FormatFloat(r.Cosine, 'f', 3, 64),
						strconv.FormatFloat(r.DiffRatio, 'f', 3, 64),
					})
				}
				_, err := fmt.Fprintln(out, renderTable(
					[]string{"Row", "Speaker A", "Col", "Speaker B", "Cosine", "Diff ratio"},
					tableRows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignRight, alignRight},
				))
				return err
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&speakerFlag, "speaker", "s", "", "Only compare this speaker's speeches")
	return cmd
}

type representativeReport struct {
	Speaker string  `json:"speaker" yaml:"speaker"`
	Sum     float64 `json:"sum" yaml:"sum"`
	Text    string  `json:"text" yaml:"text"`
}

func newRepresentativeCommand(ctx *commandContext) *cobra.Command {
	var flags analysisFlags
	var speakerFlag string

	cmd := &cobra.Command{
		Use:   "representative <script>",
		Short: "Show the long speech most similar to the rest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd, ctx)
			if err != nil {
				return err
			}
			play, err := ctx.loadPlay(cmd, args[0])
			if err != nil {
				return err
			}
			speeches, err := speechesFor(play, resolveSpeaker(play, speakerFlag))
			if err != nil {
				return err
			}
			engine := similarity.NewEngine(opts, ctx.loggerFor(cmd))
			speech, sum, err := engine.MostRepresentative(ctx.runContext(cmd), speeches)
			if err != nil {
				return err
			}
			report := representativeReport{Speaker: speech.Speaker(), Sum: sum, Text: speech.Text()}
			return ctx.writeReport(cmd, report, func() error {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s (self-similarity %.3f)\n", displaySpeaker(report.Speaker), report.Sum)
				_, err := fmt.Fprintln(out, report.Text)
				return err
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&speakerFlag, "speaker", "s", "", "Only rank this speaker's speeches")
	return cmd
}
