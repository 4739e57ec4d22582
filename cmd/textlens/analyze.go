package main

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/textlens/internal/batch"
	"github.com/verte-zerg/textlens/internal/config"
	"github.com/verte-zerg/textlens/internal/ingest"
	"github.com/verte-zerg/textlens/internal/report"
)

var (
	analyzeFormat     string
	analyzeSections   []string
	analyzeWorkers    int
	analyzeCloudLimit int
	analyzeCharLimit  int
	analyzeWidth      int
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [paths|globs|-]",
		Short: "Analyze files or stdin and print a report",
		Long: "Analyze plain text, Markdown, HTML and PDF files. Patterns support ** globs.\n" +
			"With no arguments the text is read from stdin.",
		RunE: runAnalyzeCmd,
	}
	cmd.Flags().StringVar(&analyzeFormat, "format", config.DefaultFormat, "output format: text, json, yaml")
	cmd.Flags().StringSliceVar(&analyzeSections, "section", nil, "text sections to print: basic, chars, cloud, heatmap, readability")
	cmd.Flags().IntVar(&analyzeWorkers, "workers", config.DefaultWorkers, "files analyzed concurrently (0 = number of CPUs)")
	cmd.Flags().IntVar(&analyzeCloudLimit, "cloud-limit", config.DefaultCloudLimit, "words shown in the word cloud (1-50)")
	cmd.Flags().IntVar(&analyzeCharLimit, "char-limit", config.DefaultCharLimit, "characters shown in the frequency table (1-15)")
	cmd.Flags().IntVar(&analyzeWidth, "width", 0, "line width for plots (0 = terminal width)")
	return cmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "format", &analyzeFormat, fileCfg.Batch.Format)
	applyIntConfig(cmd, "workers", &analyzeWorkers, fileCfg.Batch.Workers)
	applyIntConfig(cmd, "cloud-limit", &analyzeCloudLimit, fileCfg.Analysis.CloudLimit)
	applyIntConfig(cmd, "char-limit", &analyzeCharLimit, fileCfg.Analysis.CharLimit)

	cfg := config.Defaults()
	cfg.Format = analyzeFormat
	cfg.Workers = analyzeWorkers
	cfg.CloudLimit = analyzeCloudLimit
	cfg.CharLimit = analyzeCharLimit
	if err := cfg.Validate(); err != nil {
		return err
	}
	if analyzeWidth < 0 {
		return fmt.Errorf("--width must be >= 0")
	}
	sections, err := report.ParseSections(analyzeSections)
	if err != nil {
		return err
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = []string{ingest.StdinPath}
	}
	paths, err := ingest.ExpandPatterns(patterns)
	if err != nil {
		return err
	}

	opts := batch.Options{Workers: cfg.Workers, Stdin: cmd.InOrStdin()}
	if len(paths) > 1 && term.IsTerminal(int(os.Stderr.Fd())) {
		bar := newProgressBar(len(paths))
		opts.Progress = func(done, _ int, _ string) {
			if err := bar.Set(done); err != nil {
				// Best-effort progress display.
				_ = err
			}
		}
	}
	results, err := batch.Run(cmd.Context(), paths, opts)
	if err != nil {
		return fmt.Errorf("analysis interrupted: %w", err)
	}

	out := cmd.OutOrStdout()
	if cfg.Format == report.FormatText {
		renderOpts := report.Options{
			Sections:   sections,
			CharLimit:  cfg.CharLimit,
			CloudLimit: cfg.CloudLimit,
			Width:      analyzeWidth,
			Color:      report.UseColor(out),
		}
		if err := writeTextResults(out, results, renderOpts); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if err := writeEncodedResults(out, cfg.Format, results); err != nil {
		return err
	}

	if failed := batch.Failed(results); failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(results))
	}
	return nil
}

func writeTextResults(w io.Writer, results []batch.Result, opts report.Options) error {
	for _, res := range results {
		if res.Err != nil {
			logErrf("%s: %v\n", res.Path, res.Err)
			continue
		}
		title := resultTitle(res, len(results))
		if err := report.Render(w, title, *res.Report, opts); err != nil {
			return err
		}
	}
	return nil
}

// writeEncodedResults encodes a single input as its bare report and several
// inputs as a list of results.
func writeEncodedResults(w io.Writer, format string, results []batch.Result) error {
	if len(results) == 1 {
		res := results[0]
		if res.Err != nil {
			logErrf("%s: %v\n", res.Path, res.Err)
			return nil
		}
		return report.Encode(w, format, res.Report)
	}
	return report.Encode(w, format, results)
}

func resultTitle(res batch.Result, total int) string {
	if total == 1 && res.Path == ingest.StdinPath {
		return ""
	}
	if res.Title != "" && res.Title != res.Path {
		return fmt.Sprintf("%s (%s)", res.Title, res.Path)
	}
	return res.Path
}

func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Analyzing[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			logErrln()
		}),
	)
}
