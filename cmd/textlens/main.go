// Package main provides the CLI entrypoint for textlens.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/textlens/internal/config"
	"github.com/verte-zerg/textlens/internal/ingest"
	"github.com/verte-zerg/textlens/internal/model"
	"github.com/verte-zerg/textlens/internal/store"
	"github.com/verte-zerg/textlens/internal/tui"
)

var (
	editFile       string
	editDraft      string
	editDelay      time.Duration
	editCloudLimit int
	editCharLimit  int
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "textlens",
		Short:         "Text statistics, complexity heatmap and readability in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runEditCmd,
	}

	rootCmd.Flags().StringVar(&editFile, "file", "", "preload text from a file ('-' for stdin)")
	rootCmd.Flags().StringVar(&editDraft, "draft", "", "preload a saved draft by id or id prefix")
	rootCmd.Flags().DurationVar(&editDelay, "delay", config.DefaultReadabilityDelay, "simulated readability processing time")
	rootCmd.Flags().IntVar(&editCloudLimit, "cloud-limit", config.DefaultCloudLimit, "words shown in the word cloud (1-50)")
	rootCmd.Flags().IntVar(&editCharLimit, "char-limit", config.DefaultCharLimit, "characters shown in the frequency table (1-15)")

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newDraftsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runEditCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyDurationConfig(cmd, "delay", &editDelay, fileCfg.Analysis.Delay())
	applyIntConfig(cmd, "cloud-limit", &editCloudLimit, fileCfg.Analysis.CloudLimit)
	applyIntConfig(cmd, "char-limit", &editCharLimit, fileCfg.Analysis.CharLimit)

	cfg := config.Defaults()
	cfg.ReadabilityDelay = editDelay
	cfg.CloudLimit = editCloudLimit
	cfg.CharLimit = editCharLimit
	if err := cfg.Validate(); err != nil {
		return err
	}
	if editFile != "" && editDraft != "" {
		return fmt.Errorf("--file and --draft are mutually exclusive")
	}

	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	var draft model.Draft
	switch {
	case editFile != "":
		doc, err := ingest.Load(editFile, cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", editFile, err)
		}
		draft = model.Draft{Title: doc.Title, Body: doc.Text}
	case editDraft != "":
		draft, err = st.GetDraft(cmd.Context(), editDraft)
		if err != nil {
			return fmt.Errorf("failed to load draft: %w", err)
		}
	}

	m := tui.NewModel(cfg, st, draft)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(config.Template()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyDurationConfig(cmd *cobra.Command, name string, target, value *time.Duration) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func openStore() (*store.Store, func(), error) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}, nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
