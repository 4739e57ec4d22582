package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/textlens/internal/analysis"
	"github.com/verte-zerg/textlens/internal/ingest"
	"github.com/verte-zerg/textlens/internal/model"
	"github.com/verte-zerg/textlens/internal/report"
	"github.com/verte-zerg/textlens/internal/store"
)

const draftTimeLayout = "2006-01-02 15:04"

var (
	draftsLimit int
	draftTitle  string
	draftID     string
)

func newDraftsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drafts",
		Short: "Manage saved drafts",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List drafts, most recently updated first",
		Args:  cobra.NoArgs,
		RunE:  runDraftsListCmd,
	}
	listCmd.Flags().IntVar(&draftsLimit, "limit", 0, "show at most N drafts (0 = all)")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print the text of a draft",
		Args:  cobra.ExactArgs(1),
		RunE:  runDraftsShowCmd,
	}

	saveCmd := &cobra.Command{
		Use:   "save [path|-]",
		Short: "Save text from a file or stdin as a draft",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDraftsSaveCmd,
	}
	saveCmd.Flags().StringVar(&draftTitle, "title", "", "draft title (default: first line of the text)")
	saveCmd.Flags().StringVar(&draftID, "id", "", "overwrite the draft with this id or id prefix")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a draft",
		Args:  cobra.ExactArgs(1),
		RunE:  runDraftsDeleteCmd,
	}

	cmd.AddCommand(listCmd, showCmd, saveCmd, deleteCmd)
	return cmd
}

func runDraftsListCmd(cmd *cobra.Command, _ []string) error {
	if draftsLimit < 0 {
		return fmt.Errorf("--limit must be >= 0")
	}
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	drafts, err := st.ListDrafts(cmd.Context(), draftsLimit)
	if err != nil {
		return fmt.Errorf("failed to list drafts: %w", err)
	}
	if len(drafts) == 0 {
		logErrln("No drafts saved yet. Save one with ctrl+s in the editor or: textlens drafts save <file>")
		return nil
	}
	return writeDraftTable(cmd.OutOrStdout(), drafts)
}

func writeDraftTable(w io.Writer, drafts []model.Draft) error {
	rows := make([][]string, 0, len(drafts))
	for _, d := range drafts {
		rows = append(rows, []string{
			shortDraftID(d.ID),
			d.UpdatedAt.Local().Format(draftTimeLayout),
			fmt.Sprintf("%d", analysis.BasicStats(d.Body).Words),
			d.Title,
		})
	}
	headers := []string{"ID", "Updated", "Words", "Title"}
	if err := report.WriteTable(w, headers, rows, map[int]bool{2: true}); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runDraftsShowCmd(cmd *cobra.Command, args []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	d, err := st.GetDraft(cmd.Context(), args[0])
	if err != nil {
		return draftLookupError(err)
	}
	body := d.Body
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	if _, err := io.WriteString(cmd.OutOrStdout(), body); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runDraftsSaveCmd(cmd *cobra.Command, args []string) error {
	path := ingest.StdinPath
	if len(args) == 1 {
		path = args[0]
	}
	doc, err := ingest.Load(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	draft := model.Draft{Title: strings.TrimSpace(draftTitle)}
	if draftID != "" {
		existing, err := st.GetDraft(cmd.Context(), draftID)
		if err != nil {
			return draftLookupError(err)
		}
		draft.ID = existing.ID
		draft.CreatedAt = existing.CreatedAt
	}
	if draft.Title == "" && path != ingest.StdinPath {
		draft.Title = doc.Title
	}
	draft.Body = doc.Text

	saved, err := st.SaveDraft(cmd.Context(), draft)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), saved.ID); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runDraftsDeleteCmd(cmd *cobra.Command, args []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	id, err := st.DeleteDraft(cmd.Context(), args[0])
	if err != nil {
		return draftLookupError(err)
	}
	logErrf("Deleted draft %s\n", id)
	return nil
}

func draftLookupError(err error) error {
	switch {
	case errors.Is(err, store.ErrAmbiguous):
		return fmt.Errorf("%w; use more characters of the id (see: textlens drafts list)", err)
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w (see: textlens drafts list)", err)
	default:
		return fmt.Errorf("failed to load draft: %w", err)
	}
}

func shortDraftID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
