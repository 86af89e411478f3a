package tui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/rshade/postpager/internal/pagination"
	"github.com/rshade/postpager/internal/posts"
)

// RenderPlain writes the first page of a settled LoadState as plain text.
// It follows the same rules as the interactive view: the error message when
// the fetch failed, then the table and page indicator only when there are
// records to show.
func RenderPlain(w io.Writer, state posts.LoadState) error {
	if state.IsFailed() {
		if _, err := fmt.Fprintf(w, "Error: %s\n", state.Message); err != nil {
			return err
		}
	}

	pager := pagination.NewPager(state.Records, pagination.DefaultPageSize)
	visible := pager.VisibleSlice()
	if len(visible) == 0 {
		return nil
	}

	rows := make([][]string, len(visible))
	for i, r := range visible {
		rows[i] = []string{strconv.Itoa(r.ID), r.Title, TruncateBody(r.Body)}
	}

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Title", "Body").
		Rows(rows...)

	meta := pager.Meta()
	_, err := fmt.Fprintf(w, "%s\n%s\n", t.Render(), pageIndicator(meta.CurrentPage, meta.TotalPages))
	return err
}
