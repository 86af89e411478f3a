package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/rshade/postpager/internal/pagination"
	"github.com/rshade/postpager/internal/posts"
)

// Column headers.
const (
	headerID    = "ID"
	headerTitle = "Title"
	headerBody  = "Body"
)

// tableHeaderHeight is the header row plus its bottom border.
const tableHeaderHeight = 2

// postsLoadedMsg carries the settled LoadState back to the event loop.
type postsLoadedMsg struct {
	state posts.LoadState
}

// LoadFunc performs one load and returns the settled state. *posts.Loader
// satisfies it through its Load method value.
type LoadFunc func(ctx context.Context) posts.LoadState

// PostsViewModel is the Bubble Tea model for the paginated posts table. Each
// instance owns its LoadState and page cursor; nothing is shared between
// instances.
type PostsViewModel struct {
	ctx    context.Context
	cancel context.CancelFunc

	// Loading
	state    posts.LoadState
	loading  *LoadingState
	fetchCmd tea.Cmd
	started  bool

	// Paging and rendering
	pager *pagination.Pager[posts.Record]
	table table.Model

	quitting bool
}

// NewPostsViewModel creates an idle model. The fetch is issued by Init, once.
func NewPostsViewModel(ctx context.Context, load LoadFunc) *PostsViewModel {
	ctx, cancel := context.WithCancel(ctx)
	m := &PostsViewModel{
		ctx:     ctx,
		cancel:  cancel,
		state:   posts.Idle(),
		loading: NewLoadingState(),
		pager:   pagination.NewPager[posts.Record](nil, pagination.DefaultPageSize),
	}
	m.fetchCmd = func() tea.Msg {
		return postsLoadedMsg{state: load(ctx)}
	}
	m.rebuildTable()
	return m
}

// Init enters the loading state and issues the fetch. Later calls return nil
// so a model never fetches twice.
func (m *PostsViewModel) Init() tea.Cmd {
	if m.started {
		return nil
	}
	m.started = true
	m.state = posts.Loading()
	return tea.Batch(m.loading.Init(), m.fetchCmd)
}

// Close cancels any outstanding fetch. The model must not be reused afterwards.
func (m *PostsViewModel) Close() {
	m.cancel()
}

// Update handles messages and updates the model state.
func (m *PostsViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case postsLoadedMsg:
		return m.handleLoaded(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.state.IsLoading() {
		return m, m.loading.Update(msg)
	}
	return m, nil
}

func (m *PostsViewModel) handleLoaded(msg postsLoadedMsg) (tea.Model, tea.Cmd) {
	m.state = msg.state
	if m.state.Phase == posts.PhaseLoaded {
		m.pager.SetItems(m.state.Records)
	} else {
		m.pager.SetItems(nil)
	}
	m.rebuildTable()
	return m, nil
}

func (m *PostsViewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch {
	case key == keyQuit || key == keyCtrlC:
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case isRetreatKey(key):
		m.Retreat()
		return m, nil
	case isAdvanceKey(key):
		m.Advance()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Advance moves to the next page when the Forward control is enabled.
func (m *PostsViewModel) Advance() {
	if m.pager.Advance() {
		m.rebuildTable()
	}
}

// Retreat moves to the previous page when the Back control is enabled.
func (m *PostsViewModel) Retreat() {
	if m.pager.Retreat() {
		m.rebuildTable()
	}
}

// State returns the current load state.
func (m *PostsViewModel) State() posts.LoadState {
	return m.state
}

// CurrentPage returns the 1-based page number.
func (m *PostsViewModel) CurrentPage() int {
	return m.pager.CurrentPage()
}

// TotalPages returns the page count, 0 when no records are loaded.
func (m *PostsViewModel) TotalPages() int {
	return m.pager.TotalPages()
}

// VisibleRecords returns the records on the current page.
func (m *PostsViewModel) VisibleRecords() []posts.Record {
	return m.pager.VisibleSlice()
}

// rebuildTable re-derives the rows for the current page.
func (m *PostsViewModel) rebuildTable() {
	m.table = buildPostsTable(m.pager.VisibleSlice(), m.pager.PageSize())
}

// buildPostsTable creates a table model for one page of records. Rows follow
// record order, so each row's identity is its record ID.
//
// Columns are sized to their widest cell because the table cuts anything
// wider than its column: Title is never shortened, and Body is shortened only
// by TruncateBody.
func buildPostsTable(records []posts.Record, pageSize int) table.Model {
	widthID := cellWidth(headerID)
	widthTitle := cellWidth(headerTitle)
	widthBody := cellWidth(headerBody)

	rows := make([]table.Row, len(records))
	for i, r := range records {
		row := table.Row{
			strconv.Itoa(r.ID),
			r.Title,
			TruncateBody(r.Body),
		}
		widthID = max(widthID, cellWidth(row[0]))
		widthTitle = max(widthTitle, cellWidth(row[1]))
		widthBody = max(widthBody, cellWidth(row[2]))
		rows[i] = row
	}

	columns := []table.Column{
		{Title: headerID, Width: widthID},
		{Title: headerTitle, Width: widthTitle},
		{Title: headerBody, Width: widthBody},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(pageSize+tableHeaderHeight),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

// cellWidth is the number of terminal cells s occupies. The table truncates
// with go-runewidth while lipgloss pads by grapheme width, so the larger of
// the two is used.
func cellWidth(s string) int {
	return max(lipgloss.Width(s), runewidth.StringWidth(s))
}
