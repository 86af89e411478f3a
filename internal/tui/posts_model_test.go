package tui

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/postpager/internal/posts"
)

const longBody = "This is a very long body text that should be truncated after thirty chars"

func makePosts(n int) []posts.Record {
	records := make([]posts.Record, n)
	for i := range records {
		id := strconv.Itoa(i + 1)
		records[i] = posts.Record{ID: i + 1, Title: "Post " + id, Body: "Body of post " + id}
	}
	return records
}

// newServedModel builds a model whose loader fetches records from a test server.
func newServedModel(t *testing.T, records []posts.Record) (*PostsViewModel, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(records)
	}))
	t.Cleanup(server.Close)

	client := posts.NewClient(server.URL, 0)
	client.HTTPClient = server.Client()
	loader := posts.NewLoader(client.Fetch)

	m := NewPostsViewModel(context.Background(), loader.Load)
	t.Cleanup(m.Close)
	return m, &calls
}

// mount runs Init and delivers the fetch result, as the program would.
func mount(t *testing.T, m *PostsViewModel) {
	t.Helper()
	require.NotNil(t, m.Init())
	require.True(t, m.State().IsLoading())
	m.Update(m.fetchCmd())
}

func press(m *PostsViewModel, key string) {
	var msg tea.KeyMsg
	switch key {
	case keyLeft:
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case keyRight:
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case keyPgUp:
		msg = tea.KeyMsg{Type: tea.KeyPgUp}
	case keyPgDown:
		msg = tea.KeyMsg{Type: tea.KeyPgDown}
	case keyCtrlC:
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	m.Update(msg)
}

func column(rows []table.Row, col int) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r[col]
	}
	return out
}

func TestNewPostsViewModel_Idle(t *testing.T) {
	m := NewPostsViewModel(context.Background(), func(context.Context) posts.LoadState {
		return posts.Loaded(nil)
	})
	defer m.Close()

	assert.Equal(t, posts.PhaseIdle, m.State().Phase)
	assert.Equal(t, 1, m.CurrentPage())
	assert.Equal(t, 0, m.TotalPages())
	assert.Empty(t, m.VisibleRecords())
}

func TestPostsViewModel_InitFetchesOnce(t *testing.T) {
	m, calls := newServedModel(t, makePosts(3))

	mount(t, m)
	assert.Nil(t, m.Init(), "a mounted model must not fetch again")

	press(m, keyRight)
	press(m, keyLeft)
	assert.Equal(t, int32(1), calls.Load())
}

// With 100 records the first page shows ids 1..10.
func TestPostsViewModel_FirstPage(t *testing.T) {
	m, _ := newServedModel(t, makePosts(100))
	mount(t, m)

	require.Equal(t, posts.PhaseLoaded, m.State().Phase)
	rows := m.table.Rows()
	require.Len(t, rows, 10)

	ids := column(rows, 0)
	titles := column(rows, 1)
	assert.Contains(t, ids, "1")
	assert.Contains(t, ids, "10")
	assert.NotContains(t, ids, "11")
	assert.Contains(t, titles, "Post 1")
	assert.Contains(t, titles, "Post 10")
	assert.NotContains(t, titles, "Post 11")

	view := m.View()
	assert.Contains(t, view, "Page 1 of 10")
	assert.Contains(t, view, labelRetreat)
	assert.Contains(t, view, labelAdvance)
	assert.Contains(t, view, "Post 10")
	assert.NotContains(t, view, "Post 11")
	assert.Contains(t, view, "Body of post 10")
}

// Advancing once shows ids 11..20.
func TestPostsViewModel_AdvanceShowsSecondPage(t *testing.T) {
	m, _ := newServedModel(t, makePosts(100))
	mount(t, m)

	press(m, keyRight)

	assert.Equal(t, 2, m.CurrentPage())
	rows := m.table.Rows()
	ids := column(rows, 0)
	titles := column(rows, 1)
	assert.Equal(t, "11", ids[0])
	assert.Equal(t, "20", ids[len(ids)-1])
	assert.Contains(t, titles, "Post 11")
	assert.Contains(t, titles, "Post 20")
	assert.NotContains(t, ids, "1")
	assert.NotContains(t, titles, "Post 1")

	view := m.View()
	assert.Contains(t, view, "Page 2 of 10")
	assert.Contains(t, view, "Post 11")
	assert.Contains(t, view, "Post 20")
	assert.NotContains(t, view, "Post 21")
}

// A transport failure shows the message and no table.
func TestPostsViewModel_TransportError(t *testing.T) {
	client := &posts.Client{
		Endpoint: "http://posts.invalid/posts",
		HTTPClient: &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("Network error")
		})},
	}
	loader := posts.NewLoader(client.Fetch)
	m := NewPostsViewModel(context.Background(), loader.Load)
	defer m.Close()

	mount(t, m)

	require.True(t, m.State().IsFailed())
	view := m.View()
	assert.Contains(t, strings.ToLower(view), "network error")
	assert.NotContains(t, view, "Page ")
	assert.NotContains(t, view, loadingMessage)
	assert.Empty(t, m.table.Rows())
}

func TestPostsViewModel_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := posts.NewClient(server.URL, 0)
	client.HTTPClient = server.Client()
	m := NewPostsViewModel(context.Background(), posts.NewLoader(client.Fetch).Load)
	defer m.Close()

	mount(t, m)

	assert.Contains(t, m.View(), "HTTP error! status: 500")
	assert.Empty(t, m.VisibleRecords())
}

// A 73-character body is cut to 30 characters plus "...".
func TestPostsViewModel_TruncatesBody(t *testing.T) {
	require.Len(t, longBody, 73)
	m, _ := newServedModel(t, []posts.Record{{ID: 1, Title: "Test Post", Body: longBody}})
	mount(t, m)

	rows := m.table.Rows()
	require.Len(t, rows, 1)
	body := rows[0][2]
	assert.Equal(t, longBody[:30]+"...", body)
	assert.Len(t, body, 33)
	assert.True(t, strings.HasPrefix(body, "This is a very long body"))

	// The stored record is untouched.
	assert.Equal(t, longBody, m.VisibleRecords()[0].Body)

	view := m.View()
	assert.Contains(t, view, longBody[:30]+"...")
	assert.NotContains(t, view, longBody[:31])
	assert.NotContains(t, view, "…")
	assert.Contains(t, view, "Page 1 of 1")
}

func TestPostsViewModel_ViewShowsHeaderRow(t *testing.T) {
	m, _ := newServedModel(t, makePosts(3))
	mount(t, m)

	header := strings.Split(m.table.View(), "\n")[0]
	idAt := strings.Index(header, headerID)
	titleAt := strings.Index(header, headerTitle)
	bodyAt := strings.Index(header, headerBody)
	require.GreaterOrEqual(t, idAt, 0)
	assert.Greater(t, titleAt, idAt)
	assert.Greater(t, bodyAt, titleAt)
}

func TestPostsViewModel_ViewHeaderAlignsWithCells(t *testing.T) {
	m, _ := newServedModel(t, []posts.Record{{ID: 1, Title: "Alpha", Body: "beta"}})
	mount(t, m)

	lines := strings.Split(m.table.View(), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	row := lines[2]
	assert.Equal(t, strings.Index(lines[0], headerTitle), strings.Index(row, "Alpha"))
	assert.Equal(t, strings.Index(lines[0], headerBody), strings.Index(row, "beta"))
}

func TestPostsViewModel_ViewKeepsLongTitles(t *testing.T) {
	const title = "sunt aut facere repellat provident occaecati excepturi optio reprehenderit"
	m, _ := newServedModel(t, []posts.Record{
		{ID: 1, Title: title, Body: "quia et suscipit"},
		{ID: 2, Title: "qui est esse", Body: "est rerum tempore vitae"},
	})
	mount(t, m)

	view := m.View()
	assert.Contains(t, view, title)
	assert.Contains(t, view, "qui est esse")
	assert.NotContains(t, view, "…")
}

func TestPostsViewModel_ViewWideBody(t *testing.T) {
	body := strings.Repeat("日本", 20)
	m, _ := newServedModel(t, []posts.Record{{ID: 1, Title: "wide", Body: body}})
	mount(t, m)

	want := TruncateBody(body)
	require.Equal(t, strings.Repeat("日本", 15)+"...", want)

	view := m.View()
	assert.Contains(t, view, want)
	assert.NotContains(t, view, "…")
}

func TestPostsViewModel_NoRecords(t *testing.T) {
	m, _ := newServedModel(t, []posts.Record{})
	mount(t, m)

	assert.Equal(t, posts.PhaseLoaded, m.State().Phase)
	assert.Equal(t, 0, m.TotalPages())

	press(m, keyRight)
	assert.Equal(t, 1, m.CurrentPage())
	press(m, keyLeft)
	assert.Equal(t, 1, m.CurrentPage())

	view := m.View()
	assert.NotContains(t, view, "Page ")
	assert.NotContains(t, view, "Title")
}

func TestPostsViewModel_Bounds(t *testing.T) {
	m, _ := newServedModel(t, makePosts(25))
	mount(t, m)

	press(m, keyLeft)
	assert.Equal(t, 1, m.CurrentPage(), "retreat is a no-op on the first page")

	press(m, keyL)
	press(m, keyPgDown)
	assert.Equal(t, 3, m.CurrentPage())
	assert.Len(t, m.VisibleRecords(), 5)

	press(m, keyF)
	assert.Equal(t, 3, m.CurrentPage(), "advance is a no-op on the last page")
	assert.Contains(t, m.View(), "Page 3 of 3")

	press(m, keyH)
	press(m, keyPgUp)
	press(m, keyB)
	assert.Equal(t, 1, m.CurrentPage())
}

func TestPostsViewModel_ControlStyles(t *testing.T) {
	m, _ := newServedModel(t, makePosts(20))
	mount(t, m)

	assert.Equal(t, DisabledControlStyle.Render(labelRetreat), renderControl(labelRetreat, m.pager.CanRetreat()))
	assert.Equal(t, ControlStyle.Render(labelAdvance), renderControl(labelAdvance, m.pager.CanAdvance()))

	press(m, keyRight)
	assert.Equal(t, ControlStyle.Render(labelRetreat), renderControl(labelRetreat, m.pager.CanRetreat()))
	assert.Equal(t, DisabledControlStyle.Render(labelAdvance), renderControl(labelAdvance, m.pager.CanAdvance()))
}

func TestPostsViewModel_LoadingView(t *testing.T) {
	m := NewPostsViewModel(context.Background(), func(context.Context) posts.LoadState {
		return posts.Loaded(makePosts(1))
	})
	defer m.Close()

	m.Init()

	view := m.View()
	assert.Contains(t, view, loadingMessage)
	assert.NotContains(t, view, "Page ")
}

func TestPostsViewModel_Quit(t *testing.T) {
	var fetchCtx context.Context
	m := NewPostsViewModel(context.Background(), func(ctx context.Context) posts.LoadState {
		fetchCtx = ctx
		return posts.Loaded(nil)
	})
	m.Init()
	m.fetchCmd()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.Empty(t, m.View())
	require.Error(t, fetchCtx.Err(), "quitting cancels the session context")
}

func TestPostsViewModel_CtrlCQuits(t *testing.T) {
	m := NewPostsViewModel(context.Background(), func(context.Context) posts.LoadState { return posts.Idle() })
	defer m.Close()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestPostsViewModel_WindowResizeKeepsPage(t *testing.T) {
	m, _ := newServedModel(t, makePosts(30))
	mount(t, m)
	press(m, keyRight)

	before := m.View()
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	assert.Equal(t, 2, m.CurrentPage())
	assert.Equal(t, "11", m.table.Rows()[0][0])
	assert.Equal(t, before, m.View(), "a narrow window must not clip cells")
}

func TestPostsViewModel_InstancesAreIndependent(t *testing.T) {
	a, _ := newServedModel(t, makePosts(30))
	b, _ := newServedModel(t, makePosts(30))
	mount(t, a)
	mount(t, b)

	press(a, keyRight)

	assert.Equal(t, 2, a.CurrentPage())
	assert.Equal(t, 1, b.CurrentPage())
}

// roundTripFunc adapts a function to http.RoundTripper.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
