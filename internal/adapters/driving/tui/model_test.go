package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/newsdex/internal/core/domain"
)

type fakePort struct {
	recent  []domain.Document
	results []domain.Document
	err     error
}

func (f *fakePort) RecentDocuments(_ context.Context, _ int) ([]domain.Document, error) {
	return f.recent, f.err
}

func (f *fakePort) Search(_ context.Context, _ string, _ int) ([]domain.Document, error) {
	return f.results, f.err
}

func testDocs() []domain.Document {
	return []domain.Document{
		{Title: "First", Link: "https://example.com/1", Body: "body one"},
		{Title: "Second", Link: "https://example.com/2", Body: "body two"},
		{Title: "Third", Link: "https://example.com/3", Body: "body three"},
	}
}

func TestNew_LoadsRecentArticles(t *testing.T) {
	m := New(&fakePort{recent: testDocs()})

	assert.Len(t, m.docs, 3)
	assert.Equal(t, 0, m.cursor)
	assert.Contains(t, m.status, "3 recent article(s)")
}

func TestNew_StoreErrorInStatus(t *testing.T) {
	m := New(&fakePort{err: errors.New("store offline")})

	assert.Empty(t, m.docs)
	assert.Contains(t, m.status, "store offline")
}

func TestUpdate_WindowSizeReady(t *testing.T) {
	m := New(&fakePort{recent: testDocs()})
	assert.Contains(t, m.View(), "Loading")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)

	assert.True(t, m.ready)
	assert.Contains(t, m.View(), "Newsdex")
	assert.Contains(t, m.View(), "First")
}

func TestUpdate_CursorWrapsAround(t *testing.T) {
	m := New(&fakePort{recent: testDocs()})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	assert.Equal(t, 1, m.cursor)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	assert.Equal(t, 0, m.cursor)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	assert.Equal(t, 2, m.cursor)
}

func TestUpdate_EnterRunsSearch(t *testing.T) {
	port := &fakePort{
		recent:  testDocs(),
		results: []domain.Document{{Title: "Hit", Link: "https://example.com/hit", Body: "match"}},
	}
	m := New(port)
	m.input.SetValue("budget")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	require.Len(t, m.docs, 1)
	assert.Equal(t, "Hit", m.docs[0].Title)
	assert.Contains(t, m.status, `1 result(s) for "budget"`)
}

func TestUpdate_EscClearsSearch(t *testing.T) {
	port := &fakePort{
		recent:  testDocs(),
		results: []domain.Document{{Title: "Hit"}},
	}
	m := New(port)
	m.input.SetValue("budget")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.Len(t, m.docs, 1)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	assert.Len(t, m.docs, 3)
	assert.Empty(t, m.input.Value())
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	m := New(&fakePort{recent: testDocs()})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRenderCurrent_NoArticles(t *testing.T) {
	m := New(&fakePort{})
	assert.Equal(t, "No articles.", m.renderCurrent())
}
