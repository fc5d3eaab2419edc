// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulnayak28/CollabNotes/internal/notes"
	"github.com/rahulnayak28/CollabNotes/pkg/types"
)

func testServer(t *testing.T) (*Server, *notes.Store) {
	t.Helper()
	store, err := notes.NewStore(types.StoreConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return New(store, types.AppConfig{}), store
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestCreateNote(t *testing.T) {
	s, store := testServer(t)
	h := s.Handler()

	rec := postForm(t, h, "/notes", url.Values{
		"title":         {"Standup"},
		"content":       {"status updates"},
		"collaborators": {"a@example.com, b@example.com"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc := rec.Header().Get("Location")
	assert.Contains(t, loc, "note=")
	assert.Contains(t, loc, url.QueryEscape("Note created successfully!"))

	all, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Standup", all[0].Title)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, all[0].Collaborators)
}

func TestIndexShowsNotesAndFlash(t *testing.T) {
	s, store := testServer(t)
	h := s.Handler()

	note, err := store.Create(context.Background(), "Groceries", "milk", nil)
	require.NoError(t, err)

	rec := get(t, h, "/?note="+note.ID+"&msg=hello")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Groceries")
	assert.Contains(t, body, "milk")
	assert.Contains(t, body, "hello")
}

func TestIndexUnknownSelectionShowsNotFound(t *testing.T) {
	s, _ := testServer(t)

	rec := get(t, s.Handler(), "/?note=no-such-id")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Note not found!")
}

func TestUpdateNote(t *testing.T) {
	s, store := testServer(t)
	h := s.Handler()

	note, err := store.Create(context.Background(), "old", "old body", []string{"x@example.com"})
	require.NoError(t, err)

	rec := postForm(t, h, "/notes/"+note.ID, url.Values{
		"title":         {"new"},
		"content":       {"new body"},
		"collaborators": {""},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), url.QueryEscape("Note updated successfully!"))

	got, err := store.Get(context.Background(), note.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "new body", got.Content)
	assert.Empty(t, got.Collaborators)
}

func TestUpdateUnknownNote(t *testing.T) {
	s, _ := testServer(t)

	rec := postForm(t, s.Handler(), "/notes/no-such-id", url.Values{"title": {"x"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), url.QueryEscape("Note not found!"))
}

func TestDeleteNote(t *testing.T) {
	s, store := testServer(t)
	h := s.Handler()

	note, err := store.Create(context.Background(), "doomed", "", nil)
	require.NoError(t, err)

	rec := postForm(t, h, "/notes/"+note.ID+"/delete", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), url.QueryEscape("Note deleted successfully!"))
	assert.Equal(t, 0, store.Len())
}

func TestDeleteUnknownNote(t *testing.T) {
	s, _ := testServer(t)

	rec := postForm(t, s.Handler(), "/notes/no-such-id/delete", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), url.QueryEscape("Note not found!"))
}

func TestDownloadPDF(t *testing.T) {
	s, store := testServer(t)
	h := s.Handler()

	note, err := store.Create(context.Background(), "Quarterly plan", "ship the thing", nil)
	require.NoError(t, err)

	rec := get(t, h, "/notes/"+note.ID+"/pdf")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `attachment; filename="Quarterly plan.pdf"`)

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "%PDF-1.4"), "body is not a PDF")
	assert.Contains(t, body, "Quarterly plan")
	assert.Contains(t, body, "ship the thing")
}

func TestDownloadPDFUnknownNote(t *testing.T) {
	s, _ := testServer(t)

	rec := get(t, s.Handler(), "/notes/no-such-id/pdf")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), url.QueryEscape("Note not found!"))
}

func TestExportJSON(t *testing.T) {
	s, store := testServer(t)
	h := s.Handler()

	_, err := store.Create(context.Background(), "one", "1", nil)
	require.NoError(t, err)
	_, err = store.Create(context.Background(), "two", "2", nil)
	require.NoError(t, err)

	rec := get(t, h, "/notes/export?format=json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Len(t, entries, 2)
}

func TestExportUnsupportedFormat(t *testing.T) {
	s, _ := testServer(t)

	rec := get(t, s.Handler(), "/notes/export?format=xml")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchRendersResults(t *testing.T) {
	s, store := testServer(t)
	h := s.Handler()

	_, err := store.Create(context.Background(), "Kubernetes runbook", "restart the pods", nil)
	require.NoError(t, err)
	_, err = store.Create(context.Background(), "Lunch ideas", "tacos", nil)
	require.NoError(t, err)

	rec := get(t, h, "/?q=kubernetes")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Kubernetes runbook")
	assert.NotContains(t, body, "No results found.")
}

func TestSearchNoResults(t *testing.T) {
	s, _ := testServer(t)

	rec := get(t, s.Handler(), "/?q=zeppelin")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No results found.")
}
