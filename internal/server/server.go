// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server serves the single-page note taking UI: create, view, edit,
// delete, search, and download notes held in the in-memory store. Failures
// on unknown note IDs surface as user-visible flash messages, never as
// server errors.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rahulnayak28/CollabNotes/internal/export"
	"github.com/rahulnayak28/CollabNotes/internal/notes"
	"github.com/rahulnayak28/CollabNotes/pkg/types"
)

const (
	msgCreated  = "Note created successfully!"
	msgUpdated  = "Note updated successfully!"
	msgDeleted  = "Note deleted successfully!"
	msgNotFound = "Note not found!"
)

// Server carries the handler dependencies for the web UI.
type Server struct {
	store     *notes.Store
	serverCfg types.ServerConfig
	exportCfg types.ExportConfig
	tmpl      *template.Template
}

// New builds a Server over an existing store.
func New(store *notes.Store, cfg types.AppConfig) *Server {
	return &Server{
		store:     store,
		serverCfg: cfg.Server,
		exportCfg: cfg.Export,
		tmpl:      template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// Handler returns the route table for the UI.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /notes", s.handleCreate)
	mux.HandleFunc("POST /notes/{id}", s.handleUpdate)
	mux.HandleFunc("POST /notes/{id}/delete", s.handleDelete)
	mux.HandleFunc("GET /notes/{id}/pdf", s.handlePDF)
	mux.HandleFunc("GET /notes/export", s.handleExport)
	return mux
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	readHeaderTimeout := s.serverCfg.ReadHeaderTimeout
	if readHeaderTimeout <= 0 {
		readHeaderTimeout = 5 * time.Second
	}
	shutdownTimeout := s.serverCfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	srv := &http.Server{
		Addr:              s.serverCfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

// pageData feeds the single-page template.
type pageData struct {
	Notes         []types.Note
	Selected      *types.Note
	Collaborators string // Selected's labels, comma-joined for the edit form
	Query         string
	Results       []types.Note
	Message       string
	Error         string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	data := pageData{
		Query:   q.Get("q"),
		Message: q.Get("msg"),
		Error:   q.Get("err"),
	}

	all, err := s.store.List(ctx)
	if err != nil {
		s.internalError(w, "listing notes", err)
		return
	}
	data.Notes = all

	if id := q.Get("note"); id != "" {
		note, err := s.store.Get(ctx, id)
		switch {
		case errors.Is(err, notes.ErrNotFound):
			data.Error = msgNotFound
		case err != nil:
			s.internalError(w, "loading note", err)
			return
		default:
			data.Selected = &note
			data.Collaborators = types.JoinCollaborators(note.Collaborators)
		}
	}

	if data.Query != "" {
		results, err := s.store.Search(ctx, data.Query, 0)
		if err != nil {
			data.Error = fmt.Sprintf("Search failed: %v", err)
		} else {
			data.Results = results
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: rendering page: %v\n", err)
	}
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.redirectError(w, r, "", "Invalid form submission.")
		return
	}

	note, err := s.store.Create(r.Context(),
		r.PostFormValue("title"),
		r.PostFormValue("content"),
		types.SplitCollaborators(r.PostFormValue("collaborators")),
	)
	if err != nil {
		s.internalError(w, "creating note", err)
		return
	}

	s.redirectMessage(w, r, note.ID, msgCreated)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := r.ParseForm(); err != nil {
		s.redirectError(w, r, id, "Invalid form submission.")
		return
	}

	_, err := s.store.Update(r.Context(), id,
		r.PostFormValue("title"),
		r.PostFormValue("content"),
		types.SplitCollaborators(r.PostFormValue("collaborators")),
	)
	switch {
	case errors.Is(err, notes.ErrNotFound):
		s.redirectError(w, r, "", msgNotFound)
	case err != nil:
		s.internalError(w, "updating note", err)
	default:
		s.redirectMessage(w, r, id, msgUpdated)
	}
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	err := s.store.Delete(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, notes.ErrNotFound):
		s.redirectError(w, r, "", msgNotFound)
	case err != nil:
		s.internalError(w, "deleting note", err)
	default:
		s.redirectMessage(w, r, "", msgDeleted)
	}
}

func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	note, err := s.store.Get(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, notes.ErrNotFound):
		s.redirectError(w, r, "", msgNotFound)
		return
	case err != nil:
		s.internalError(w, "loading note", err)
		return
	}

	data, err := export.PDF(note, s.exportCfg)
	if err != nil {
		s.internalError(w, "generating PDF", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", downloadName(note.Title)))
	w.Write(data)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	all, err := s.store.List(r.Context())
	if err != nil {
		s.internalError(w, "listing notes", err)
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		err = export.WriteJSON(w, all)
	case "yaml", "":
		w.Header().Set("Content-Type", "application/yaml")
		err = export.WriteYAML(w, all)
	default:
		http.Error(w, fmt.Sprintf("unsupported format %q: use yaml or json", format), http.StatusBadRequest)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: writing export: %v\n", err)
	}
}

// redirectMessage sends the browser back to the page with a success flash
// and, when id is set, the note selected.
func (s *Server) redirectMessage(w http.ResponseWriter, r *http.Request, id, msg string) {
	v := url.Values{}
	if id != "" {
		v.Set("note", id)
	}
	v.Set("msg", msg)
	http.Redirect(w, r, "/?"+v.Encode(), http.StatusSeeOther)
}

// redirectError sends the browser back to the page with an error flash.
func (s *Server) redirectError(w http.ResponseWriter, r *http.Request, id, msg string) {
	v := url.Values{}
	if id != "" {
		v.Set("note", id)
	}
	v.Set("err", msg)
	http.Redirect(w, r, "/?"+v.Encode(), http.StatusSeeOther)
}

func (s *Server) internalError(w http.ResponseWriter, action string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", action, err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// downloadName derives a safe PDF filename from a note title.
func downloadName(title string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', ':', '\n', '\r':
			return '_'
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		name = "note"
	}
	return name + ".pdf"
}
