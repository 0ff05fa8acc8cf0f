// Package bridge exposes a loaded container over HTTP so external editors
// can read and write localized text without touching the binary format.
package bridge

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v5"

	"github.com/decima-tools/coreloc/internal/decima"
	"github.com/decima-tools/coreloc/internal/fsutil"
	"github.com/decima-tools/coreloc/internal/logger"
)

// Server serves one open container. All handlers share the document, so
// access is serialized through a mutex.
type Server struct {
	mu   sync.Mutex
	path string
	doc  *decima.Document
	log  logger.Logger
}

// NewServer wraps an open document. Edits are written back to path.
func NewServer(doc *decima.Document, path string, log logger.Logger) *Server {
	if log == nil {
		log = logger.Default()
	}
	return &Server{path: path, doc: doc, log: log}
}

// Register mounts the edit API on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/v1/document", s.handleDocument)
	e.GET("/v1/languages", s.handleLanguages)
	e.GET("/v1/entries", s.handleEntries)
	e.PUT("/v1/entries", s.handleApply)
}

// DocumentInfo summarizes the open container.
type DocumentInfo struct {
	Path      string   `json:"path"`
	Game      string   `json:"game"`
	Chunks    int      `json:"chunks"`
	Resources int      `json:"resources"`
	Dirty     bool     `json:"dirty"`
	Warnings  []string `json:"warnings,omitempty"`
}

// EntriesResponse carries entries for GET /v1/entries.
type EntriesResponse struct {
	Entries []decima.Entry `json:"entries"`
}

// ApplyRequest is the PUT /v1/entries body.
type ApplyRequest struct {
	Entries []decima.Entry `json:"entries"`
}

// ApplyResponse reports the result of an edit batch.
type ApplyResponse struct {
	Applied  int      `json:"applied"`
	Saved    bool     `json:"saved"`
	Warnings []string `json:"warnings,omitempty"`
}

func (s *Server) handleDocument(c *echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	info := DocumentInfo{
		Path:      s.path,
		Game:      s.doc.Game.String(),
		Chunks:    len(s.doc.Chunks),
		Resources: len(s.doc.Resources),
		Dirty:     s.doc.Dirty(),
	}
	for _, w := range s.doc.Warnings {
		info.Warnings = append(info.Warnings, w.String())
	}
	return c.JSON(http.StatusOK, info)
}

func (s *Server) handleLanguages(c *echo.Context) error {
	s.mu.Lock()
	game := s.doc.Game
	s.mu.Unlock()

	return c.JSON(http.StatusOK, map[string]any{
		"game":      game.String(),
		"languages": game.Languages(),
	})
}

func (s *Server) handleEntries(c *echo.Context) error {
	language := c.QueryParam("language")
	resource := -1
	if raw := c.QueryParam("resource"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return writeBadRequest(c, "resource must be a chunk index")
		}
		resource = n
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []decima.Entry
	for _, entry := range s.doc.Entries() {
		if language != "" && entry.Language != language {
			continue
		}
		if resource >= 0 && entry.Resource != resource {
			continue
		}
		entries = append(entries, entry)
	}
	return c.JSON(http.StatusOK, EntriesResponse{Entries: entries})
}

func (s *Server) handleApply(c *echo.Context) error {
	req, err := decodeJSON[ApplyRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, "malformed request body: "+err.Error())
	}
	if len(req.Entries) == 0 {
		return writeBadRequest(c, "no entries to apply")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	warnings := s.doc.Apply(req.Entries)
	resp := ApplyResponse{Applied: len(req.Entries) - len(warnings)}
	for _, w := range warnings {
		resp.Warnings = append(resp.Warnings, w.String())
	}

	if s.doc.Dirty() {
		data, err := s.doc.Save()
		if err != nil {
			return writeServerError(c, "encode container: "+err.Error())
		}
		if err := fsutil.WriteFileAtomic(s.path, data, 0o644); err != nil {
			return writeServerError(c, "write container: "+err.Error())
		}
		resp.Saved = true
		s.log.Info("container saved", "path", s.path, "applied", resp.Applied)
	}
	return c.JSON(http.StatusOK, resp)
}

func writeBadRequest(c *echo.Context, msg string) error {
	return writeErr(c, http.StatusBadRequest, "invalid_request_error", msg)
}

func writeServerError(c *echo.Context, msg string) error {
	return writeErr(c, http.StatusInternalServerError, "server_error", msg)
}

func writeErr(c *echo.Context, status int, errType, msg string) error {
	return c.JSON(status, map[string]any{
		"error": map[string]string{
			"type":    errType,
			"message": msg,
		},
	})
}

func decodeJSON[T any](r io.Reader) (T, error) {
	var out T
	err := json.NewDecoder(r).Decode(&out)
	return out, err
}
