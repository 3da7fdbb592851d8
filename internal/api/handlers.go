package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"github.com/exam2nb/exam2nb/internal/extractor"
	"github.com/exam2nb/exam2nb/internal/reader"
	"github.com/exam2nb/exam2nb/internal/splitter"
	"github.com/yuin/goldmark"
)

type questionResponse struct {
	Number   string `json:"number"`
	Ordinal  int    `json:"ordinal"`
	Markdown string `json:"markdown"`
}

type splitResponse struct {
	Title     string             `json:"title"`
	Questions []questionResponse `json:"questions"`
	Warnings  []string           `json:"warnings,omitempty"`
}

// handleSplit accepts a multipart upload, extracts its content and
// returns the split questions as markdown.
func (s *Server) handleSplit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload exceeds size limit")
			return
		}
		writeError(w, http.StatusBadRequest, "missing file field in multipart form")
		return
	}
	defer file.Close()

	filename := filepath.Base(header.Filename)
	rd, err := reader.ForFile(filename)
	if err != nil {
		writeError(w, http.StatusUnsupportedMediaType, err.Error())
		return
	}

	body, err := rd.Read(file, filename)
	if err != nil {
		s.log.Error("read failed", "file", filename, "error", err)
		writeError(w, http.StatusUnprocessableEntity, "failed to read document: "+err.Error())
		return
	}

	blocks, warnings := extractor.Extract(body)
	opts := splitter.DefaultOptions()
	opts.KeepPreamble = s.cfg.KeepPreamble
	opts.Log = s.log
	questions := splitter.Split(blocks, opts)

	resp := splitResponse{
		Title:    body.Title,
		Warnings: warnings,
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, questionResponse{
			Number:   q.Number,
			Ordinal:  q.Ordinal,
			Markdown: q.Markdown,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type previewRequest struct {
	Markdown string `json:"markdown"`
}

type previewResponse struct {
	HTML string `json:"html"`
}

// handlePreview renders question markdown to HTML so callers can show
// a split result without shipping their own renderer.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	var req previewRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Markdown == "" {
		writeError(w, http.StatusBadRequest, "markdown field is required")
		return
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(req.Markdown), &buf); err != nil {
		s.log.Error("markdown conversion failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to render markdown")
		return
	}
	writeJSON(w, http.StatusOK, previewResponse{HTML: buf.String()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
