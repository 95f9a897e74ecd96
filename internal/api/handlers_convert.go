package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/pdfmd/internal/extractor"
	"github.com/dgallion1/pdfmd/internal/pipeline"
)

// handleConvert converts an uploaded document synchronously and returns
// the Markdown in the requested format.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	data, filename, title, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	ex, err := extractor.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if pe, ok := ex.(*extractor.PDFExtractor); ok {
		pe.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}

	start := time.Now()
	src, err := ex.Extract(bytes.NewReader(data), filename)
	if err != nil {
		s.orchestrator.Stats().RecordFailure()
		jsonError(w, "extract: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if title == "" {
		title = src.Title
	}

	var doc string
	if src.Positioned() {
		doc, err = s.conv.ConvertPages(src.Pages, title)
		if err != nil {
			s.orchestrator.Stats().RecordFailure()
			jsonError(w, "convert: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}
	} else {
		doc = s.conv.Convert(src.Text, title)
	}
	s.orchestrator.Stats().Record(time.Since(start))

	s.writeDocument(w, r, doc, title)
}

// handleConvertAsync enqueues a conversion job and returns a poll URL.
func (s *Server) handleConvertAsync(w http.ResponseWriter, r *http.Request) {
	data, filename, title, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	now := time.Now()
	job := &pipeline.Job{
		ID:        pipeline.NewJobID(filename, now),
		Status:    pipeline.StatusQueued,
		Phase:     "queued",
		Filename:  filename,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	job.SetFileData(data)

	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":   job.ID,
		"status":   job.Status,
		"poll_url": fmt.Sprintf("/api/jobs/%s", job.ID),
	})
}

// readUpload parses the multipart form, enforces size limits and returns
// the validated file contents. On failure it writes the error response
// and returns ok=false.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (data []byte, filename, title string, ok bool) {
	// Limit total request size, with slack for form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return nil, "", "", false
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return nil, "", "", false
	}
	defer file.Close()

	filename = sanitizeFilename(header.Filename)
	if !extractor.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return nil, "", "", false
	}

	data, err = readLimited(file, s.cfg.MaxUploadBytes)
	if err != nil {
		jsonError(w, err.Error(), http.StatusRequestEntityTooLarge)
		return nil, "", "", false
	}

	return data, filename, r.FormValue("title"), true
}

func readLimited(file multipart.File, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file")
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("file exceeds max size (%d bytes)", limit)
	}
	return data, nil
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
