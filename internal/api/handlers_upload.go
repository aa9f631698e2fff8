// AI Solutions Dashboard - Web Access Log Analytics and Sales Insights
// Copyright 2026 THB213
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/THB213/AI-Solutions-Dashboard

package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/THB213/AI-Solutions-Dashboard/internal/logging"
)

// uploadFormField is the multipart form field carrying the log file.
const uploadFormField = "file"

// UploadLogs handles POST /logs/upload.
//
// The uploaded file is scanned line by line; malformed lines are counted
// in the summary but never fail the upload. Re-uploading a file appends
// duplicate records.
func (h *Handler) UploadLogs(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.Ingest.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.cfg.Ingest.MaxUploadBytes); err != nil {
		rw.BadRequest("Upload exceeds the size limit or is not valid multipart form data")
		return
	}

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		rw.BadRequest("Missing log file; send it as the \"file\" form field")
		return
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logging.CtxWarn(r.Context()).Err(cerr).Msg("Failed to close uploaded file")
		}
	}()

	if !h.extensionAllowed(header.Filename) {
		rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeUnsupportedFile,
			"Unsupported file type; upload a plain-text access log",
			map[string]interface{}{"allowed_extensions": h.cfg.Ingest.AllowedExtensions})
		return
	}

	logging.CtxInfo(r.Context()).
		Str("filename", header.Filename).
		Int64("size", header.Size).
		Msg("Ingesting uploaded log file")

	summary, err := h.ingestor.Ingest(r.Context(), file)
	if err != nil {
		logging.CtxErr(r.Context(), err).Msg("Batch ingestion failed")
		rw.InternalError("Failed to read the uploaded file")
		return
	}

	rw.Success(summary)
}

// extensionAllowed checks the filename against the configured allow-list.
func (h *Handler) extensionAllowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range h.cfg.Ingest.AllowedExtensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}
