package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/heartmarshall/issuetracker-backend/internal/domain"
)

// multipartOverhead is the slack allowed on top of the CSV size limit for
// multipart boundaries and part headers.
const multipartOverhead = 64 << 10

const importFormField = "file"

type importService interface {
	Import(ctx context.Context, r io.Reader) (*domain.ImportResult, error)
}

// ImportHandler serves POST /issues/import.
type ImportHandler struct {
	svc      importService
	maxBytes int64
	log      *slog.Logger
}

// NewImportHandler creates an ImportHandler. maxBytes bounds the CSV document.
func NewImportHandler(svc importService, maxBytes int64, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{svc: svc, maxBytes: maxBytes, log: logger.With("handler", "import")}
}

// Import accepts the CSV either as the multipart field "file" or as the raw
// request body. A rejected file still answers 200 with the row errors.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)

	src, err := h.source(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	result, err := h.svc.Import(r.Context(), src)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toImport(result))
}

func (h *ImportHandler) source(r *http.Request) (io.Reader, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/form-data" {
		return r.Body, nil
	}

	mr, err := r.MultipartReader()
	if err != nil {
		return nil, domain.NewValidationError(importFormField, "invalid multipart body")
	}
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, domain.NewValidationError(importFormField, "required")
		}
		var sizeErr *http.MaxBytesError
		if errors.As(err, &sizeErr) {
			return nil, err
		}
		if err != nil {
			return nil, domain.NewValidationError(importFormField, "invalid multipart body")
		}
		if part.FormName() == importFormField {
			return part, nil
		}
	}
}

func (h *ImportHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var sizeErr *http.MaxBytesError
	if errors.As(err, &sizeErr) {
		err = domain.NewValidationError(importFormField, fmt.Sprintf("max %d bytes", h.maxBytes))
	}
	writeDomainError(w, r, h.log, err)
}
