// Package extract provides the file upload endpoint that converts an
// uploaded document into plain text ready for summarization.
package extract

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"smart-summarizer/internal/handler/http/respond"
	"smart-summarizer/internal/infra/extractor"
	"smart-summarizer/internal/utils/text"
)

// maxUploadBytes caps the in-memory portion of a multipart upload.
const maxUploadBytes = 10 << 20 // 10 MiB

// DTO represents the JSON structure for extraction results.
type DTO struct {
	Filename  string `json:"filename"`
	Text      string `json:"text"`
	WordCount int    `json:"word_count"`
}

type UploadHandler struct{}

// ServeHTTP extracts plain text from an uploaded file. The file is sent as
// the "file" field of a multipart form.
func (h UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("file field is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, fmt.Errorf("read upload: %w", err))
		return
	}

	extracted, err := extractor.Extract(header.Filename, data)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, extractor.ErrUnsupportedType) || errors.Is(err, extractor.ErrNotText) {
			code = http.StatusUnsupportedMediaType
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, DTO{
		Filename:  header.Filename,
		Text:      extracted,
		WordCount: text.CountWords(extracted),
	})
}

// Register registers the extraction endpoint.
func Register(mux *http.ServeMux, authz func(http.Handler) http.Handler) {
	mux.Handle("POST /extract", authz(UploadHandler{}))
}
