package pdf

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"pdf-hero/internal/config"
	"pdf-hero/internal/domain"
	"pdf-hero/internal/http-server/handler/pdf/dto"

	"github.com/wb-go/wbf/zlog"
)

const (
	maxMemory = 32 << 20

	// Slack for multipart boundaries and part headers on top of the raw
	// file payload when capping the request body.
	formOverhead = 1 << 20
)

type PDFHandler struct {
	usecase pdfUsecase
	upload  config.UploadConfig
	logger  *zlog.Zerolog
}

func NewPDFHandler(usecase pdfUsecase, upload config.UploadConfig, logger *zlog.Zerolog) *PDFHandler {
	return &PDFHandler{
		usecase: usecase,
		upload:  upload,
		logger:  logger,
	}
}

func (h *PDFHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *PDFHandler) Compress(w http.ResponseWriter, r *http.Request) {
	files, ok := h.readUploads(w, r, domain.FieldFile)
	if !ok {
		return
	}
	if len(files) == 0 {
		h.respondError(w, http.StatusBadRequest, msgFileRequired, nil)
		return
	}
	if len(files) > 1 {
		h.respondError(w, http.StatusBadRequest, msgSingleFileOnly, nil)
		return
	}

	out, stats, err := h.usecase.Compress(r.Context(), files[0])
	if err != nil {
		h.handleProcessingError(w, err)
		return
	}

	statsJSON, err := json.Marshal(stats)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode stats header")
		h.respondError(w, http.StatusInternalServerError, msgSomethingWrong, nil)
		return
	}

	w.Header().Set("X-PDF-Stats", string(statsJSON))
	h.respondPDF(w, domain.OpCompress, "compressed", out)
}

func (h *PDFHandler) Merge(w http.ResponseWriter, r *http.Request) {
	files, ok := h.readUploads(w, r, domain.FieldFiles)
	if !ok {
		return
	}
	if len(files) < 2 {
		h.respondError(w, http.StatusBadRequest, msgAtLeastTwoFiles, nil)
		return
	}

	out, err := h.usecase.Merge(r.Context(), files)
	if err != nil {
		h.handleProcessingError(w, err)
		return
	}

	h.respondPDF(w, domain.OpMerge, "merged", out)
}

func (h *PDFHandler) ConvertImages(w http.ResponseWriter, r *http.Request) {
	files, ok := h.readUploads(w, r, domain.FieldImages)
	if !ok {
		return
	}
	if len(files) == 0 {
		h.respondError(w, http.StatusBadRequest, msgImagesRequired, nil)
		return
	}

	out, err := h.usecase.ConvertImages(r.Context(), files)
	if err != nil {
		h.handleProcessingError(w, err)
		return
	}

	h.respondPDF(w, domain.OpImagesToPDF, "images", out)
}

// readUploads parses the multipart form and normalizes the named field into
// an ordered slice of UploadedFile. Transport-level limits (body cap, file
// count, per-file size) are enforced here, before any validation or
// processing runs. On failure the response has already been written and the
// second return value is false.
func (h *PDFHandler) readUploads(w http.ResponseWriter, r *http.Request, field string) ([]domain.UploadedFile, bool) {
	bodyLimit := h.upload.MaxFileSize*int64(h.upload.MaxFileCount) + formOverhead
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge, nil)
			return nil, false
		}
		h.logger.Warn().Err(err).Msg("Failed to parse multipart form")
		h.respondError(w, http.StatusBadRequest, msgInvalidMultipart, nil)
		return nil, false
	}

	var headers []*multipart.FileHeader
	if r.MultipartForm != nil {
		headers = r.MultipartForm.File[field]
	}

	if len(headers) > h.upload.MaxFileCount {
		h.respondError(w, http.StatusBadRequest, msgTooManyFiles, nil)
		return nil, false
	}

	files := make([]domain.UploadedFile, 0, len(headers))
	for _, header := range headers {
		if header.Size > h.upload.MaxFileSize {
			h.respondError(w, http.StatusRequestEntityTooLarge, msgFileTooLarge, nil)
			return nil, false
		}

		data, err := h.readPart(header)
		if err != nil {
			h.logger.Error().Err(err).Str("filename", header.Filename).Msg("Failed to read uploaded file")
			h.respondError(w, http.StatusInternalServerError, msgSomethingWrong, nil)
			return nil, false
		}

		files = append(files, domain.UploadedFile{
			FieldName:   field,
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Data:        data,
		})
	}

	return files, true
}

func (h *PDFHandler) readPart(header *multipart.FileHeader) ([]byte, error) {
	part, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer part.Close()
	return io.ReadAll(part)
}

func (h *PDFHandler) handleProcessingError(w http.ResponseWriter, err error) {
	var invalidErr *domain.InvalidFileError
	var unreadableErr *domain.UnreadableFileError

	switch {
	case errors.As(err, &invalidErr):
		h.respondError(w, http.StatusBadRequest, invalidErr.Error(), nil)
	case errors.As(err, &unreadableErr):
		h.respondError(w, http.StatusBadRequest, unreadableErr.Error(), nil)
	default:
		h.logger.Error().Err(err).Msg("Processing failed")
		h.respondError(w, http.StatusInternalServerError, msgSomethingWrong, nil)
	}
}

func (h *PDFHandler) respondPDF(w http.ResponseWriter, op domain.OperationType, prefix string, body []byte) {
	filename := fmt.Sprintf("%s-%d.pdf", prefix, time.Now().UnixMilli())

	w.Header().Set("Content-Type", domain.PDFContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(body); err != nil {
		h.logger.Error().Err(err).Str("operation", string(op)).Msg("Failed to stream document")
	}
}

func (h *PDFHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Interface("data", data).Msg("Failed to encode response")
	}
}

func (h *PDFHandler) respondError(w http.ResponseWriter, status int, message string, details map[string]string) {
	h.respondJSON(w, status, dto.ErrorResponse{
		Message: message,
		Details: details,
	})
}
