package analyses

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-insights/internal/document"
	"resume-insights/internal/extract"
	"resume-insights/internal/shared/server/middleware"
	"resume-insights/internal/shared/server/respond"
	"resume-insights/internal/shared/storage/object"
)

const (
	// multipartOverhead is headroom for boundaries and part headers on uploads.
	multipartOverhead = 64 << 10
	// jsonOverhead is headroom for field names and escaping in JSON bodies.
	jsonOverhead = 16 << 10
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.analyzeText)
	rg.POST("/analyses/upload", h.analyzeUpload)
	rg.POST("/analyses/from-object", h.analyzeObject)
	rg.GET("/analyses/schema", h.schema)
}

type analyzeTextRequest struct {
	document.Input
	AsOf string `json:"asOf"`
}

type analyzeObjectRequest struct {
	Key      string `json:"key"`
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	AsOf     string `json:"asOf"`
}

func (h *Handler) analyzeText(c *gin.Context) {
	var req analyzeTextRequest
	if !h.bindJSON(c, &req) {
		return
	}
	asOf, ok := parseAsOf(c, req.AsOf)
	if !ok {
		return
	}
	analysis, err := h.Svc.AnalyzeText(h.ctx(c), req.Input, asOf)
	h.finish(c, analysis, err)
}

func (h *Handler) analyzeUpload(c *gin.Context) {
	h.limitBody(c, multipartOverhead)
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.finish(c, Analysis{}, ErrTooLarge)
			return
		}
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "file is required", []map[string]string{
			{"field": "file", "issue": "missing"},
		})
		return
	}
	defer file.Close()

	asOf, ok := parseAsOf(c, c.PostForm("asOf"))
	if !ok {
		return
	}

	r := io.Reader(file)
	if limit := h.Svc.MaxDocumentBytes; limit > 0 {
		r = io.LimitReader(file, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "could not read upload", nil)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	analysis, err := h.Svc.AnalyzeDocument(h.ctx(c), data, mimeType, header.Filename, asOf)
	h.finish(c, analysis, err)
}

func (h *Handler) analyzeObject(c *gin.Context) {
	var req analyzeObjectRequest
	if !h.bindJSON(c, &req) {
		return
	}
	asOf, ok := parseAsOf(c, req.AsOf)
	if !ok {
		return
	}
	analysis, err := h.Svc.AnalyzeObject(h.ctx(c), req.Key, req.FileName, req.MimeType, asOf)
	h.finish(c, analysis, err)
}

// bindJSON decodes a size-limited JSON body into dst. It writes the error response
// itself and reports false when the body is too large or malformed.
func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	h.limitBody(c, jsonOverhead)
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		h.finish(c, Analysis{}, ErrTooLarge)
		return false
	}
	respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid JSON body", []map[string]string{
		{"field": "body", "issue": "malformed"},
	})
	return false
}

// limitBody caps the request body at MaxDocumentBytes plus overhead.
func (h *Handler) limitBody(c *gin.Context, overhead int64) {
	if limit := h.Svc.MaxDocumentBytes; limit > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+overhead)
	}
}

func (h *Handler) schema(c *gin.Context) {
	c.Data(http.StatusOK, "application/schema+json", ResultSchema())
}

func (h *Handler) ctx(c *gin.Context) context.Context {
	return WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
}

func (h *Handler) finish(c *gin.Context, analysis Analysis, err error) {
	if err != nil {
		c.Set("statusTransition", "started->failed")
		status, code, message := mapError(err)
		respond.Error(c, status, code, message, nil)
		return
	}
	c.Set("analysisId", analysis.ID)
	c.Set("statusTransition", "started->completed")
	c.Set("overallScore", analysis.Score.OverallScore)
	respond.OK(c, analysis)
}

func mapError(err error) (int, string, string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest, respond.CodeValidation, strings.TrimPrefix(err.Error(), ErrInvalidInput.Error()+": ")
	case errors.Is(err, object.ErrInvalidKey):
		return http.StatusBadRequest, respond.CodeValidation, "invalid object key"
	case errors.Is(err, extract.ErrUnsupportedType):
		return http.StatusUnsupportedMediaType, respond.CodeUnsupportedType, "unsupported document type; use PDF, DOCX or plain text"
	case errors.Is(err, ErrTooLarge):
		return http.StatusRequestEntityTooLarge, respond.CodeTooLarge, "document exceeds the upload limit"
	case errors.Is(err, object.ErrNotFound):
		return http.StatusNotFound, respond.CodeNotFound, "document not found"
	case errors.Is(err, ErrStoreNotConfigured):
		return http.StatusServiceUnavailable, respond.CodeStorage, "object store is not configured"
	default:
		return http.StatusInternalServerError, respond.CodeInternal, "failed to analyze document"
	}
}

// parseAsOf accepts an empty value (today) or a YYYY-MM-DD date. It writes the
// error response itself and reports false on a malformed date.
func parseAsOf(c *gin.Context, raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "asOf must be a YYYY-MM-DD date", []map[string]string{
			{"field": "asOf", "issue": "invalid_format"},
		})
		return time.Time{}, false
	}
	return t, true
}
