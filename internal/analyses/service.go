package analyses

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-insights/internal/document"
	"resume-insights/internal/extract"
	"resume-insights/internal/shared/metrics"
	"resume-insights/internal/shared/storage/object"
	"resume-insights/internal/shared/telemetry"
)

const (
	SourceText   = "text"
	SourceUpload = "upload"
	SourceObject = "object"

	defaultExtractTimeout = 10 * time.Second
)

// Service runs the pipeline for the outer surfaces: it decodes uploaded bytes,
// reads documents from the object store, and records metrics and status logs.
type Service struct {
	Pipeline         *Pipeline
	Store            object.ObjectStore
	ExtractTimeout   time.Duration
	MaxDocumentBytes int64
	ValidateOutput   bool
	Now              func() time.Time
}

// AnalyzeText runs the pipeline over already-decoded text. A zero asOf means today.
func (s *Service) AnalyzeText(ctx context.Context, in document.Input, asOf time.Time) (Analysis, error) {
	if s.MaxDocumentBytes > 0 && int64(len(in.Text)) > s.MaxDocumentBytes {
		return Analysis{}, ErrTooLarge
	}
	return s.run(ctx, SourceText, in, asOf)
}

// AnalyzeDocument decodes a PDF, DOCX or plain-text document and analyzes it.
// Decoding failures other than an unsupported type fall back to empty text so
// the result is a low-confidence templated profile rather than an error.
func (s *Service) AnalyzeDocument(ctx context.Context, data []byte, mimeType, fileName string, asOf time.Time) (Analysis, error) {
	return s.analyzeBytes(ctx, SourceUpload, data, mimeType, fileName, asOf)
}

// AnalyzeObject reads key from the configured object store and analyzes it.
func (s *Service) AnalyzeObject(ctx context.Context, key, fileName, mimeType string, asOf time.Time) (Analysis, error) {
	if s.Store == nil {
		return Analysis{}, ErrStoreNotConfigured
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return Analysis{}, fmt.Errorf("%w: key is required", ErrInvalidInput)
	}
	if fileName == "" {
		fileName = path.Base(key)
	}

	data, err := s.readObject(ctx, key)
	if err != nil {
		return Analysis{}, err
	}
	return s.analyzeBytes(ctx, SourceObject, data, mimeType, fileName, asOf)
}

func (s *Service) readObject(ctx context.Context, key string) ([]byte, error) {
	rc, err := s.Store.Open(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("open object %q: %w", key, err)
	}
	defer rc.Close()

	r := io.Reader(rc)
	if limit := s.MaxDocumentBytes; limit > 0 {
		r = io.LimitReader(rc, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read object %q: %w", key, err)
	}
	if s.MaxDocumentBytes > 0 && int64(len(data)) > s.MaxDocumentBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}

func (s *Service) analyzeBytes(ctx context.Context, source string, data []byte, mimeType, fileName string, asOf time.Time) (Analysis, error) {
	if len(data) == 0 {
		return Analysis{}, fmt.Errorf("%w: document is empty", ErrInvalidInput)
	}
	if s.MaxDocumentBytes > 0 && int64(len(data)) > s.MaxDocumentBytes {
		return Analysis{}, ErrTooLarge
	}
	in, err := s.decode(ctx, data, mimeType, fileName)
	if err != nil {
		return Analysis{}, err
	}
	return s.run(ctx, source, in, asOf)
}

type extractOutcome struct {
	doc extract.Document
	err error
}

// decode bounds extraction by ExtractTimeout.
func (s *Service) decode(ctx context.Context, data []byte, mimeType, fileName string) (document.Input, error) {
	timeout := s.ExtractTimeout
	if timeout <= 0 {
		timeout = defaultExtractTimeout
	}
	ectx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan extractOutcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- extractOutcome{err: fmt.Errorf("extract panicked: %v", r)}
			}
		}()
		doc, err := extract.FromBytes(ectx, data, mimeType, fileName)
		done <- extractOutcome{doc: doc, err: err}
	}()

	var out extractOutcome
	select {
	case out = <-done:
	case <-ectx.Done():
		out.err = ectx.Err()
	}

	switch {
	case out.err == nil:
		return document.Input{
			Text:      out.doc.Text,
			Lines:     out.doc.Lines,
			PageCount: out.doc.PageCount,
			FileName:  fileName,
		}, nil
	case errors.Is(out.err, extract.ErrUnsupportedType):
		return document.Input{}, out.err
	case ctx.Err() != nil:
		// The caller went away; there is nobody to hand a fallback to.
		return document.Input{}, ctx.Err()
	}

	telemetry.Warn("extract.fallback", map[string]any{
		"request_id": requestIDFromContext(ctx),
		"file_name":  fileName,
		"mime_type":  mimeType,
		"bytes":      len(data),
		"error":      sanitizeError(out.err),
	})
	return document.Input{FileName: fileName}, nil
}

func (s *Service) run(ctx context.Context, source string, in document.Input, asOf time.Time) (analysis Analysis, err error) {
	analysisID := uuid.NewString()
	requestID := requestIDFromContext(ctx)
	startedAt := s.now()
	if asOf.IsZero() {
		asOf = startedAt
	}
	asOf = time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)

	metrics.IncAnalysisStarted()
	telemetry.Info("analysis.status", map[string]any{
		"analysis_id":       analysisID,
		"request_id":        requestID,
		"source":            source,
		"status_transition": "started",
	})

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("analysis panicked: %v", r)
		}
		if err != nil {
			analysis = Analysis{}
			s.fail(analysisID, requestID, source, startedAt, err)
		}
	}()

	result := s.pipeline().Analyze(in, asOf)
	if s.ValidateOutput {
		if verr := ValidateResult(result); verr != nil {
			return Analysis{}, verr
		}
	}

	durationMs := elapsedMs(startedAt, s.now())
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(durationMs)
	metrics.ObserveOverallScore(result.Score.OverallScore)
	if result.LowConfidence {
		metrics.IncAnalysisLowConfidence()
	}
	telemetry.Info("analysis.status", map[string]any{
		"analysis_id":       analysisID,
		"request_id":        requestID,
		"source":            source,
		"status_transition": "started->completed",
		"overall_score":     result.Score.OverallScore,
		"industry":          result.Industry.Primary,
		"low_confidence":    result.LowConfidence,
		"templated":         result.ResumeProfile.Templated,
		"duration_ms":       durationMs,
	})

	return Analysis{
		ID:         analysisID,
		Status:     StatusCompleted,
		Source:     source,
		CreatedAt:  startedAt.UTC(),
		AsOf:       asOf.Format(time.DateOnly),
		DurationMs: durationMs,
		Result:     result,
	}, nil
}

func (s *Service) fail(analysisID, requestID, source string, startedAt time.Time, err error) {
	durationMs := elapsedMs(startedAt, s.now())
	metrics.IncAnalysisFailed()
	metrics.ObserveAnalysisDurationMs(durationMs)
	telemetry.Error("analysis.status", map[string]any{
		"analysis_id":       analysisID,
		"request_id":        requestID,
		"source":            source,
		"status_transition": "started->failed",
		"failure_reason":    classifyFailure(err),
		"error":             sanitizeError(err),
		"duration_ms":       durationMs,
	})
}

func (s *Service) pipeline() *Pipeline {
	if s.Pipeline == nil {
		return NewPipeline(nil)
	}
	return s.Pipeline
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func elapsedMs(start, end time.Time) float64 {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}
	return float64(d.Microseconds()) / 1000.0
}

func classifyFailure(err error) string {
	switch {
	case errors.Is(err, ErrInvalidOutput):
		return "invalid_output"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "canceled"
	case strings.Contains(err.Error(), "panicked"):
		return "panic"
	default:
		return "internal"
	}
}

// sanitizeError keeps log lines short and on one line.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if len(msg) > 300 {
		msg = msg[:300]
	}
	return msg
}
