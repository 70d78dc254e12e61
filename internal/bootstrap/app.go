package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-insights/internal/analyses"
	"resume-insights/internal/industry"
	"resume-insights/internal/shared/config"
	"resume-insights/internal/shared/server"
	"resume-insights/internal/shared/storage/object"
	localstore "resume-insights/internal/shared/storage/object/local"
	s3store "resume-insights/internal/shared/storage/object/s3"
	"resume-insights/internal/shared/telemetry"
)

const shutdownTimeout = 15 * time.Second

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	Store           object.ObjectStore
	Classifier      *industry.Classifier
	AnalysesService *analyses.Service
}

// Build prepares the classifier, document store, service and router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}

	classifier, err := BuildClassifier(cfg.IndustryTablePath)
	if err != nil {
		return nil, err
	}
	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc := &analyses.Service{
		Pipeline:         analyses.NewPipeline(classifier),
		Store:            store,
		ExtractTimeout:   cfg.ExtractTimeout,
		MaxDocumentBytes: cfg.MaxUploadBytes,
		ValidateOutput:   cfg.ValidateOutput,
	}
	return &App{
		Config:          cfg,
		Router:          server.NewRouter(cfg, svc),
		Store:           store,
		Classifier:      classifier,
		AnalysesService: svc,
	}, nil
}

// BuildClassifier loads the signature table from path, or uses the built-in
// table when path is empty.
func BuildClassifier(path string) (*industry.Classifier, error) {
	if strings.TrimSpace(path) == "" {
		return industry.Default(), nil
	}
	table, err := industry.LoadTable(path)
	if err != nil {
		return nil, fmt.Errorf("load industry table: %w", err)
	}
	c, err := industry.NewClassifier(table)
	if err != nil {
		return nil, fmt.Errorf("build classifier: %w", err)
	}
	telemetry.Info("bootstrap.industry_table", map[string]any{
		"path":       path,
		"industries": len(table.Industries),
	})
	return c, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			return nil, fmt.Errorf("build s3 store: %w", err)
		}
		return store, nil
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

// Serve runs the HTTP server until ctx is canceled, then drains in-flight
// requests.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              server.Addr(a.Config.Port),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		telemetry.Info("server.start", map[string]any{
			"addr":         srv.Addr,
			"env":          a.Config.Env,
			"object_store": a.Config.ObjectStoreType,
		})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	telemetry.Info("server.shutdown", map[string]any{"addr": srv.Addr})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
