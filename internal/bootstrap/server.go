package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zvrva/flightlog/api"
	"github.com/zvrva/flightlog/config"
	"github.com/zvrva/flightlog/internal/service/importer"
	"github.com/zvrva/flightlog/internal/service/stats"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, importSvc importer.UseCase, statsSvc stats.UseCase) error {
	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = int64(cfg.Import.MaxUploadMB) << 20

	v1 := router.Group("/api/v1")
	api.NewImportHandler(importSvc).Register(v1)
	api.NewStatsHandler(statsSvc).Register(v1)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
