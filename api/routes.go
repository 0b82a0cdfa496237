package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ninebudget/ninebudget/internal/handlers/v1/account"
	"github.com/ninebudget/ninebudget/internal/handlers/v1/budget"
	"github.com/ninebudget/ninebudget/internal/handlers/v1/status"
	"github.com/ninebudget/ninebudget/internal/logging"
	"github.com/ninebudget/ninebudget/internal/service"
)

const shutdownTimeout = 15 * time.Second

type Rest struct {
	Logger         *logrus.Logger
	Port           string
	AllowedOrigins []string
	Service        *service.Service
	Database       status.Pinger
}

// Router builds the gin engine with the status endpoints and the huma API mounted.
func (r *Rest) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	if len(r.AllowedOrigins) > 0 {
		engine.Use(cors.New(cors.Config{
			AllowOrigins:     r.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Accept", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"X-Next-Page"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	statusHandler := status.NewHandler(r.Database)
	statusFunc := gin.WrapF(logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	engine.Any("/status", statusFunc)
	engine.Any("/api/status", statusFunc)

	config := huma.DefaultConfig("ninebudget API", "1.0.0")
	config.Info.Description = "Accounts, budgets and budget transactions."
	config.OpenAPIPath = "/api/openapi"
	config.DocsPath = "/api/docs"
	config.SchemasPath = "/api/schemas"
	api := humagin.New(engine, config)
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	account.RegisterAll(api, r.Service.Account)
	budget.RegisterAll(api, r.Service.Budget)

	return engine
}

// Serve listens until ctx is cancelled, then shuts the server down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
