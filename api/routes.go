package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/handlers/v1/category"
	"github.com/carson-networks/expense-server/internal/handlers/v1/expense"
	"github.com/carson-networks/expense-server/internal/handlers/v1/status"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

const shutdownTimeout = 15 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

type Rest struct {
	Logger     *logrus.Logger
	Port       string
	Service    *service.Service
	Storage    pinger
	Verifier   *auth.Verifier
	CookieName string
}

// Handler builds the mux with every route registered behind the logging and
// auth middleware.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	config := huma.DefaultConfig("Expense Server", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		auth.SchemeName: auth.SecurityScheme(),
	}
	api := humago.New(mux, config)

	api.UseMiddleware(logging.Middleware(r.Logger))
	api.UseMiddleware(auth.Middleware(api, r.Verifier, r.CookieName))

	status.NewHandler(r.Storage).Register(api)

	expense.NewListExpensesHandler(r.Service.Expense).Register(api)
	expense.NewCreateExpenseHandler(r.Service.Expense).Register(api)
	expense.NewGetExpenseHandler(r.Service.Expense).Register(api)
	expense.NewUpdateExpenseHandler(r.Service.Expense).Register(api)
	expense.NewDeleteExpenseHandler(r.Service.Expense).Register(api)

	category.NewListCategoriesHandler(r.Service.Category).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then shuts the server down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
	return err
}
