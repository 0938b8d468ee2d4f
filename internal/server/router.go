package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Routes is implemented by every module controller.
type Routes interface {
	RegisterRoutes(r chi.Router)
}

type Mounts struct {
	Products      Routes
	Selection     Routes
	Orders        Routes
	Notifications Routes
}

func NewRouter(mounts Mounts, observer RequestObserver, metricsHandler http.Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(Observe(observer, logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Route("/products", mounts.Products.RegisterRoutes)
	r.Route("/selection", mounts.Selection.RegisterRoutes)
	r.Route("/orders", mounts.Orders.RegisterRoutes)
	r.Route("/notifications", mounts.Notifications.RegisterRoutes)

	return r
}
