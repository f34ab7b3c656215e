package httphandler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/krispingal/eyego/internal/domain"
)

// NewRouter registers every route of the table on a chi router. Bodies are
// encoded once here, so handlers only copy bytes.
func NewRouter(table domain.RoutingTable, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.StripSlashes)
	r.Use(NewAccessLogMiddleware(table, logger))
	r.Use(middleware.GetHead)

	for _, route := range table.Routes() {
		body, err := json.Marshal(route.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode body for %s %s: %w", route.Method, route.Path, err)
		}
		r.Method(route.Method, route.Path, staticJSON(body))
		logger.Debug("Registered route", zap.String("method", route.Method), zap.String("path", route.Path))
	}
	return r, nil
}

func staticJSON(body []byte) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})
}
