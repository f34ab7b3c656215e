package httphandler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/krispingal/eyego/internal/domain"
)

// NewAccessLogMiddleware logs one line per request once the response is
// written, tagging whether the request hit a route of the table.
func NewAccessLogMiddleware(table domain.RoutingTable, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			method, path := routedRequest(r)
			_, registered := table.Lookup(method, path)
			logger.Info("Request served",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Bool("registered", registered),
				zap.Int("status", status),
				zap.Int("bytes", ww.BytesWritten()),
				zap.String("remote_addr", r.RemoteAddr),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// routedRequest returns the method and path chi matched against, which differ
// from the raw request after StripSlashes or GetHead rewrote them.
func routedRequest(r *http.Request) (string, string) {
	method, path := r.Method, r.URL.Path
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if rctx.RouteMethod != "" {
			method = rctx.RouteMethod
		}
		if rctx.RoutePath != "" {
			path = rctx.RoutePath
		}
	}
	return method, path
}
