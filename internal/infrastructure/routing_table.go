package infrastructure

import (
	"net/http"

	"github.com/krispingal/eyego/internal/domain"
)

// Route variants
const (
	VariantAll  = "all"
	VariantAPI  = "api"
	VariantTest = "test"
)

const (
	greeting     = "Hello Eyego"
	testGreeting = "Hello Eyego Test"
)

// RoutingTable is built once at startup and never mutated afterwards
type RoutingTable struct {
	routes []domain.Route
	index  map[string]domain.Route // keyed by "METHOD path"
}

// NewRoutingTable builds the table for a route variant. Unknown variants serve every route.
func NewRoutingTable(variant string) *RoutingTable {
	routes := []domain.Route{domain.NewRoute(http.MethodGet, "/", greeting)}
	if variant != VariantTest {
		routes = append(routes, domain.NewRoute(http.MethodGet, "/api", greeting))
	}
	if variant != VariantAPI {
		routes = append(routes, domain.NewRoute(http.MethodGet, "/test", testGreeting))
	}

	index := make(map[string]domain.Route, len(routes))
	for _, route := range routes {
		index[routeKey(route.Method, route.Path)] = route
	}
	return &RoutingTable{routes: routes, index: index}
}

// Routes returns a copy of the registered routes in registration order
func (rt *RoutingTable) Routes() []domain.Route {
	routes := make([]domain.Route, len(rt.routes))
	copy(routes, rt.routes)
	return routes
}

func (rt *RoutingTable) Lookup(method, path string) (domain.Route, bool) {
	route, ok := rt.index[routeKey(method, path)]
	return route, ok
}

func routeKey(method, path string) string {
	return method + " " + path
}
