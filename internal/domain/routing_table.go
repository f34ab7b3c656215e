package domain

type RoutingTable interface {
	Routes() []Route
	Lookup(method, path string) (Route, bool)
}
