package domain

// Message is the JSON body served by every static route
type Message struct {
	Message string `json:"message"`
}

type Route struct {
	Method string
	Path   string
	Body   Message
}

func NewRoute(method, path, message string) Route {
	return Route{
		Method: method,
		Path:   path,
		Body:   Message{Message: message},
	}
}
