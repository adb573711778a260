package httpserver

import "net/http"

// Controller registers its handlers on the shared router.
type Controller interface {
	AddRoutes(*http.ServeMux)
}
