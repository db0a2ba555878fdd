package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"orderservice/internal/api/docs"
)

const specPath = "/swagger/doc.json"

// SwaggerUIHandler serves Swagger UI and the generated spec under /swagger/.
// A non-empty host replaces the host advertised in the API docs.
func SwaggerUIHandler(host string) http.HandlerFunc {
	if host != "" {
		docs.SwaggerInfo.Host = host
	}
	return httpSwagger.Handler(
		httpSwagger.URL(specPath),
		httpSwagger.DocExpansion("list"),
	)
}

// OpenAPISpecHandler returns a handler that redirects to the swagger spec JSON
func OpenAPISpecHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, specPath, http.StatusTemporaryRedirect)
	}
}
