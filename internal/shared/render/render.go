package render

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded view templates. Embedding keeps rendering
// independent of the process working directory.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// Install sets the embedded templates on the gin engine.
func Install(engine *gin.Engine) {
	engine.SetHTMLTemplate(Templates())
}

// NotFound renders the fixed not-found view. Terminal fallback for every
// unmatched route; must always succeed.
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{
		"pageTitle": "404 Page Not Found",
		"path":      "/404",
	})
}

// BadRequest renders a client-error page for rejected input.
func BadRequest(c *gin.Context, message string) {
	errorPage(c, http.StatusBadRequest, message)
}

// ServerError renders the persistence-failure page. Every handler failure
// branch must answer the request; a logged-and-dropped error is a defect.
func ServerError(c *gin.Context, message string) {
	errorPage(c, http.StatusInternalServerError, message)
}

// ServiceUnavailable renders the page used when a required collaborator
// (e.g. the resolved actor) is missing.
func ServiceUnavailable(c *gin.Context, message string) {
	errorPage(c, http.StatusServiceUnavailable, message)
}

func errorPage(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"pageTitle": http.StatusText(status),
		"path":      "/error",
		"status":    status,
		"message":   message,
	})
}
