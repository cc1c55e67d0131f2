package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmanager/internal/adapter/http/web"
)

func registerFrontend(r *gin.Engine) {
	files := http.FS(web.Files)
	// "/" resolves to the directory index; naming index.html directly makes
	// http.FileServer redirect back to "/".
	r.GET("/", func(c *gin.Context) {
		c.FileFromFS("/", files)
	})
	r.StaticFileFS("/app.js", "app.js", files)
	r.StaticFileFS("/styles.css", "styles.css", files)
}
