package frontend

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register mounts the frontend on the gin engine: the index page at /
// and the remaining static assets under /static.
func Register(r *gin.Engine) error {
	sub, err := StaticFS()
	if err != nil {
		return err
	}

	// http.FileServer redirects explicit index.html requests, so the
	// index page is served from bytes read at startup.
	index, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		return err
	}

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	r.StaticFS("/static", http.FS(sub))

	return nil
}
