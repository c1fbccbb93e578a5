package handler

import (
	"io"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the HTTP front door. It forwards raw request bodies into
// the handler and writes the envelope's body back with the envelope's
// status code, adding nothing of its own. CORS is wide open, the same
// policy the endpoint shipped with.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	router.POST("/", h.serveInvoke)
	router.POST("/invoke", h.serveInvoke)

	return router
}

// serveInvoke bridges one HTTP request to one Handle call.
func (h *Handler) serveInvoke(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logAndReturnError(c, "unable to read request body: "+err.Error(), http.StatusInternalServerError)
		return
	}

	resp := h.Handle(c.Request.Context(), raw)
	c.JSON(resp.StatusCode, resp.Body)
	logRequest(c, resp.StatusCode)
}
