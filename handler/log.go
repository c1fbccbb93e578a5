package handler

import (
	"github.com/gin-gonic/gin"
)

func logRequest(c *gin.Context, status int) {
	log.Infof("%s -- %s -- %s -- %d", c.ClientIP(), c.Request.Method, c.Request.URL.Path, status)
}

// logAndReturnError reports a transport-level problem. Nothing was decoded
// on this path, so the kind is the generic one, not the decode-failure
// kind; the body still goes out as an envelope so callers never see a bare
// error page.
func logAndReturnError(c *gin.Context, message string, code int) {
	log.Errorln(message)
	c.JSON(code, ResponseBody{
		Success: false,
		Error:   "Unexpected error",
		Message: message,
	})
}
