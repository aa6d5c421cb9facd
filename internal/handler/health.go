package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health is the hosting liveness probe. Fixed "ok", always 200 — it reports
// that the process is up, not that the store is reachable.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	}
}
