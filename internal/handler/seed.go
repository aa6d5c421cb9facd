package handler

import (
	"net/http"

	"linderopos/internal/service"

	"github.com/gin-gonic/gin"
)

type SeedHandler struct{ svc service.SeedService }

func NewSeedHandler(svc service.SeedService) *SeedHandler { return &SeedHandler{svc: svc} }

// Run executes the seed procedure and answers with a plain-text
// confirmation. Store failures go to the ErrorHandler middleware — by then
// earlier writes have already landed and are not rolled back.
func (h *SeedHandler) Run(c *gin.Context) {
	if err := h.svc.Run(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	c.String(http.StatusOK, "✅ Seed listo: settings, categorías, productos y mesas (piso1). Abre /panel")
}
