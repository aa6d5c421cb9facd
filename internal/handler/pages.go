package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PagesHandler serves the server-rendered screens. Template content is
// presentation glue; everything interesting happens in the gate and the
// JSON actions.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler { return &PagesHandler{} }

func (h *PagesHandler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *PagesHandler) Panel(c *gin.Context) {
	c.HTML(http.StatusOK, "panel.html", gin.H{})
}

func (h *PagesHandler) Receta(c *gin.Context) {
	c.HTML(http.StatusOK, "receta.html", gin.H{})
}

func (h *PagesHandler) Movimientos(c *gin.Context) {
	c.HTML(http.StatusOK, "movimientos.html", gin.H{})
}

func (h *PagesHandler) Hoy(c *gin.Context) {
	c.HTML(http.StatusOK, "hoy.html", gin.H{})
}
