package handler

import (
	"errors"
	"net/http"

	"linderopos/internal/apierror"
	"linderopos/internal/service"
	"linderopos/internal/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

type verifyPINRequest struct {
	Pin string `json:"pin"`
}

// VerifyPIN authenticates the cashier session from the submitted PIN.
// Format errors are 400 with the required length; a mismatch is a generic
// 401. The session is only mutated on success: cleared first, then the
// single role marker set, on a browser-session cookie.
func (h *AuthHandler) VerifyPIN(c *gin.Context) {
	var req verifyPINRequest
	// Malformed or missing JSON leaves the zero value, which fails the
	// format check below — same as the empty PIN.
	_ = c.ShouldBindJSON(&req)

	if err := h.svc.VerifyPIN(req.Pin); err != nil {
		var formatErr *service.PINFormatError
		if errors.As(err, &formatErr) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		return
	}

	sess := sessions.Default(c)
	sess.Clear()
	sess.Set(session.UserKey, session.RoleCashier)
	sess.Options(sessions.Options{Path: "/", MaxAge: 0, HttpOnly: true})
	if err := sess.Save(); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Logout clears the session and sends the browser back to the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := sess.Save(); err != nil {
		c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
