package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mrghanchi007/tph-live-r2/internal/http/langcookie"
	"github.com/mrghanchi007/tph-live-r2/internal/http/middleware"
	"github.com/mrghanchi007/tph-live-r2/internal/http/render"
	"github.com/mrghanchi007/tph-live-r2/internal/http/validation"
	"github.com/mrghanchi007/tph-live-r2/internal/shared/apperr"
)

// PrefsHandler persists visitor preferences in cookies.
type PrefsHandler struct {
	cookies *langcookie.Codec
}

func NewPrefsHandler(cookies *langcookie.Codec) *PrefsHandler {
	return &PrefsHandler{cookies: cookies}
}

type langRequest struct {
	Lang string `json:"lang" binding:"required,oneof=en ur"`
}

// SetLang handles POST /api/lang.
func (h *PrefsHandler) SetLang(c *gin.Context) {
	var req langRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Unsupported language.", validation.FromBindError(err, &req)))
		return
	}
	h.cookies.SetLang(c, req.Lang)
	render.OK(c, gin.H{"lang": req.Lang})
}

type consentRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accepted rejected"`
}

// SetConsent handles POST /api/consent.
func (h *PrefsHandler) SetConsent(c *gin.Context) {
	var req consentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid consent decision.", validation.FromBindError(err, &req)))
		return
	}
	h.cookies.SetConsent(c, req.Decision)
	render.OK(c, gin.H{"consent": req.Decision})
}
