// Package langcookie persists the visitor's language choice and cookie
// consent. Values are plain enumerated strings; anything unexpected is
// discarded and cleared.
package langcookie

import (
	"time"

	"github.com/gin-gonic/gin"
)

const (
	LangCookie    = "tph_lang"
	ConsentCookie = "tph_cookie_consent"

	ConsentAccepted = "accepted"
	ConsentRejected = "rejected"
)

type Codec struct {
	Secure bool
}

func New(secure bool) *Codec {
	return &Codec{Secure: secure}
}

// Lang returns the stored language tag ("en" or "ur"). Unknown values
// clear the cookie and report absence.
func (c *Codec) Lang(ctx *gin.Context) (string, bool) {
	v, err := ctx.Cookie(LangCookie)
	if err != nil || v == "" {
		return "", false
	}
	if v != "en" && v != "ur" {
		c.clear(ctx, LangCookie)
		return "", false
	}
	return v, true
}

// SetLang stores the language choice for six months. The cookie is
// readable by the client application, which mirrors it into its own
// state on load.
func (c *Codec) SetLang(ctx *gin.Context, lang string) {
	maxAge := int((180 * 24 * time.Hour).Seconds())
	ctx.SetSameSite(2) // Lax
	ctx.SetCookie(LangCookie, lang, maxAge, "/", "", c.Secure, false)
}

// Consent returns the stored consent decision.
func (c *Codec) Consent(ctx *gin.Context) (string, bool) {
	v, err := ctx.Cookie(ConsentCookie)
	if err != nil || v == "" {
		return "", false
	}
	if v != ConsentAccepted && v != ConsentRejected {
		c.clear(ctx, ConsentCookie)
		return "", false
	}
	return v, true
}

// SetConsent stores the consent decision for a year.
func (c *Codec) SetConsent(ctx *gin.Context, decision string) {
	maxAge := int((365 * 24 * time.Hour).Seconds())
	ctx.SetSameSite(2) // Lax
	ctx.SetCookie(ConsentCookie, decision, maxAge, "/", "", c.Secure, false)
}

func (c *Codec) clear(ctx *gin.Context, name string) {
	ctx.SetSameSite(2) // Lax
	ctx.SetCookie(name, "", -1, "/", "", c.Secure, false)
}
