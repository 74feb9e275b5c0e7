package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/mrghanchi007/tph-live-r2/internal/content"
	"github.com/mrghanchi007/tph-live-r2/internal/http/langcookie"
)

const CtxKeyLang = "lang"

// Lang resolves the active language for the request: explicit ?lang=
// query first, then the language cookie, then English. A query value
// also refreshes the cookie so the choice sticks.
func Lang(cookies *langcookie.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang content.Lang
		if q := c.Query("lang"); q != "" {
			lang = content.ParseLang(q)
			cookies.SetLang(c, string(lang))
		} else if v, ok := cookies.Lang(c); ok {
			lang = content.ParseLang(v)
		} else {
			lang = content.English
		}

		c.Set(CtxKeyLang, string(lang))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if v, ok := c.Get(CtxKeyLang); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// RequestLang returns the resolved language, defaulting to English when
// the middleware did not run.
func RequestLang(c *gin.Context) content.Lang {
	return content.ParseLang(GetLang(c))
}
