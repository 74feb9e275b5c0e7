package langcookie

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ctxWithCookie(name, value string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if name != "" {
		c.Request.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	return c, w
}

func TestLangRoundTrip(t *testing.T) {
	codec := New(false)

	c, w := ctxWithCookie("", "")
	codec.SetLang(c, "ur")
	setCookie := strings.Join(w.Header().Values("Set-Cookie"), ";")
	assert.Contains(t, setCookie, LangCookie+"=ur")
	assert.Contains(t, setCookie, "SameSite=Lax")

	c, _ = ctxWithCookie(LangCookie, "ur")
	v, ok := codec.Lang(c)
	require.True(t, ok)
	assert.Equal(t, "ur", v)
}

func TestLangRejectsUnknownValue(t *testing.T) {
	codec := New(false)
	c, w := ctxWithCookie(LangCookie, "de")
	_, ok := codec.Lang(c)
	assert.False(t, ok)
	// The bogus cookie gets cleared.
	assert.Contains(t, strings.Join(w.Header().Values("Set-Cookie"), ";"), LangCookie+"=;")
}

func TestConsent(t *testing.T) {
	codec := New(false)

	c, _ := ctxWithCookie(ConsentCookie, ConsentRejected)
	v, ok := codec.Consent(c)
	require.True(t, ok)
	assert.Equal(t, ConsentRejected, v)

	c, _ = ctxWithCookie(ConsentCookie, "maybe")
	_, ok = codec.Consent(c)
	assert.False(t, ok)

	c, _ = ctxWithCookie("", "")
	_, ok = codec.Consent(c)
	assert.False(t, ok)
}
