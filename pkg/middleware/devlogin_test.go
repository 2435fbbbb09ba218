package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWith(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	var got string
	h := DevLogin()(func(c echo.Context) error {
		got, _ = c.Get("uid").(string)
		return c.NoContent(http.StatusOK)
	})
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec, got
}

func TestDevLoginCookieWins(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "KC_UID", Value: "farmer_7"})
	_, uid := runWith(t, req)
	assert.Equal(t, "farmer_7", uid)
}

func TestDevLoginQueryParamSetsCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?uid=farmer_9", nil)
	rec, uid := runWith(t, req)
	assert.Equal(t, "farmer_9", uid)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "KC_UID", cookies[0].Name)
	assert.Equal(t, "farmer_9", cookies[0].Value)
}

func TestDevLoginDefaultsToDemoUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, uid := runWith(t, req)
	assert.Equal(t, "demo_user", uid)
}
