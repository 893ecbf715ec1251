package health

import (
	"net/http"
	"testing"
	"time"

	"vinyl-api/internal/api/apitest"
	"vinyl-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := &clock{t: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	s := store.New(store.WithClock(c.now))

	r := gin.New()
	r.GET("/health", (&Handler{Store: s, AutoReset: true}).Health)
	r.GET("/health-manual", (&Handler{Store: s}).Health)

	c.t = c.t.Add(75 * time.Minute)
	w := apitest.Do(t, r, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := apitest.Decode[Response](t, w)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "2024-05-01T10:00:00Z", resp.StartedAt)
	assert.EqualValues(t, 75*60, resp.UptimeSeconds)
	require.NotNil(t, resp.NextResetInSeconds)
	assert.EqualValues(t, 45*60, *resp.NextResetInSeconds)

	require.NoError(t, s.Reset(nil))
	w = apitest.Do(t, r, http.MethodGet, "/health", nil, "")
	assert.EqualValues(t, 45*60, *apitest.Decode[Response](t, w).NextResetInSeconds)

	w = apitest.Do(t, r, http.MethodGet, "/health-manual", nil, "")
	manual := apitest.Decode[Response](t, w)
	assert.False(t, manual.AutoReset)
	assert.Nil(t, manual.NextResetInSeconds)
}
