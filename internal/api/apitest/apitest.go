// Package apitest holds the fixtures shared by the handler tests.
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vinyl-api/internal/api/respond"
	"vinyl-api/internal/domain/catalog"
	"vinyl-api/internal/domain/users"
	"vinyl-api/internal/infra/password"
	"vinyl-api/internal/infra/token"
	"vinyl-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const Secret = "test-secret"

// Env is a store with one active user per role (admin=1, staff=2,
// customer=3, all with password "secret123").
type Env struct {
	Store  *store.Store
	Tokens *token.HMAC
	Hasher password.Hasher
	Logger *logrus.Logger
	Users  map[users.Role]users.User
}

func NewEnv(t *testing.T) *Env {
	t.Helper()
	gin.SetMode(gin.TestMode)
	respond.RegisterValidators()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	e := &Env{
		Store:  store.New(),
		Tokens: token.NewHMAC(Secret, time.Hour),
		Hasher: password.Hasher{Cost: bcrypt.MinCost},
		Logger: logger,
		Users:  map[users.Role]users.User{},
	}
	hash, err := e.Hasher.Hash("secret123")
	require.NoError(t, err)
	for _, role := range []users.Role{users.RoleAdmin, users.RoleStaff, users.RoleCustomer} {
		u, err := e.Store.CreateUser(store.NewUser{
			Email:        strings.ToLower(string(role)) + "@example.com",
			PasswordHash: hash,
			Role:         role,
			Active:       true,
		})
		require.NoError(t, err)
		e.Users[role] = u
	}
	return e
}

// Token returns a bearer token for the seeded user with role.
func (e *Env) Token(t *testing.T, role users.Role) string {
	t.Helper()
	tok, err := e.Tokens.Issue(e.Users[role])
	require.NoError(t, err)
	return tok
}

// Catalog is a small linked catalog: one vinyl with a label, two artists and
// one genre.
type Catalog struct {
	Artists []catalog.Artist
	Genre   catalog.Genre
	Label   catalog.Label
	Vinyl   catalog.Vinyl
}

func (e *Env) SeedCatalog(t *testing.T) Catalog {
	t.Helper()
	a1, _, err := e.Store.CreateArtist("Boards of Canada")
	require.NoError(t, err)
	a2, _, err := e.Store.CreateArtist("Aphex Twin")
	require.NoError(t, err)
	g, _, err := e.Store.CreateGenre("Electronic")
	require.NoError(t, err)
	l, _, err := e.Store.CreateLabel("Warp")
	require.NoError(t, err)
	v, err := e.Store.CreateVinyl(store.NewVinyl{
		Title:           "Music Has the Right to Children",
		ArtistIDs:       []int{a1.ID},
		LabelID:         l.ID,
		GenreIDs:        []int{g.ID},
		Year:            1998,
		ConditionMedia:  catalog.ConditionNearMint,
		ConditionSleeve: catalog.ConditionVeryGoodPlus,
	})
	require.NoError(t, err)
	return Catalog{Artists: []catalog.Artist{a1, a2}, Genre: g, Label: l, Vinyl: v}
}

// Do sends a request to h. A non-nil body is JSON-encoded unless it is
// already a string.
func Do(t *testing.T, h http.Handler, method, path string, body any, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		buf, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, r)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func Decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// Error is the JSON error body.
type Error struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}
