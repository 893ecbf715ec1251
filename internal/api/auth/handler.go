package auth

import (
	"net/http"
	"strings"

	"vinyl-api/config"
	"vinyl-api/internal/api/respond"
	"vinyl-api/internal/domain/users"
	"vinyl-api/internal/infra/token"
	"vinyl-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) error
}

type Handler struct {
	Store  *store.Store
	Hasher PasswordHasher
	Tokens token.Issuer
	Logger *logrus.Logger
}

type tokenResponse struct {
	Token string     `json:"token"`
	User  users.User `json:"user"`
}

// NormalizeEmail is the form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (h *Handler) Register(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Validation(c, err)
		return
	}

	email := NormalizeEmail(input.Email)
	if _, exists := h.Store.FindUserByEmail(email); exists {
		respond.Conflict(c, "email already registered")
		return
	}

	hashed, err := h.Hasher.Hash(input.Password)
	if err != nil {
		config.LogError(h.Logger, "auth", "Register", "hash password", nil, err)
		respond.Error(c, err)
		return
	}

	user, err := h.Store.CreateUser(store.NewUser{
		Email:        email,
		PasswordHash: hashed,
		Role:         users.RoleCustomer,
		Active:       true,
	})
	if err != nil {
		respond.Error(c, err)
		return
	}
	h.issue(c, http.StatusCreated, user)
}

func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Validation(c, err)
		return
	}

	user, ok := h.Store.FindUserByEmail(NormalizeEmail(input.Email))
	if !ok || h.Hasher.Verify(user.PasswordHash, input.Password) != nil {
		respond.Fail(c, http.StatusUnauthorized, respond.KindUnauthorized, "Invalid credentials")
		return
	}
	if !user.Active {
		respond.Fail(c, http.StatusForbidden, respond.KindForbidden, "Account is disabled")
		return
	}
	h.issue(c, http.StatusOK, user)
}

func (h *Handler) issue(c *gin.Context, status int, user users.User) {
	tok, err := h.Tokens.Issue(user)
	if err != nil {
		config.LogError(h.Logger, "auth", "issue", "sign token", gin.H{"user_id": user.ID}, err)
		respond.Error(c, err)
		return
	}
	c.JSON(status, tokenResponse{Token: tok, User: user})
}
