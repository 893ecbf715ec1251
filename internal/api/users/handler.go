package users

import (
	"net/http"

	"vinyl-api/config"
	"vinyl-api/internal/api/auth"
	"vinyl-api/internal/api/respond"
	"vinyl-api/internal/app/http/middleware"
	"vinyl-api/internal/domain/users"
	"vinyl-api/internal/store"
	"vinyl-api/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type PasswordHasher interface {
	Hash(plain string) (string, error)
}

type Handler struct {
	Store  *store.Store
	Hasher PasswordHasher
	Logger *logrus.Logger
}

func (h *Handler) GetCurrentUser(c *gin.Context) {
	id := middleware.UserID(c)
	user, ok := h.Store.GetUser(id)
	if !ok {
		// token outlived its user, e.g. across a reset
		respond.Fail(c, http.StatusUnauthorized, respond.KindUnauthorized, "User no longer exists")
		return
	}

	c.JSON(http.StatusOK, MeResponse{
		User:     BuildUserDTO(user),
		Defaults: BuildDefaultsDTO(h.Store.ListAddresses(user.ID)),
	})
}

func (h *Handler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, BuildUserDTOs(h.Store.ListUsers()))
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}
	user, found := h.Store.GetUser(id)
	if !found {
		respond.NotFound(c, "user", id)
		return
	}
	c.JSON(http.StatusOK, BuildUserDTO(user))
}

func (h *Handler) CreateUser(c *gin.Context) {
	var input struct {
		Email    string               `json:"email" binding:"required,email"`
		Password string               `json:"password" binding:"required,min=6"`
		Role     users.Role           `json:"role" binding:"omitempty,oneof=CUSTOMER STAFF ADMIN"`
		Active   types.Optional[bool] `json:"active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Validation(c, err)
		return
	}

	email := auth.NormalizeEmail(input.Email)
	if _, exists := h.Store.FindUserByEmail(email); exists {
		respond.Conflict(c, "email already registered")
		return
	}
	hashed, err := h.Hasher.Hash(input.Password)
	if err != nil {
		config.LogError(h.Logger, "users", "CreateUser", "hash password", nil, err)
		respond.Error(c, err)
		return
	}

	user, err := h.Store.CreateUser(store.NewUser{
		Email:        email,
		PasswordHash: hashed,
		Role:         input.Role,
		Active:       input.Active.Or(true),
	})
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, BuildUserDTO(user))
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}
	var input struct {
		Email    types.Optional[string]     `json:"email" binding:"omitempty,email"`
		Password types.Optional[string]     `json:"password" binding:"omitempty,min=6"`
		Role     types.Optional[users.Role] `json:"role" binding:"omitempty,oneof=CUSTOMER STAFF ADMIN"`
		Active   types.Optional[bool]       `json:"active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Validation(c, err)
		return
	}

	patch := store.UserPatch{Role: input.Role, Active: input.Active}
	if input.Email.Set {
		email := auth.NormalizeEmail(input.Email.Value)
		if other, exists := h.Store.FindUserByEmail(email); exists && other.ID != id {
			respond.Conflict(c, "email already registered")
			return
		}
		patch.Email = types.Some(email)
	}
	if input.Password.Set {
		hashed, err := h.Hasher.Hash(input.Password.Value)
		if err != nil {
			config.LogError(h.Logger, "users", "UpdateUser", "hash password", gin.H{"user_id": id}, err)
			respond.Error(c, err)
			return
		}
		patch.PasswordHash = types.Some(hashed)
	}

	user, err := h.Store.UpdateUser(id, patch)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, BuildUserDTO(user))
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}
	if id == middleware.UserID(c) {
		respond.Conflict(c, "cannot delete the account you are signed in with")
		return
	}
	if err := h.Store.DeleteUser(id); err != nil {
		respond.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
