package addresses

import (
	"net/http"

	"vinyl-api/internal/api/respond"
	"vinyl-api/internal/app/http/middleware"
	"vinyl-api/internal/domain/users"
	"vinyl-api/internal/store"
	"vinyl-api/internal/types"

	"github.com/gin-gonic/gin"
)

// Handler serves the signed-in user's own addresses. Addresses of other
// users answer 404, never 403.
type Handler struct {
	Store *store.Store
}

func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.ListAddresses(middleware.UserID(c)))
}

func (h *Handler) Create(c *gin.Context) {
	var input struct {
		Type       users.AddressType `json:"type" binding:"required,oneof=SHIPPING BILLING"`
		FullName   string            `json:"fullName" binding:"required,notblank"`
		Street     string            `json:"street" binding:"required,notblank"`
		City       string            `json:"city" binding:"required,notblank"`
		PostalCode string            `json:"postalCode" binding:"required,notblank"`
		Country    string            `json:"country" binding:"required,notblank"`
		IsDefault  bool              `json:"isDefault"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Validation(c, err)
		return
	}

	a, err := h.Store.CreateAddress(store.NewAddress{
		UserID:     middleware.UserID(c),
		Type:       input.Type,
		FullName:   input.FullName,
		Street:     input.Street,
		City:       input.City,
		PostalCode: input.PostalCode,
		Country:    input.Country,
		IsDefault:  input.IsDefault,
	})
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.owned(c)
	if !ok {
		return
	}
	var input struct {
		Type       types.Optional[users.AddressType] `json:"type" binding:"omitempty,oneof=SHIPPING BILLING"`
		FullName   types.Optional[string]            `json:"fullName" binding:"omitempty,notblank"`
		Street     types.Optional[string]            `json:"street" binding:"omitempty,notblank"`
		City       types.Optional[string]            `json:"city" binding:"omitempty,notblank"`
		PostalCode types.Optional[string]            `json:"postalCode" binding:"omitempty,notblank"`
		Country    types.Optional[string]            `json:"country" binding:"omitempty,notblank"`
		IsDefault  types.Optional[bool]              `json:"isDefault"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Validation(c, err)
		return
	}

	a, err := h.Store.UpdateAddress(id, store.AddressPatch{
		Type:       input.Type,
		FullName:   input.FullName,
		Street:     input.Street,
		City:       input.City,
		PostalCode: input.PostalCode,
		Country:    input.Country,
		IsDefault:  input.IsDefault,
	})
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.owned(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteAddress(id); err != nil {
		respond.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// owned resolves :id to an address of the current user.
func (h *Handler) owned(c *gin.Context) (int, bool) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return 0, false
	}
	a, found := h.Store.GetAddress(id)
	if !found || a.UserID != middleware.UserID(c) {
		respond.NotFound(c, "address", id)
		return 0, false
	}
	return id, true
}
