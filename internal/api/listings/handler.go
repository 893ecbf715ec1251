package listings

import (
	"net/http"
	"strconv"
	"strings"

	"vinyl-api/internal/api/respond"
	"vinyl-api/internal/domain/market"
	"vinyl-api/internal/store"
	"vinyl-api/internal/types"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Handler struct {
	Store *store.Store
}

// FilterFromQuery reads the status, vinylId, artist and label filters.
func FilterFromQuery(c *gin.Context) (store.ListingFilter, bool) {
	f := store.ListingFilter{
		Status: market.ListingStatus(strings.ToUpper(strings.TrimSpace(c.Query("status")))),
		Artist: c.Query("artist"),
		Label:  c.Query("label"),
	}
	if f.Status != "" && !f.Status.Valid() {
		respond.Fail(c, http.StatusBadRequest, respond.KindValidation, "status must be one of DRAFT, PUBLISHED, ARCHIVED")
		return f, false
	}
	if raw := strings.TrimSpace(c.Query("vinylId")); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			respond.Fail(c, http.StatusBadRequest, respond.KindValidation, "vinylId must be an integer")
			return f, false
		}
		f.VinylID = &id
	}
	return f, true
}

func (h *Handler) ListV1(c *gin.Context) {
	f, ok := FilterFromQuery(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, BuildV1List(h.Store.ListingDetails(f)))
}

func (h *Handler) GetV1(c *gin.Context) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}
	d, found := h.Store.ListingDetail(id)
	if !found {
		respond.NotFound(c, "listing", id)
		return
	}
	c.JSON(http.StatusOK, BuildV1(d))
}

func (h *Handler) ListV2(c *gin.Context) {
	f, ok := FilterFromQuery(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, BuildV2List(h.Store.ListingDetails(f)))
}

func (h *Handler) GetV2(c *gin.Context) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}
	d, found := h.Store.ListingDetail(id)
	if !found {
		respond.NotFound(c, "listing", id)
		return
	}
	l, complete := BuildV2(d)
	if !complete {
		respond.NotFound(c, "listing", id)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *Handler) Create(c *gin.Context) {
	var input struct {
		VinylID      int                  `json:"vinylId" binding:"required,gt=0"`
		Status       market.ListingStatus `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
		Price        decimal.Decimal      `json:"price" binding:"required,gt=0"`
		Currency     string               `json:"currency" binding:"omitempty,len=3,alpha"`
		InitialStock int                  `json:"initialStock" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Validation(c, err)
		return
	}

	l, _, err := h.Store.CreateListing(store.NewListing{
		VinylID:      input.VinylID,
		Status:       input.Status,
		Price:        input.Price,
		Currency:     input.Currency,
		InitialStock: input.InitialStock,
	})
	if err != nil {
		respond.Error(c, err)
		return
	}
	h.writeV1(c, http.StatusCreated, l.ID)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}
	var input struct {
		VinylID  types.Optional[int]                  `json:"vinylId" binding:"omitempty,gt=0"`
		Status   types.Optional[market.ListingStatus] `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
		Price    types.Optional[decimal.Decimal]      `json:"price" binding:"omitempty,gt=0"`
		Currency types.Optional[string]               `json:"currency" binding:"omitempty,len=3,alpha"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Validation(c, err)
		return
	}

	if _, err := h.Store.UpdateListing(id, store.ListingPatch{
		VinylID:  input.VinylID,
		Status:   input.Status,
		Price:    input.Price,
		Currency: input.Currency,
	}); err != nil {
		respond.Error(c, err)
		return
	}
	h.writeV1(c, http.StatusOK, id)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.Store.DeleteListing(id); err != nil {
		respond.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetInventory(c *gin.Context) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}
	inv, found := h.Store.InventoryForListing(id)
	if !found {
		respond.NotFound(c, "listing", id)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// UpdateInventory answers 409 when the result would reserve more than the
// total.
func (h *Handler) UpdateInventory(c *gin.Context) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}
	var input struct {
		TotalQuantity    types.Optional[int] `json:"totalQuantity" binding:"omitempty,gte=0"`
		ReservedQuantity types.Optional[int] `json:"reservedQuantity" binding:"omitempty,gte=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Validation(c, err)
		return
	}

	inv, found := h.Store.InventoryForListing(id)
	if !found {
		respond.NotFound(c, "listing", id)
		return
	}
	updated, err := h.Store.UpdateInventory(inv.ID, store.InventoryPatch{
		TotalQuantity:    input.TotalQuantity,
		ReservedQuantity: input.ReservedQuantity,
	})
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) writeV1(c *gin.Context, status int, id int) {
	d, found := h.Store.ListingDetail(id)
	if !found {
		respond.NotFound(c, "listing", id)
		return
	}
	c.JSON(status, BuildV1(d))
}
