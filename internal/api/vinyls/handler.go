package vinyls

import (
	"net/http"
	"strconv"
	"strings"

	"vinyl-api/internal/api/respond"
	"vinyl-api/internal/store"
	"vinyl-api/internal/types"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store *store.Store
}

// FilterFromQuery reads the year, artist, label, genre and title filters.
func FilterFromQuery(c *gin.Context) (store.VinylFilter, bool) {
	f := store.VinylFilter{
		Artist: c.Query("artist"),
		Label:  c.Query("label"),
		Genre:  c.Query("genre"),
		Title:  c.Query("title"),
	}
	if raw := strings.TrimSpace(c.Query("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			respond.Fail(c, http.StatusBadRequest, respond.KindValidation, "year must be an integer")
			return f, false
		}
		f.Year = &year
	}
	return f, true
}

func (h *Handler) ListV1(c *gin.Context) {
	f, ok := FilterFromQuery(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, BuildV1List(h.Store.VinylDetails(f)))
}

// GetV1 returns the flat record even when it has no artist or genre left,
// so staff can see and relink it. Only v2 hides incomplete vinyls.
func (h *Handler) GetV1(c *gin.Context) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}
	d, found := h.Store.VinylDetail(id)
	if !found {
		respond.NotFound(c, "vinyl", id)
		return
	}
	c.JSON(http.StatusOK, BuildV1(d))
}

func (h *Handler) ListV2(c *gin.Context) {
	f, ok := FilterFromQuery(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, BuildV2List(h.Store.VinylDetails(f)))
}

func (h *Handler) GetV2(c *gin.Context) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}
	d, found := h.Store.VinylDetail(id)
	if !found {
		respond.NotFound(c, "vinyl", id)
		return
	}
	v, complete := BuildV2(d)
	if !complete {
		respond.NotFound(c, "vinyl", id)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) Create(c *gin.Context) {
	var input struct {
		Title           string `json:"title" binding:"required,notblank,max=300"`
		ArtistIDs       []int  `json:"artistIds" binding:"required,min=1,dive,gt=0"`
		LabelID         int    `json:"labelId" binding:"required,gt=0"`
		GenreIDs        []int  `json:"genreIds" binding:"required,min=1,dive,gt=0"`
		Year            int    `json:"year" binding:"required,gte=1900,lte=2100"`
		ConditionMedia  string `json:"conditionMedia" binding:"required,oneof=M NM VG+ VG G+ G F P"`
		ConditionSleeve string `json:"conditionSleeve" binding:"required,oneof=M NM VG+ VG G+ G F P"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Validation(c, err)
		return
	}

	v, err := h.Store.CreateVinyl(store.NewVinyl{
		Title:           input.Title,
		ArtistIDs:       input.ArtistIDs,
		LabelID:         input.LabelID,
		GenreIDs:        input.GenreIDs,
		Year:            input.Year,
		ConditionMedia:  input.ConditionMedia,
		ConditionSleeve: input.ConditionSleeve,
	})
	if err != nil {
		respond.Error(c, err)
		return
	}
	h.writeV1(c, http.StatusCreated, v.ID)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}
	var input struct {
		Title           types.Optional[string] `json:"title" binding:"omitempty,notblank,max=300"`
		ArtistIDs       types.Optional[[]int]  `json:"artistIds"`
		LabelID         types.Optional[int]    `json:"labelId" binding:"omitempty,gt=0"`
		GenreIDs        types.Optional[[]int]  `json:"genreIds"`
		Year            types.Optional[int]    `json:"year" binding:"omitempty,gte=1900,lte=2100"`
		ConditionMedia  types.Optional[string] `json:"conditionMedia" binding:"omitempty,oneof=M NM VG+ VG G+ G F P"`
		ConditionSleeve types.Optional[string] `json:"conditionSleeve" binding:"omitempty,oneof=M NM VG+ VG G+ G F P"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Validation(c, err)
		return
	}

	v, err := h.Store.UpdateVinyl(id, store.VinylPatch{
		Title:           input.Title,
		ArtistIDs:       input.ArtistIDs,
		LabelID:         input.LabelID,
		GenreIDs:        input.GenreIDs,
		Year:            input.Year,
		ConditionMedia:  input.ConditionMedia,
		ConditionSleeve: input.ConditionSleeve,
	})
	if err != nil {
		respond.Error(c, err)
		return
	}
	h.writeV1(c, http.StatusOK, v.ID)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}
	if _, found := h.Store.GetVinyl(id); !found {
		respond.NotFound(c, "vinyl", id)
		return
	}
	if h.Store.VinylHasListings(id) {
		respond.Conflict(c, "cannot delete vinyl with associated listings")
		return
	}
	if err := h.Store.DeleteVinyl(id); err != nil {
		respond.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) LinkArtist(c *gin.Context) {
	h.link(c, "artistId", h.Store.LinkVinylArtist)
}

func (h *Handler) UnlinkArtist(c *gin.Context) {
	h.unlink(c, "artistId", h.Store.UnlinkVinylArtist)
}

func (h *Handler) LinkGenre(c *gin.Context) {
	h.link(c, "genreId", h.Store.LinkVinylGenre)
}

func (h *Handler) UnlinkGenre(c *gin.Context) {
	h.unlink(c, "genreId", h.Store.UnlinkVinylGenre)
}

func (h *Handler) link(c *gin.Context, param string, fn func(vinylID, refID int) error) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}
	ref, ok := respond.ParamID(c, param)
	if !ok {
		return
	}
	if err := fn(id, ref); err != nil {
		respond.Error(c, err)
		return
	}
	h.writeV1(c, http.StatusOK, id)
}

func (h *Handler) unlink(c *gin.Context, param string, fn func(vinylID, refID int) error) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}
	ref, ok := respond.ParamID(c, param)
	if !ok {
		return
	}
	if err := fn(id, ref); err != nil {
		respond.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeV1(c *gin.Context, status int, id int) {
	d, found := h.Store.VinylDetail(id)
	if !found {
		respond.NotFound(c, "vinyl", id)
		return
	}
	c.JSON(status, BuildV1(d))
}
