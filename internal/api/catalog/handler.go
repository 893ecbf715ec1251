package catalog

import (
	"fmt"
	"net/http"

	"vinyl-api/internal/api/respond"
	"vinyl-api/internal/domain/catalog"
	"vinyl-api/internal/store"
	"vinyl-api/internal/types"

	"github.com/gin-gonic/gin"
)

// Resource serves one of the named catalog collections. Artists, genres and
// labels only differ in which store methods back them.
type Resource[T any] struct {
	entity string
	create func(name string) (T, bool, error)
	get    func(id int) (T, bool)
	list   func(nameContains string) []T
	update func(id int, p store.NamePatch) (T, error)
	remove func(id int) error
	inUse  func(id int) bool
}

type Handler struct {
	Artists Resource[catalog.Artist]
	Genres  Resource[catalog.Genre]
	Labels  Resource[catalog.Label]
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{
		Artists: Resource[catalog.Artist]{
			entity: "artist",
			create: s.CreateArtist, get: s.GetArtist, list: s.ListArtists,
			update: s.UpdateArtist, remove: s.DeleteArtist, inUse: s.ArtistHasVinyls,
		},
		Genres: Resource[catalog.Genre]{
			entity: "genre",
			create: s.CreateGenre, get: s.GetGenre, list: s.ListGenres,
			update: s.UpdateGenre, remove: s.DeleteGenre, inUse: s.GenreHasVinyls,
		},
		Labels: Resource[catalog.Label]{
			entity: "label",
			create: s.CreateLabel, get: s.GetLabel, list: s.ListLabels,
			update: s.UpdateLabel, remove: s.DeleteLabel, inUse: s.LabelHasVinyls,
		},
	}
}

func (r Resource[T]) List(c *gin.Context) {
	c.JSON(http.StatusOK, r.list(c.Query("name")))
}

func (r Resource[T]) Get(c *gin.Context) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}
	row, found := r.get(id)
	if !found {
		respond.NotFound(c, r.entity, id)
		return
	}
	c.JSON(http.StatusOK, row)
}

// Create answers 201 for a new record and 200 with the existing one when
// the name is already taken ignoring case.
func (r Resource[T]) Create(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required,notblank,max=200"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Validation(c, err)
		return
	}
	row, created, err := r.create(input.Name)
	if err != nil {
		respond.Error(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, row)
}

func (r Resource[T]) Update(c *gin.Context) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}
	var input struct {
		Name types.Optional[string] `json:"name" binding:"omitempty,notblank,max=200"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.Validation(c, err)
		return
	}
	row, err := r.update(id, store.NamePatch{Name: input.Name})
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (r Resource[T]) Delete(c *gin.Context) {
	id, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}
	if _, found := r.get(id); !found {
		respond.NotFound(c, r.entity, id)
		return
	}
	if r.inUse(id) {
		respond.Conflict(c, fmt.Sprintf("cannot delete %s with associated vinyls", r.entity))
		return
	}
	if err := r.remove(id); err != nil {
		respond.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
