package routes

import (
	addressesapi "vinyl-api/internal/api/addresses"
	adminapi "vinyl-api/internal/api/admin"
	authapi "vinyl-api/internal/api/auth"
	catalogapi "vinyl-api/internal/api/catalog"
	healthapi "vinyl-api/internal/api/health"
	listingsapi "vinyl-api/internal/api/listings"
	"vinyl-api/internal/api/respond"
	usersapi "vinyl-api/internal/api/users"
	vinylsapi "vinyl-api/internal/api/vinyls"
	"vinyl-api/internal/app/http/middleware"
	"vinyl-api/internal/domain/users"
	"vinyl-api/internal/infra/password"
	"vinyl-api/internal/infra/token"
	"vinyl-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Deps struct {
	Store     *store.Store
	Loader    store.Loader
	Hasher    password.Hasher
	Tokens    *token.HMAC
	Metrics   *middleware.Metrics
	Logger    *logrus.Logger
	AutoReset bool
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	respond.RegisterValidators()

	auth := middleware.AuthMiddleware(d.Tokens, d.Store)
	staff := middleware.RequireRole(users.RoleStaff, users.RoleAdmin)
	adminOnly := middleware.RequireRole(users.RoleAdmin)

	health := &healthapi.Handler{Store: d.Store, AutoReset: d.AutoReset}
	r.GET("/health", health.Health)
	if d.Metrics != nil {
		d.Metrics.ObserveStore(d.Store)
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	// ✅ Apply input sanitization to every JSON write
	api := r.Group("/")
	api.Use(middleware.SanitizeAndCleanInputMiddleware())

	authH := &authapi.Handler{Store: d.Store, Hasher: d.Hasher, Tokens: d.Tokens, Logger: d.Logger}
	api.POST("/auth/register", authH.Register)
	api.POST("/auth/login", authH.Login)

	// Authenticated
	usersH := &usersapi.Handler{Store: d.Store, Hasher: d.Hasher, Logger: d.Logger}
	addressesH := &addressesapi.Handler{Store: d.Store}
	me := api.Group("/me", auth)
	me.GET("", usersH.GetCurrentUser)
	me.GET("/addresses", addressesH.List)
	me.POST("/addresses", addressesH.Create)
	me.PATCH("/addresses/:id", addressesH.Update)
	me.DELETE("/addresses/:id", addressesH.Delete)

	// Admin routes
	adminH := &adminapi.Handler{Store: d.Store, Loader: d.Loader, Logger: d.Logger}
	admin := api.Group("/admin", auth, adminOnly)
	admin.GET("/users", usersH.ListUsers)
	admin.POST("/users", usersH.CreateUser)
	admin.GET("/users/:id", usersH.GetUser)
	admin.PATCH("/users/:id", usersH.UpdateUser)
	admin.DELETE("/users/:id", usersH.DeleteUser)
	admin.POST("/reset", adminH.Reset)
	admin.GET("/stats", adminH.Stats)

	// v1: flat catalog
	v1 := api.Group("/v1")
	write := v1.Group("/", auth, staff)

	catalogH := catalogapi.NewHandler(d.Store)
	named := func(path string, list, get, create, update, remove gin.HandlerFunc) {
		v1.GET(path, list)
		v1.GET(path+"/:id", get)
		write.POST(path, create)
		write.PATCH(path+"/:id", update)
		write.DELETE(path+"/:id", remove)
	}
	named("/artists", catalogH.Artists.List, catalogH.Artists.Get, catalogH.Artists.Create, catalogH.Artists.Update, catalogH.Artists.Delete)
	named("/genres", catalogH.Genres.List, catalogH.Genres.Get, catalogH.Genres.Create, catalogH.Genres.Update, catalogH.Genres.Delete)
	named("/labels", catalogH.Labels.List, catalogH.Labels.Get, catalogH.Labels.Create, catalogH.Labels.Update, catalogH.Labels.Delete)

	vinylsH := &vinylsapi.Handler{Store: d.Store}
	v1.GET("/vinyls", vinylsH.ListV1)
	v1.GET("/vinyls/:id", vinylsH.GetV1)
	write.POST("/vinyls", vinylsH.Create)
	write.PATCH("/vinyls/:id", vinylsH.Update)
	write.DELETE("/vinyls/:id", vinylsH.Delete)
	write.PUT("/vinyls/:id/artists/:artistId", vinylsH.LinkArtist)
	write.DELETE("/vinyls/:id/artists/:artistId", vinylsH.UnlinkArtist)
	write.PUT("/vinyls/:id/genres/:genreId", vinylsH.LinkGenre)
	write.DELETE("/vinyls/:id/genres/:genreId", vinylsH.UnlinkGenre)

	listingsH := &listingsapi.Handler{Store: d.Store}
	v1.GET("/listings", listingsH.ListV1)
	v1.GET("/listings/:id", listingsH.GetV1)
	v1.GET("/listings/:id/inventory", listingsH.GetInventory)
	write.POST("/listings", listingsH.Create)
	write.PATCH("/listings/:id", listingsH.Update)
	write.DELETE("/listings/:id", listingsH.Delete)
	write.PATCH("/listings/:id/inventory", listingsH.UpdateInventory)

	// v2: embedded references, read only
	v2 := r.Group("/v2")
	v2.GET("/vinyls", vinylsH.ListV2)
	v2.GET("/vinyls/:id", vinylsH.GetV2)
	v2.GET("/listings", listingsH.ListV2)
	v2.GET("/listings/:id", listingsH.GetV2)
}
