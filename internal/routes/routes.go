package routes

import (
	"github.com/pedroShimpa/retro-inventory/internal/controllers"
	"github.com/pedroShimpa/retro-inventory/internal/middleware"
	"github.com/pedroShimpa/retro-inventory/internal/repositories"
	"github.com/pedroShimpa/retro-inventory/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New builds the engine with logging, recovery and CORS for the web client
// at corsOrigin, and registers every route on it.
func New(db *gorm.DB, corsOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery(), middleware.CORS(corsOrigin))
	RegisterRoutes(r, db)
	return r
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	controllers.UseJSONFieldNames()

	inventory := &services.InventoryService{
		GameRepo:    &repositories.GameRepository{DB: db},
		ConsoleRepo: &repositories.ConsoleRepository{DB: db},
	}
	gameController := &controllers.GameController{Inventory: inventory}
	consoleController := &controllers.ConsoleController{Inventory: inventory}

	r.GET("/", controllers.Root)

	games := r.Group("/games")
	{
		games.GET("", gameController.List)
		games.POST("", gameController.Create)
		games.GET("/:id", gameController.Get)
		games.PUT("/:id", gameController.Update)
		games.DELETE("/:id", gameController.Delete)
	}

	consoles := r.Group("/consoles")
	{
		consoles.GET("", consoleController.List)
		consoles.POST("", consoleController.Create)
		consoles.GET("/:id", consoleController.Get)
		consoles.GET("/:id/games", consoleController.Games)
		consoles.PUT("/:id", consoleController.Update)
		consoles.DELETE("/:id", consoleController.Delete)
	}
}
