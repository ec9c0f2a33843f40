package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pedroShimpa/retro-inventory/internal/models"
	"github.com/pedroShimpa/retro-inventory/internal/repositories"
	"github.com/pedroShimpa/retro-inventory/internal/services"
)

const gameNotFound = "game not found"

type GameController struct {
	Inventory *services.InventoryService
}

func (gc *GameController) List(c *gin.Context) {
	games, err := gc.Inventory.ListGames(c.Request.Context())
	if err != nil {
		respondError(c, err, gameNotFound)
		return
	}
	c.JSON(http.StatusOK, games)
}

func (gc *GameController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	game, err := gc.Inventory.GetGame(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, gameNotFound)
		return
	}
	c.JSON(http.StatusOK, game)
}

func (gc *GameController) Create(c *gin.Context) {
	var req models.GameCreate
	if !bindJSON(c, &req) {
		return
	}

	game, err := gc.Inventory.CreateGame(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repositories.ErrConstraint) {
			c.JSON(http.StatusConflict, gin.H{"error": "console_id does not reference an existing console"})
			return
		}
		respondError(c, err, gameNotFound)
		return
	}
	c.JSON(http.StatusCreated, game)
}

// Update replaces every field of the game with the request body.
func (gc *GameController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.GameCreate
	if !bindJSON(c, &req) {
		return
	}

	game, err := gc.Inventory.UpdateGame(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, repositories.ErrConstraint) {
			c.JSON(http.StatusConflict, gin.H{"error": "console_id does not reference an existing console"})
			return
		}
		respondError(c, err, gameNotFound)
		return
	}
	c.JSON(http.StatusOK, game)
}

func (gc *GameController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := gc.Inventory.DeleteGame(c.Request.Context(), id); err != nil {
		respondError(c, err, gameNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
