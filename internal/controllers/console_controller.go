package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pedroShimpa/retro-inventory/internal/models"
	"github.com/pedroShimpa/retro-inventory/internal/repositories"
	"github.com/pedroShimpa/retro-inventory/internal/services"
)

const consoleNotFound = "console not found"

type ConsoleController struct {
	Inventory *services.InventoryService
}

func (cc *ConsoleController) List(c *gin.Context) {
	consoles, err := cc.Inventory.ListConsoles(c.Request.Context())
	if err != nil {
		respondError(c, err, consoleNotFound)
		return
	}
	c.JSON(http.StatusOK, consoles)
}

func (cc *ConsoleController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	console, err := cc.Inventory.GetConsole(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, consoleNotFound)
		return
	}
	c.JSON(http.StatusOK, console)
}

// Games lists the games that belong to a console.
func (cc *ConsoleController) Games(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	games, err := cc.Inventory.ListConsoleGames(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, consoleNotFound)
		return
	}
	c.JSON(http.StatusOK, games)
}

func (cc *ConsoleController) Create(c *gin.Context) {
	var req models.ConsoleCreate
	if !bindJSON(c, &req) {
		return
	}

	console, err := cc.Inventory.CreateConsole(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repositories.ErrConstraint) {
			c.JSON(http.StatusConflict, gin.H{"error": "a console with this name already exists"})
			return
		}
		respondError(c, err, consoleNotFound)
		return
	}
	c.JSON(http.StatusCreated, console)
}

func (cc *ConsoleController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.ConsoleCreate
	if !bindJSON(c, &req) {
		return
	}

	console, err := cc.Inventory.UpdateConsole(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, repositories.ErrConstraint) {
			c.JSON(http.StatusConflict, gin.H{"error": "a console with this name already exists"})
			return
		}
		respondError(c, err, consoleNotFound)
		return
	}
	c.JSON(http.StatusOK, console)
}

// Delete removes a console and responds with its last state. Consoles that
// still have games are refused with 409.
func (cc *ConsoleController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	console, err := cc.Inventory.DeleteConsole(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, consoleNotFound)
		return
	}
	c.JSON(http.StatusOK, console)
}
