package repositories

import (
	"context"

	"github.com/pedroShimpa/retro-inventory/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GameRepository struct {
	DB *gorm.DB
}

func (r *GameRepository) List(ctx context.Context) ([]models.Game, error) {
	games := []models.Game{}
	err := r.DB.WithContext(ctx).Preload("Console").Order("id ASC").Find(&games).Error
	return games, translate(err)
}

// ListByConsole returns the games of one console, or ErrNotFound if the
// console does not exist.
func (r *GameRepository) ListByConsole(ctx context.Context, consoleID uint) ([]models.Game, error) {
	db := r.DB.WithContext(ctx)

	var console models.Console
	if err := db.First(&console, consoleID).Error; err != nil {
		return nil, translate(err)
	}

	games := []models.Game{}
	err := db.Preload("Console").Where("console_id = ?", consoleID).Order("id ASC").Find(&games).Error
	return games, translate(err)
}

func (r *GameRepository) FindByID(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	if err := r.DB.WithContext(ctx).Preload("Console").First(&game, id).Error; err != nil {
		return nil, translate(err)
	}
	return &game, nil
}

// Create inserts the game and reloads it with its console.
func (r *GameRepository) Create(ctx context.Context, game *models.Game) error {
	game.ID = 0
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(game).Error; err != nil {
		return translate(err)
	}
	return r.refresh(ctx, game)
}

// Update overwrites every column of the game with the given fields.
func (r *GameRepository) Update(ctx context.Context, id uint, fields models.Game) (*models.Game, error) {
	db := r.DB.WithContext(ctx)

	var game models.Game
	if err := db.First(&game, id).Error; err != nil {
		return nil, translate(err)
	}

	game.Title = fields.Title
	game.Condition = fields.Condition
	game.HasBox = fields.HasBox
	game.HasManual = fields.HasManual
	game.ConsoleID = fields.ConsoleID

	if err := db.Omit(clause.Associations).Save(&game).Error; err != nil {
		return nil, translate(err)
	}
	if err := r.refresh(ctx, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// Delete removes the game and returns its state before deletion.
func (r *GameRepository) Delete(ctx context.Context, id uint) (*models.Game, error) {
	game, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).Delete(&models.Game{}, game.ID).Error; err != nil {
		return nil, translate(err)
	}
	return game, nil
}

func (r *GameRepository) refresh(ctx context.Context, game *models.Game) error {
	var fresh models.Game
	if err := r.DB.WithContext(ctx).Preload("Console").First(&fresh, game.ID).Error; err != nil {
		return translate(err)
	}
	*game = fresh
	return nil
}
