package repositories

import (
	"context"

	"github.com/pedroShimpa/retro-inventory/internal/models"
	"gorm.io/gorm"
)

type ConsoleRepository struct {
	DB *gorm.DB
}

func (r *ConsoleRepository) List(ctx context.Context) ([]models.Console, error) {
	consoles := []models.Console{}
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&consoles).Error
	return consoles, translate(err)
}

func (r *ConsoleRepository) FindByID(ctx context.Context, id uint) (*models.Console, error) {
	var console models.Console
	if err := r.DB.WithContext(ctx).First(&console, id).Error; err != nil {
		return nil, translate(err)
	}
	return &console, nil
}

func (r *ConsoleRepository) Create(ctx context.Context, console *models.Console) error {
	console.ID = 0
	return translate(r.DB.WithContext(ctx).Create(console).Error)
}

func (r *ConsoleRepository) Update(ctx context.Context, id uint, name string) (*models.Console, error) {
	db := r.DB.WithContext(ctx)

	var console models.Console
	if err := db.First(&console, id).Error; err != nil {
		return nil, translate(err)
	}

	console.Name = name
	if err := db.Save(&console).Error; err != nil {
		return nil, translate(err)
	}
	return &console, nil
}

// Delete removes a console that no game references and returns its prior
// state. Consoles with games are kept and ErrConsoleInUse is returned, also
// on stores that do not enforce foreign keys.
func (r *ConsoleRepository) Delete(ctx context.Context, id uint) (*models.Console, error) {
	var console models.Console
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&console, id).Error; err != nil {
			return err
		}

		var games int64
		if err := tx.Model(&models.Game{}).Where("console_id = ?", id).Count(&games).Error; err != nil {
			return err
		}
		if games > 0 {
			return ErrConsoleInUse
		}

		return tx.Delete(&models.Console{}, id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &console, nil
}
