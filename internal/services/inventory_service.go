package services

import (
	"context"
	"log/slog"

	"github.com/pedroShimpa/retro-inventory/internal/models"
	"github.com/pedroShimpa/retro-inventory/internal/repositories"
)

// InventoryService turns request payloads into models and runs one
// repository operation per call.
type InventoryService struct {
	GameRepo    *repositories.GameRepository
	ConsoleRepo *repositories.ConsoleRepository
}

func (s *InventoryService) ListGames(ctx context.Context) ([]models.Game, error) {
	return s.GameRepo.List(ctx)
}

func (s *InventoryService) GetGame(ctx context.Context, id uint) (*models.Game, error) {
	return s.GameRepo.FindByID(ctx, id)
}

func (s *InventoryService) CreateGame(ctx context.Context, in models.GameCreate) (*models.Game, error) {
	game := in.Game()
	if err := s.GameRepo.Create(ctx, &game); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "game created", "id", game.ID, "console_id", game.ConsoleID)
	return &game, nil
}

func (s *InventoryService) UpdateGame(ctx context.Context, id uint, in models.GameCreate) (*models.Game, error) {
	return s.GameRepo.Update(ctx, id, in.Game())
}

func (s *InventoryService) DeleteGame(ctx context.Context, id uint) (*models.Game, error) {
	game, err := s.GameRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "game deleted", "id", game.ID)
	return game, nil
}

func (s *InventoryService) ListConsoles(ctx context.Context) ([]models.Console, error) {
	return s.ConsoleRepo.List(ctx)
}

func (s *InventoryService) GetConsole(ctx context.Context, id uint) (*models.Console, error) {
	return s.ConsoleRepo.FindByID(ctx, id)
}

func (s *InventoryService) ListConsoleGames(ctx context.Context, consoleID uint) ([]models.Game, error) {
	return s.GameRepo.ListByConsole(ctx, consoleID)
}

func (s *InventoryService) CreateConsole(ctx context.Context, in models.ConsoleCreate) (*models.Console, error) {
	console := in.Console()
	if err := s.ConsoleRepo.Create(ctx, &console); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "console created", "id", console.ID, "name", console.Name)
	return &console, nil
}

func (s *InventoryService) UpdateConsole(ctx context.Context, id uint, in models.ConsoleCreate) (*models.Console, error) {
	return s.ConsoleRepo.Update(ctx, id, in.Console().Name)
}

func (s *InventoryService) DeleteConsole(ctx context.Context, id uint) (*models.Console, error) {
	console, err := s.ConsoleRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "console deleted", "id", console.ID)
	return console, nil
}
