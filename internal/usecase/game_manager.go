package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/playlabs/tictactoe-arcade/internal/config"
	"github.com/playlabs/tictactoe-arcade/internal/entity"
	"github.com/playlabs/tictactoe-arcade/internal/pkg"
	"github.com/playlabs/tictactoe-arcade/internal/repository"
	"github.com/playlabs/tictactoe-arcade/internal/tictactoe"
)

var ErrNotInGame = errors.New("player is not in a game")

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// randSource decides which player opens a new session. Injected so tests can
// pin the coin flip; production wires math/rand.
type randSource interface {
	Intn(n int) int
}

// GameManager - owns the session lifecycle: creates players and games,
// applies human turns, and answers each of them with the computer's turn
// immediately and in the same call. There is exactly one mutator of a board,
// invoked sequentially.
type GameManager struct {
	logger *slog.Logger

	playerRepo playerRepo
	gameRepo   gameRepo
	players    config.Players
	rng        randSource
}

func NewGameManager(logger *slog.Logger, playerRepo playerRepo, gameRepo gameRepo, players config.Players, rng randSource) *GameManager {
	return &GameManager{
		logger: logger,

		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		players:    players,
		rng:        rng,
	}
}

func (that *GameManager) GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error) {
	if id == "" {
		player, err := that.createPlayer(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create new player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

// StartGame - returns the player's current game, or creates a fresh session
// against the computer. The opening player is a coin flip; when the computer
// opens, its first move is already on the board by the time this returns.
func (that *GameManager) StartGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID != "" {
		existingGame, err := that.gameRepo.GetByID(ctx, player.GameID)
		if err == nil {
			return existingGame, nil
		}

		if !errors.Is(err, repository.ErrGameNotFound) {
			return nil, fmt.Errorf("failed to get game by id: %w", err)
		}
		// a stale game reference; fall through and start over
	}

	game, err := that.createGame(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}

// ApplyTurn - applies the human's move; if the game is still going and it is
// the computer's turn, the heuristic answers before the call returns.
// Finished sessions are removed from the store.
func (that *GameManager) ApplyTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, ErrNotInGame
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.MakeTurn(player.Mark, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if bot := game.BotPlayer(); game.IsOngoing() && bot != nil && game.Turn == bot.Mark {
		if err = that.playBotTurn(game, bot); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if game.IsFinished() {
		that.cleanupGame(ctx, game)

		return game, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// EndGame - abandons the session regardless of outcome.
func (that *GameManager) EndGame(ctx context.Context, game *entity.Game) {
	that.cleanupGame(ctx, game)
}

func (that *GameManager) GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, ErrNotInGame
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

func (that *GameManager) createGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	gameID := pkg.GenerateGameID()

	player.GameID = gameID
	player.Mark = entity.Mark(that.players.Human.Mark)
	player.Color = that.players.Human.Color
	player.Kind = entity.KindHuman

	botPlayer := &entity.Player{
		ID:     "bot:" + gameID,
		Mark:   entity.Mark(that.players.Bot.Mark),
		Kind:   entity.KindBot,
		Color:  that.players.Bot.Color,
		GameID: gameID,
	}

	marks := [2]entity.Mark{player.Mark, botPlayer.Mark}
	first := marks[that.rng.Intn(2)]

	game := entity.NewGame(gameID, marks, first)
	game.Players = []*entity.Player{player, botPlayer}

	if game.Turn == botPlayer.Mark {
		if err := that.playBotTurn(game, botPlayer); err != nil {
			return nil, fmt.Errorf("bot failed to open game: %w", err)
		}
	}

	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.With("component", "game_manager").Info("game created", "gameID", gameID, "first_turn", string(first))

	return game, nil
}

func (that *GameManager) playBotTurn(game *entity.Game, bot *entity.Player) error {
	cell, err := tictactoe.ChooseMove(game.Board, bot.Mark, game.OtherMark(bot.Mark))
	if err != nil {
		return fmt.Errorf("failed to choose move: %w", err)
	}

	if err = game.MakeTurn(bot.Mark, cell); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	return nil
}

func (that *GameManager) cleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "cleanupGame")

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		player.Mark = ""
		player.GameID = ""

		if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			log.Error("failed to update player", "error", err)
		}
	}

	log.Info("game deleted", "gameID", game.ID)
}

func (that *GameManager) createPlayer(ctx context.Context) (*entity.Player, error) {
	player := &entity.Player{
		ID:   pkg.GenerateNewSessionID(),
		Kind: entity.KindHuman,
	}

	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}
