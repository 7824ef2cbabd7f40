package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/playlabs/tictactoe-arcade/internal/apperror"
	"github.com/playlabs/tictactoe-arcade/internal/usecase"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleConnect")

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	var playerID string
	if payloadReq.Player != nil {
		playerID = payloadReq.Player.ID
	}

	player, err := that.gameUseCase.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		log.Error("failed to create or get player", "error", err)

		return that.sendErrorResponse(bufrw, msg.Action, "failed to create a new player")
	}

	payloadResp := Payload{
		Player: player,
	}

	if player.GameID != "" {
		game, err := that.gameUseCase.GetGameByPlayerID(ctx, player.ID)
		if err == nil {
			payloadResp.Game = game
			payloadResp.StatusLine, payloadResp.MoveLine = presentGame(game)
		}
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected player", "playerID", player.ID)

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleNewGame")

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Player is required")
	}

	game, err := that.gameUseCase.StartGame(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to start game", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to start a new game")
	}

	statusLine, moveLine := presentGame(game)
	payloadResp := Payload{
		Player:     game.HumanPlayer(),
		Game:       game,
		StatusLine: statusLine,
		MoveLine:   moveLine,
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("game started", "gameID", game.ID, "first_turn", string(game.Turn))

	return nil
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleGameTurn")

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Player is required")
	}

	if payloadReq.Cell == nil {
		log.Error("Cell is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Cell is required")
	}

	log = log.With("playerID", payloadReq.Player.ID)

	game, err := that.gameUseCase.ApplyTurn(ctx, payloadReq.Player.ID, *payloadReq.Cell)

	// An invalid click never changes state; the client treats the error
	// payload as a no-op and keeps waiting for a valid one.
	if isRejectedMove(err) {
		log.Info("move rejected", "cell", *payloadReq.Cell, "reason", err)
		return that.sendErrorResponse(bufrw, msg.Action, err.Error())
	}

	if err != nil {
		log.Error("failed to make turn", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, fmt.Sprintf("failed to turn in game: %v", err))
	}

	statusLine, moveLine := presentGame(game)
	payloadResp := Payload{
		Player:     game.HumanPlayer(),
		Game:       game,
		StatusLine: statusLine,
		MoveLine:   moveLine,
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("player made a turn", "gameID", game.ID, "status", game.Status)

	return nil
}

func (that *Server) handleGameLeave(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleGameLeave")

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Player is required")
	}

	game, err := that.gameUseCase.GetGameByPlayerID(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to find game", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "game doesn't exist")
	}

	that.gameUseCase.EndGame(ctx, game)

	// leaving is signalled by the response action; the entity status only
	// ever carries ongoing or finished
	payloadResp := Payload{
		Player:     game.HumanPlayer(),
		Game:       game,
		StatusLine: "You left the game.",
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("player left game", "gameID", game.ID)

	return nil
}

// isRejectedMove - true for the move validation failures that leave the game
// untouched, as opposed to infrastructure errors.
func isRejectedMove(err error) bool {
	return errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrNotYourTurn) ||
		errors.Is(err, apperror.ErrGameFinished) ||
		errors.Is(err, usecase.ErrNotInGame)
}

func (that *Server) sendErrorResponse(bufrw *bufio.ReadWriter, action, errorMsg string) error {
	payload := Payload{Error: errorMsg}
	if err := that.sendMessage(bufrw, action, payload); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
