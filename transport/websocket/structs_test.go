package websocket

import (
	"testing"

	"github.com/playlabs/tictactoe-arcade/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	markX = entity.Mark("X")
	markO = entity.Mark("O")
)

func newPresentedGame() *entity.Game {
	game := entity.NewGame("123", [2]entity.Mark{markX, markO}, markX)
	game.Players = []*entity.Player{
		{ID: "p1", Mark: markX, Kind: entity.KindHuman},
		{ID: "bot:123", Mark: markO, Kind: entity.KindBot},
	}

	return game
}

func TestPresentGame(t *testing.T) {
	t.Run("Announces the human's turn", func(t *testing.T) {
		// Given: an ongoing game with the human to move
		game := newPresentedGame()

		// When: rendering the status lines
		statusLine, moveLine := presentGame(game)

		// Then: the human is prompted and no move is announced
		assert.Equal(t, "It's your turn.", statusLine)
		assert.Empty(t, moveLine)
	})

	t.Run("Announces the computer's move", func(t *testing.T) {
		// Given: a game where the computer just played cell 4
		game := newPresentedGame()
		game.Turn = markO
		require.NoError(t, game.MakeTurn(markO, 4))

		// When: rendering the status lines
		statusLine, moveLine := presentGame(game)

		// Then: the move is announced and the human is prompted
		assert.Equal(t, "It's your turn.", statusLine)
		assert.Equal(t, "Computer's move is 4.", moveLine)
	})

	t.Run("Announces a human win", func(t *testing.T) {
		// Given: a finished game won by the human
		game := newPresentedGame()
		game.Status = entity.StatusFinished
		game.Winner = markX

		// When: rendering the status lines
		statusLine, _ := presentGame(game)

		// Then: the win is announced
		assert.Equal(t, "You won!", statusLine)
	})

	t.Run("Announces a human loss", func(t *testing.T) {
		// Given: a finished game won by the computer
		game := newPresentedGame()
		game.Status = entity.StatusFinished
		game.Winner = markO

		// When: rendering the status lines
		statusLine, _ := presentGame(game)

		// Then: the loss is announced
		assert.Equal(t, "You lost!", statusLine)
	})

	t.Run("Announces a tie", func(t *testing.T) {
		// Given: a finished game with no winner
		game := newPresentedGame()
		game.Status = entity.StatusFinished
		game.Tie = true

		// When: rendering the status lines
		statusLine, _ := presentGame(game)

		// Then: the tie is announced
		assert.Equal(t, "Game ended with a tie.", statusLine)
	})
}
