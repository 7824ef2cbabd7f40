package entity

import (
	"fmt"

	"github.com/playlabs/tictactoe-arcade/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Mark is the value of a single board cell. A game uses two distinct
// non-empty marks, one per player; MarkEmpty means the cell was never played.
type Mark string

const MarkEmpty Mark = ""

// Board is a 3x3 grid flattened row-major: index = row*3 + col.
type Board [9]Mark

// WinLines - the 8 winning lines: rows, columns, then both diagonals.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// LastMove records the most recent accepted move; the transport uses it
// to announce the computer's cell.
type LastMove struct {
	By   Mark `json:"by"`
	Cell int  `json:"cell"`
}

type Game struct {
	ID       string    `json:"id"`
	Board    Board     `json:"board"`
	Marks    [2]Mark   `json:"marks"`
	Turn     Mark      `json:"player_turn,omitempty"`
	Winner   Mark      `json:"winner,omitempty"`
	Tie      bool      `json:"tie,omitempty"`
	Status   string    `json:"status"`
	Players  []*Player `json:"players,omitempty"`
	LastMove *LastMove `json:"last_move,omitempty"`
}

// NewGame - creates an ongoing game between the two given marks,
// with first moving first. The caller decides first via its random source.
func NewGame(id string, marks [2]Mark, first Mark) *Game {
	return &Game{
		ID:     id,
		Marks:  marks,
		Turn:   first,
		Status: StatusOngoing,
	}
}

// Outcome - derives the game result from the board alone: the winning mark
// if any line holds three identical non-empty marks, plus whether the game
// is over. A full board with no winning line is over with no winner: a tie.
// The tie is signalled out of band so that any mark, however unusual, can
// win a game.
func (that *Game) Outcome() (Mark, bool) {
	for _, line := range WinLines {
		a, b, c := that.Board[line[0]], that.Board[line[1]], that.Board[line[2]]
		if a != MarkEmpty && a == b && b == c {
			return a, true
		}
	}

	for _, cell := range that.Board {
		if cell == MarkEmpty {
			return MarkEmpty, false
		}
	}

	return MarkEmpty, true
}

// MakeTurn - applies one move for the given mark. Cells are write-once: an
// occupied cell or a finished game rejects the move and leaves state untouched.
func (that *Game) MakeTurn(mark Mark, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != MarkEmpty {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = mark
	that.LastMove = &LastMove{By: mark, Cell: cell}
	that.updateState(mark)

	return nil
}

// updateState - re-evaluates terminal conditions after an accepted move.
// Finished is absorbing: Turn is cleared so no further mark matches it.
func (that *Game) updateState(mover Mark) {
	winner, finished := that.Outcome()
	if !finished {
		that.Turn = that.OtherMark(mover)
		return
	}

	that.Winner = winner
	that.Tie = winner == MarkEmpty
	that.Status = StatusFinished
	that.Turn = MarkEmpty
}

// OtherMark - returns the opponent of the given mark within this game.
func (that *Game) OtherMark(mark Mark) Mark {
	if mark == that.Marks[0] {
		return that.Marks[1]
	}
	return that.Marks[0]
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsTie() bool {
	return that.Tie
}

// BotPlayer - returns the heuristic-driven player, or nil if none is attached.
func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}
	return nil
}

// HumanPlayer - returns the human player, or nil if none is attached.
func (that *Game) HumanPlayer() *Player {
	for _, player := range that.Players {
		if !player.IsBot() {
			return player
		}
	}
	return nil
}
