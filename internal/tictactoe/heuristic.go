// Package tictactoe holds the computer opponent's move selection. It is a
// fixed-priority rule list, not a search: it can be beaten, and that is the
// intended strength of the opponent.
package tictactoe

import (
	"github.com/playlabs/tictactoe-arcade/internal/apperror"
	"github.com/playlabs/tictactoe-arcade/internal/entity"
)

var (
	corners = [4]int{0, 2, 6, 8}
	sides   = [4]int{1, 3, 5, 7}
)

const center = 4

// ChooseMove - picks a cell for self by trying five rules in strict priority
// order and taking the first that yields one:
//
//  1. complete an own line and win now,
//  2. take the cell the opponent needs to win next turn,
//  3. first free corner of 0, 2, 6, 8,
//  4. the center,
//  5. first free side of 1, 3, 5, 7.
//
// A full board returns ErrNoAvailableMoves; callers only ask while the game
// is ongoing, so hitting it means the caller skipped the outcome check.
func ChooseMove(board entity.Board, self, opponent entity.Mark) (int, error) {
	if cell := findWinningMove(board, self, opponent); cell >= 0 {
		return cell, nil
	}

	if cell := findWinningMove(board, opponent, self); cell >= 0 {
		return cell, nil
	}

	for _, cell := range corners {
		if board[cell] == entity.MarkEmpty {
			return cell, nil
		}
	}

	if board[center] == entity.MarkEmpty {
		return center, nil
	}

	for _, cell := range sides {
		if board[cell] == entity.MarkEmpty {
			return cell, nil
		}
	}

	return -1, apperror.ErrNoAvailableMoves
}

// findWinningMove - returns the cell that completes a line for mark, or -1.
// Scan order: rows top to bottom, columns left to right, the top-left
// diagonal, the top-right diagonal.
//
// The third-cell predicate is "not the opponent's mark" rather than "empty".
// For the win search the two are equivalent on a live board, but when this
// scan is reused for the block rule it can skip a block in rare layouts.
// That asymmetry is inherited behavior and is kept as is.
func findWinningMove(board entity.Board, mark, other entity.Mark) int {
	for i := 0; i < 3; i++ {
		if board[i*3] == mark {
			if board[i*3+1] == mark && board[i*3+2] != other {
				return i*3 + 2
			}
			if board[i*3+2] == mark && board[i*3+1] != other {
				return i*3 + 1
			}
		}
		if board[i*3] != other {
			if board[i*3+1] == mark && board[i*3+2] == mark {
				return i * 3
			}
		}
	}

	for i := 0; i < 3; i++ {
		if board[i] == mark {
			if board[3+i] == mark && board[6+i] != other {
				return 6 + i
			}
			if board[6+i] == mark && board[3+i] != other {
				return 3 + i
			}
		}
		if board[i] != other {
			if board[3+i] == mark && board[6+i] == mark {
				return i
			}
		}
	}

	if board[0] == mark {
		if board[4] == mark && board[8] != other {
			return 8
		}
		if board[8] == mark && board[4] != other {
			return 4
		}
	}
	if board[0] != other {
		if board[4] == mark && board[8] == mark {
			return 0
		}
	}

	if board[2] == mark {
		if board[4] == mark && board[6] != other {
			return 6
		}
		if board[6] == mark && board[4] != other {
			return 4
		}
	}
	if board[2] != other {
		if board[4] == mark && board[6] == mark {
			return 2
		}
	}

	return -1
}
