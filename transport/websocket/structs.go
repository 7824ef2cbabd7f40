package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/playlabs/tictactoe-arcade/internal/entity"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload - the body of every message in both directions. StatusLine and
// MoveLine are the two text lines the client renders under the grid.
type Payload struct {
	Player     *entity.Player `json:"player,omitempty"`
	Game       *entity.Game   `json:"game,omitempty"`
	Cell       *int           `json:"cell,omitempty"`
	StatusLine string         `json:"status_line,omitempty"`
	MoveLine   string         `json:"move_line,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// presentGame - renders the two status lines for the human player's view.
func presentGame(game *entity.Game) (statusLine, moveLine string) {
	human := game.HumanPlayer()
	if human == nil {
		return "", ""
	}

	if game.LastMove != nil && game.LastMove.By != human.Mark {
		moveLine = fmt.Sprintf("Computer's move is %d.", game.LastMove.Cell)
	}

	if game.IsFinished() {
		switch {
		case game.IsTie():
			statusLine = "Game ended with a tie."
		case game.Winner == human.Mark:
			statusLine = "You won!"
		default:
			statusLine = "You lost!"
		}

		return statusLine, moveLine
	}

	if game.Turn == human.Mark {
		statusLine = "It's your turn."
	} else {
		statusLine = "It's computer's turn."
	}

	return statusLine, moveLine
}
