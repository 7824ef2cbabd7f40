package entity

const (
	KindHuman = "human"
	KindBot   = "bot"
)

type Player struct {
	ID     string `json:"id"`
	Mark   Mark   `json:"mark,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Color  string `json:"color,omitempty"`
	GameID string `json:"game_id,omitempty"`
}

func (that *Player) IsBot() bool {
	return that.Kind == KindBot
}
