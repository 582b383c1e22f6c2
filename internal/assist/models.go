package assist

import (
	"time"

	"github.com/kendea1221/Hiromap/internal/spot"
)

type Role string

const (
	RoleAI   Role = "ai"
	RoleUser Role = "user"
)

// Message is one entry in the conversation log. AI replies may carry
// spot proposals the presentation layer renders as shortcuts.
type Message struct {
	ID        string      `json:"id"`
	Role      Role        `json:"role"`
	Text      string      `json:"text"`
	Proposals []spot.Spot `json:"proposals,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// ShareLink is the payload handed to the sharing collaborator; the
// clipboard fallback uses URL alone.
type ShareLink struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}
