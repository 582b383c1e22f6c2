package assist

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kendea1221/Hiromap/internal/recommend"
	"github.com/kendea1221/Hiromap/internal/session"
	"github.com/kendea1221/Hiromap/internal/spot"
	"github.com/kendea1221/Hiromap/internal/stream"
)

const greeting = "広島へようこそ。今の滞在時間はどれくらいですか？"

// Service keeps the conversation log and turns user input into
// recommendation replies. New messages are broadcast to the current
// session's live feed.
type Service struct {
	mu       sync.RWMutex
	engine   *recommend.Engine
	snapshot *recommend.Snapshot
	sessions *session.Service
	hub      *stream.Hub
	messages []Message
}

func NewService(engine *recommend.Engine, snapshot *recommend.Snapshot, sessions *session.Service, hub *stream.Hub) *Service {
	s := &Service{
		engine:   engine,
		snapshot: snapshot,
		sessions: sessions,
		hub:      hub,
	}
	s.messages = append(s.messages, Message{
		ID:        uuid.NewString(),
		Role:      RoleAI,
		Text:      greeting,
		CreatedAt: time.Now(),
	})
	return s
}

// HandleInput records the user's message and answers it with a
// shortlist for the stated time budget under the current ambient
// condition. Blank input is ignored.
func (s *Service) HandleInput(text string) (Message, bool) {
	trimmed := spot.TrimText(text)
	if trimmed == "" {
		return Message{}, false
	}

	suggestion := s.engine.Suggest(trimmed, s.snapshot.Get())
	reply := Message{
		ID:        uuid.NewString(),
		Role:      RoleAI,
		Text:      suggestion.Rationale,
		Proposals: suggestion.Spots,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.messages = append(s.messages,
		Message{ID: uuid.NewString(), Role: RoleUser, Text: trimmed, CreatedAt: time.Now()},
		reply,
	)
	s.mu.Unlock()

	s.broadcast(reply)
	return reply, true
}

// Notice appends an AI-side status line, e.g. after a mutating action.
func (s *Service) Notice(text string) Message {
	msg := Message{
		ID:        uuid.NewString(),
		Role:      RoleAI,
		Text:      text,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	s.broadcast(msg)
	return msg
}

// Messages returns the conversation log in order.
func (s *Service) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Message{}, s.messages...)
}

// Share builds the payload for the sharing collaborator.
func (s *Service) Share(sp spot.Spot, baseURL string) ShareLink {
	return ShareLink{
		Title: sp.Name,
		Text:  sp.Name + " - Hiromapで見つけたスポット！",
		URL:   baseURL + "?spot=" + sp.ID,
	}
}

func (s *Service) broadcast(msg Message) {
	if s.hub == nil {
		return
	}
	username := s.sessions.Current()
	if username == "" {
		return
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	s.hub.Broadcast(username, payload)
}
