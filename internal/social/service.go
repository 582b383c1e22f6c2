package social

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kendea1221/Hiromap/internal/session"
	"github.com/kendea1221/Hiromap/internal/spot"
)

const maxCommentRunes = 100

// Service mutates the social annotations of spots on behalf of the
// current session user. Every operation is a silent no-op without an
// active session or when the target id is unknown; effective mutations
// are mirrored to the store by the registry.
type Service struct {
	reg      *spot.Registry
	sessions *session.Service
}

func NewService(reg *spot.Registry, sessions *session.Service) *Service {
	return &Service{reg: reg, sessions: sessions}
}

// ToggleFavorite flips the current user's membership in the spot's
// favorite set.
func (s *Service) ToggleFavorite(ctx context.Context, spotID string) bool {
	username := s.sessions.Current()
	if username == "" {
		return false
	}
	return s.reg.Mutate(ctx, spotID, func(sp *spot.Spot) bool {
		sp.Favorites = spot.Toggle(sp.Favorites, username)
		return true
	})
}

// ToggleVisited flips the current user's membership in the spot's
// visited set.
func (s *Service) ToggleVisited(ctx context.Context, spotID string) bool {
	username := s.sessions.Current()
	if username == "" {
		return false
	}
	return s.reg.Mutate(ctx, spotID, func(sp *spot.Spot) bool {
		sp.Visited = spot.Toggle(sp.Visited, username)
		return true
	})
}

// Rate upserts the current user's rating. Score must already be
// validated to 1-5 by the caller.
func (s *Service) Rate(ctx context.Context, spotID string, score int) bool {
	username := s.sessions.Current()
	if username == "" {
		return false
	}
	return s.reg.Mutate(ctx, spotID, func(sp *spot.Spot) bool {
		for i := range sp.Ratings {
			if sp.Ratings[i].UserID == username {
				sp.Ratings[i].Score = score
				return true
			}
		}
		sp.Ratings = append(sp.Ratings, spot.Rating{UserID: username, Score: score})
		return true
	})
}

// AddComment appends a comment with the current timestamp. Text is
// trimmed and truncated to 100 characters; empty-after-trim text is
// rejected.
func (s *Service) AddComment(ctx context.Context, spotID, text, photo string) (spot.Comment, bool) {
	username := s.sessions.Current()
	if username == "" {
		return spot.Comment{}, false
	}
	trimmed := spot.TruncateRunes(text, maxCommentRunes)
	if trimmed == "" {
		return spot.Comment{}, false
	}
	comment := spot.Comment{
		ID:        uuid.NewString(),
		Username:  username,
		Text:      trimmed,
		CreatedAt: time.Now(),
		Photo:     photo,
		Likes:     []string{},
		Replies:   []spot.Reply{},
	}
	ok := s.reg.Mutate(ctx, spotID, func(sp *spot.Spot) bool {
		sp.Comments = append(sp.Comments, comment)
		return true
	})
	if !ok {
		return spot.Comment{}, false
	}
	return comment, true
}

// ToggleCommentLike flips the current user's membership in a comment's
// like set.
func (s *Service) ToggleCommentLike(ctx context.Context, spotID, commentID string) bool {
	username := s.sessions.Current()
	if username == "" {
		return false
	}
	return s.reg.Mutate(ctx, spotID, func(sp *spot.Spot) bool {
		c := sp.FindComment(commentID)
		if c == nil {
			return false
		}
		c.Likes = spot.Toggle(c.Likes, username)
		return true
	})
}

// AddReply appends a reply to a comment. Replies only require
// non-empty text; they carry no length cap.
func (s *Service) AddReply(ctx context.Context, spotID, commentID, text string) (spot.Reply, bool) {
	username := s.sessions.Current()
	if username == "" {
		return spot.Reply{}, false
	}
	trimmed := spot.TrimText(text)
	if trimmed == "" {
		return spot.Reply{}, false
	}
	reply := spot.Reply{
		ID:        uuid.NewString(),
		Username:  username,
		Text:      trimmed,
		CreatedAt: time.Now(),
	}
	ok := s.reg.Mutate(ctx, spotID, func(sp *spot.Spot) bool {
		c := sp.FindComment(commentID)
		if c == nil {
			return false
		}
		c.Replies = append(c.Replies, reply)
		return true
	})
	if !ok {
		return spot.Reply{}, false
	}
	return reply, true
}
