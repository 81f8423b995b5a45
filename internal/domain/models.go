package domain

import (
	"encoding/json"
	"time"
)

// Session represents a conversation session.
type Session struct {
	SessionID string          `json:"session_id"`
	UserID    string          `json:"user_id"`
	CreatedAt time.Time       `json:"created_at"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
}

// Message represents a single message in a session.
type Message struct {
	MessageID string          `json:"message_id"`
	SessionID string          `json:"session_id"`
	Role      string          `json:"role"` // user, assistant
	Content   string          `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
}

// Event represents a conversation trace event for replay and audit.
type Event struct {
	EventID   string          `json:"event_id"`
	SessionID string          `json:"session_id"`
	Ts        int64           `json:"ts"` // Unix milliseconds
	Type      EventType       `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// Project is a single portfolio project entry.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// Experience is a single work-experience entry. All four fields are populated
// before the entry is accepted.
type Experience struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// PortfolioDraft is the in-progress record accumulated across a conversation.
// The conversation session owns the draft exclusively until it is committed.
type PortfolioDraft struct {
	Title       string              `json:"title,omitempty"`
	Bio         string              `json:"bio"`
	Skills      []string            `json:"skills"`
	Projects    []Project           `json:"projects"`
	Experience  []Experience        `json:"experience"`
	SocialLinks map[Platform]string `json:"social_links"`
}

// NewPortfolioDraft returns an empty draft with initialized collections.
func NewPortfolioDraft() PortfolioDraft {
	return PortfolioDraft{
		Skills:      []string{},
		Projects:    []Project{},
		Experience:  []Experience{},
		SocialLinks: make(map[Platform]string),
	}
}

// Portfolio is a committed portfolio record. All platforms in PlatformOrder
// are present in SocialLinks at commit time.
type Portfolio struct {
	PortfolioID string              `json:"portfolio_id"`
	UserID      string              `json:"user_id"`
	Title       string              `json:"title"`
	Bio         string              `json:"bio"`
	Skills      []string            `json:"skills"`
	Projects    []Project           `json:"projects"`
	Experience  []Experience        `json:"experience"`
	SocialLinks map[Platform]string `json:"social_links"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
