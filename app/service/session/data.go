package session

import (
	"time"
)

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

type Kind string

const (
	KindNormal  Kind = "normal"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Turn is a single chat message. Immutable once appended.
type Turn struct {
	ID      string    `json:"id"`
	Sender  Sender    `json:"sender"`
	Content string    `json:"content"`
	Kind    Kind      `json:"kind"`
	Time    time.Time `json:"time"`
}

// Session is an ordered sequence of turns. The title is derived from the
// first user turn.
type Session struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Turns     []Turn    `json:"turns"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const maxTitleLength = 40

func deriveTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= maxTitleLength {
		return content
	}

	return string(runes[:maxTitleLength]) + "..."
}
