package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Message is an append-only channel message.
type Message struct {
	ID        string    `json:"id"`
	ChannelID string    `json:"channel_id"`
	UserEmail string    `json:"user_email"`
	Username  string    `json:"username,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// DirectMessage is exchanged between two users, optionally scoped to a workspace.
type DirectMessage struct {
	ID            string    `json:"id"`
	SenderEmail   string    `json:"sender_email"`
	ReceiverEmail string    `json:"receiver_email"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
	WorkspaceID   *string   `json:"workspace_id"`
}

// Conversation names the other party of a direct message thread.
type Conversation struct {
	OtherUserEmail string `json:"other_user_email"`
}

// SearchHit is a channel message matched by a full text search.
type SearchHit struct {
	MessageID     string    `json:"message_id"`
	Message       string    `json:"message"`
	Timestamp     time.Time `json:"timestamp"`
	WorkspaceName string    `json:"workspace_name"`
	ChannelName   string    `json:"channel_name"`
}

var mentionPattern = regexp.MustCompile(`@([\p{L}\p{N}_.-]+)`)

// Mentions extracts the lower-cased, de-duplicated usernames referenced as @name.
func Mentions(content string) []string {
	matches := mentionPattern.FindAllStringSubmatch(content, -1)
	names := lo.Map(matches, func(m []string, _ int) string {
		return strings.ToLower(strings.TrimRight(m[1], ".-"))
	})
	return lo.Uniq(lo.Compact(names))
}
