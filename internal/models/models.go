// internal/models/models.go
package models

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// ArchivedMessage is a live Discord message captured by the bot. The
// archive is a supporting store for assistant context enrichment; the
// in-memory search index never reads it.
type ArchivedMessage struct {
	ID          uint   `gorm:"primaryKey"`
	MessageID   string `gorm:"uniqueIndex;not null"`
	Content     string `gorm:"type:text"`
	AuthorID    string `gorm:"not null"`
	Author      string `gorm:"not null"`
	ChannelID   string `gorm:"not null"`
	ChannelName string
	GuildID     string `gorm:"not null"`
	GuildName   string
	Timestamp   time.Time       `gorm:"not null"`
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"` // OpenAI embedding size
	CreatedAt   time.Time
}

// Interaction records one ROVER query/response exchange.
type Interaction struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"not null"`
	Username  string `gorm:"not null"`
	Intent    string
	Query     string    `gorm:"type:text"`
	Response  string    `gorm:"type:text"`
	ChannelID string    `gorm:"not null"`
	GuildID   string    `gorm:"not null"`
	Timestamp time.Time `gorm:"not null"`
	CreatedAt time.Time
}
