// internal/database/db.go
package database

import (
	"fmt"

	"discord-rover/internal/models"

	"github.com/pgvector/pgvector-go"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DB struct {
	*gorm.DB
}

func NewDB(host, user, password, dbname string, port int) (*DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		host, user, password, dbname, port)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Enable pgvector extension
	if err := gormDB.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return nil, err
	}

	if err := gormDB.AutoMigrate(
		&models.ArchivedMessage{},
		&models.Interaction{},
	); err != nil {
		return nil, err
	}

	return &DB{gormDB}, nil
}

// ArchiveMessage stores a captured message, idempotent on the Discord
// message ID.
func (db *DB) ArchiveMessage(msg *models.ArchivedMessage) error {
	return db.FirstOrCreate(msg, models.ArchivedMessage{MessageID: msg.MessageID}).Error
}

// LogInteraction records one query/response exchange.
func (db *DB) LogInteraction(i *models.Interaction) error {
	return db.Create(i).Error
}

// SimilarArchivedMessages returns archived messages nearest to the given
// embedding within one guild.
func (db *DB) SimilarArchivedMessages(embedding []float32, guildID string, limit int) ([]models.ArchivedMessage, error) {
	var messages []models.ArchivedMessage

	vector := pgvector.NewVector(embedding)

	err := db.Where("guild_id = ?", guildID).
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:  "embedding <-> ?",
			Vars: []interface{}{vector},
		}}).
		Limit(limit).
		Find(&messages).Error

	return messages, err
}

// RecentArchivedMessages returns the newest archived messages for a guild,
// optionally scoped to one channel.
func (db *DB) RecentArchivedMessages(guildID, channelID string, limit int) ([]models.ArchivedMessage, error) {
	var messages []models.ArchivedMessage

	query := db.Where("guild_id = ?", guildID)
	if channelID != "" {
		query = query.Where("channel_id = ?", channelID)
	}

	err := query.Order("timestamp DESC").Limit(limit).Find(&messages).Error
	return messages, err
}
