package session

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/farellandr/eventhub/internal/models"
)

// GormStorage keeps session records in the session_records table.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func (g *GormStorage) Get(ctx context.Context, key string) ([]byte, error) {
	var record models.SessionRecord
	if err := g.db.WithContext(ctx).Where("session_key = ?", key).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(record.Value), nil
}

func (g *GormStorage) Set(ctx context.Context, key string, value []byte) error {
	record := models.SessionRecord{Key: key, Value: string(value)}
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
}

func (g *GormStorage) Delete(ctx context.Context, key string) error {
	return g.db.WithContext(ctx).Where("session_key = ?", key).Delete(&models.SessionRecord{}).Error
}
