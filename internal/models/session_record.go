package models

import "time"

type SessionRecord struct {
	Key       string `gorm:"column:session_key;primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
