package models

import (
	"time"

	"gorm.io/gorm"
)

// GameStateSnapshot is the key-value persistence row: one JSON payload per
// external user. The engine never queries inside Payload; it is written and
// read whole.
type GameStateSnapshot struct {
	ID             string `gorm:"primaryKey;type:uuid" json:"id"`
	ExternalUserID string `gorm:"uniqueIndex;not null" json:"external_user_id"`
	Payload        []byte `gorm:"type:jsonb;not null" json:"payload"`

	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
