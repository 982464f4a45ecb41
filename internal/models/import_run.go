package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImportRun records one import attempt for auditing. A row is written for
// failed attempts too, with the failure message.
type ImportRun struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Filename      string    `gorm:"type:text" json:"filename"`
	RowsProcessed int       `gorm:"not null" json:"rows_processed"`
	Status        string    `gorm:"type:varchar(20);not null" json:"status"`
	Error         *string   `gorm:"type:text" json:"error,omitempty"`
	CreatedAt     time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
}

func (r *ImportRun) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
