package models

import "time"

// BusinessSymptom links a business to a symptom. The composite primary key
// on (business_id, symptom_code) guarantees at most one row per pair.
type BusinessSymptom struct {
	BusinessID  int       `gorm:"primaryKey;autoIncrement:false" json:"business_id"`
	SymptomCode string    `gorm:"type:varchar(20);primaryKey" json:"symptom_code"`
	Diagnostic  bool      `gorm:"not null" json:"diagnostic"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`

	Business Business `gorm:"foreignKey:BusinessID;references:ID" json:"-"`
	Symptom  Symptom  `gorm:"foreignKey:SymptomCode;references:Code" json:"-"`
}

// BusinessSymptomRow is the denormalized projection returned by the read
// endpoint: the link row enriched with both parent names.
type BusinessSymptomRow struct {
	BusinessID   int    `json:"business_id"`
	BusinessName string `json:"business_name"`
	SymptomCode  string `json:"symptom_code"`
	SymptomName  string `json:"symptom_name"`
	Diagnostic   bool   `json:"diagnostic"`
}
