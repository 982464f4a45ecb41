package models

// Symptom uses the import file's code (e.g. "SYMPT0001") as its primary key.
type Symptom struct {
	Code string `gorm:"type:varchar(20);primaryKey" json:"code"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
}
