package models

// Business matches the businesses table. IDs come from the import file,
// so autoincrement is disabled.
type Business struct {
	ID   int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
}
