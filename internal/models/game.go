package models

import "gorm.io/gorm"

type Game struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Title     string  `gorm:"size:255;not null;index" json:"title"`
	Condition string  `gorm:"size:255;not null" json:"condition"`
	HasBox    bool    `gorm:"not null;default:false" json:"has_box"`
	HasManual bool    `gorm:"not null;default:false" json:"has_manual"`
	ConsoleID uint    `gorm:"not null;index" json:"console_id"`
	Console   Console `gorm:"foreignKey:ConsoleID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"console"`
}

// AutoMigrate creates or updates the consoles and games tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Console{}, &Game{})
}
