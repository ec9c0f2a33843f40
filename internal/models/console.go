package models

// Console is a platform games belong to. Its games are not embedded here;
// they are looked up by console id.
type Console struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null;uniqueIndex" json:"name"`
}
