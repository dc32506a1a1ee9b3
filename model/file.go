package model

import "time"

type File struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID string `gorm:"not null;index" json:"user_id"`

	// Subject is referenced by name, not ID. That's what the upload form
	// sends and what the listing endpoint filters on
	Subject string `gorm:"not null;index" json:"subject"`
	Title   string `gorm:"not null" json:"title"`
	// Declared by the uploader, not derived from the content
	FileType string `gorm:"not null" json:"file_type"`

	// Original file name, used as the download name
	OriginalName string `gorm:"not null" json:"file_name"`
	// Generated name the blob is stored under. Different users can upload
	// files with the same name so the blob key has to be unique
	StoredName string `gorm:"uniqueIndex;not null" json:"stored_file_name"`

	CreatedAt time.Time `json:"created_at"`

	// Filled by listing queries, not a column
	IsFavorite bool `gorm:"->;-:migration" json:"is_favorite"`
}

type Favorite struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_user_file" json:"user_id"`
	FileID    uint      `gorm:"not null;uniqueIndex:idx_user_file" json:"file_id"`
	CreatedAt time.Time `json:"created_at"`

	File File `gorm:"foreignKey:FileID;constraint:OnDelete:CASCADE" json:"-"`
}
