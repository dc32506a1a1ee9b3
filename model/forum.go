package model

import "time"

type Question struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	SubjectID uint      `gorm:"not null;index" json:"subject_id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`

	Answers []Answer `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"-"`

	// Joined from users on reads
	AuthorEmail string `gorm:"->;-:migration" json:"author_email"`
}

type Answer struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     string    `gorm:"not null;index" json:"user_id"`
	QuestionID uint      `gorm:"not null;index" json:"question_id"`
	Content    string    `gorm:"not null" json:"content"`
	CreatedAt  time.Time `json:"created_at"`

	AuthorEmail string `gorm:"->;-:migration" json:"author_email"`
}
