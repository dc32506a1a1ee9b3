package db

import (
	"studyvault/edu-api/model"

	"gorm.io/gorm"
)

var starterSubjects = []model.Subject{
	{Name: "Mathematics", Description: "Advanced mathematics courses including calculus, algebra, and statistics"},
	{Name: "Physics", Description: "Classical and modern physics concepts and applications"},
	{Name: "Computer Science", Description: "Programming, algorithms, and computer systems"},
	{Name: "Chemistry", Description: "Organic and inorganic chemistry, chemical reactions"},
	{Name: "Biology", Description: "Study of living organisms and their interactions"},
	{Name: "English", Description: "Language, literature, and communication skills"},
	{Name: "History", Description: "World history and historical analysis"},
	{Name: "Geography", Description: "Physical and human geography, environmental studies"},
}

// Seed inserts the starter subject catalog. The whole batch runs in one
// transaction and rolls back entirely if any insert fails. Subjects that
// already exist are left untouched
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, s := range starterSubjects {
			err := tx.
				Where(model.Subject{Name: s.Name}).
				Attrs(model.Subject{Description: s.Description}).
				FirstOrCreate(&model.Subject{}).
				Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
