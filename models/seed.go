package models

import "gorm.io/gorm"

// SeedStats summarizes the dataset left behind by Seed.
type SeedStats struct {
	Users     int64
	Posts     int64
	Published int64
}

func strPtr(s string) *string { return &s }

// Seed clears both tables and inserts the sample dataset: three users
// and five posts, one of them a draft. Everything runs in a single
// transaction so a failed seed leaves the database untouched.
func Seed(db *gorm.DB) (SeedStats, error) {
	var stats SeedStats

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&User{}).Error; err != nil {
			return err
		}

		users := []User{
			{Email: "alice@example.com", Name: strPtr("Alice Johnson")},
			{Email: "bob@example.com", Name: strPtr("Bob Smith")},
			{Email: "charlie@example.com", Name: strPtr("Charlie Brown")},
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		posts := []Post{
			{
				Title:     "Getting started with GORM associations",
				Content:   strPtr("Preloading belongs-to and has-many relations keeps list endpoints to a single round trip per association."),
				Published: true,
				AuthorID:  users[0].ID,
			},
			{
				Title:     "Structured logging with zap",
				Content:   strPtr("JSON logs with request ids make it trivial to trace a mutation from the access log to the database."),
				Published: true,
				AuthorID:  users[1].ID,
			},
			{
				Title:     "Relational schema design notes",
				Content:   strPtr("Balancing normalization against read performance is the core trade-off in relational schema design."),
				Published: false,
				AuthorID:  users[2].ID,
			},
			{
				Title:     "Partial updates over HTTP PATCH",
				Content:   strPtr("Pointer-typed request fields distinguish an omitted value from an explicit zero, which is what PATCH semantics require."),
				Published: true,
				AuthorID:  users[0].ID,
			},
			{
				Title:     "A modern Go web service workflow",
				Content:   strPtr("Git, Docker and CI pipelines around a single static binary keep deployments boring."),
				Published: true,
				AuthorID:  users[1].ID,
			},
		}
		return tx.Create(&posts).Error
	})
	if err != nil {
		return stats, err
	}

	if err := db.Model(&User{}).Count(&stats.Users).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&Post{}).Count(&stats.Posts).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&Post{}).Where("published = ?", true).Count(&stats.Published).Error; err != nil {
		return stats, err
	}
	return stats, nil
}
