package repository

import "time"

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

type Post struct {
	ID        string    `gorm:"primaryKey;autoIncrement:false"`
	Title     string    `gorm:"type:text;not null"`
	Summary   string    `gorm:"type:text"`
	Content   string    `gorm:"type:text"`
	Cover     string    `gorm:"type:text"` // path under the uploads dir
	AuthorID  string    `gorm:"size:36;not null;index"`
	CreatedAt time.Time `gorm:"not null;index"`
}
