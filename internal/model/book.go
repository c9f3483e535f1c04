package model

import (
	"time"
)

type Book struct {
	ISBN      string `gorm:"column:isbn;primaryKey"`
	AmazonURL string `gorm:"column:amazon_url;not null"`
	Author    string `gorm:"not null;index"`
	Language  string `gorm:"not null"`
	Pages     int    `gorm:"not null"`
	Publisher string `gorm:"not null"`
	Title     string `gorm:"not null;index"`
	Year      int    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Book) TableName() string {
	return "books"
}
