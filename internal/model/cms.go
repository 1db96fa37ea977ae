package model

import "time"

// Page CMS 内容页（about / contact / privacy / home-*）
type Page struct {
    Slug      string    `json:"slug" gorm:"primaryKey;type:varchar(64)"`
    Title     string    `json:"title" gorm:"type:varchar(191);not null"`
    Body      string    `json:"body" gorm:"type:text"`
    UpdatedAt time.Time `json:"updated_at"`
}

func (Page) TableName() string { return "pages" }
