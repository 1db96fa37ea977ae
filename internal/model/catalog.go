package model

import "time"

// Brand 品牌
type Brand struct {
    ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
    Name      string    `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
    CreatedAt time.Time `json:"created_at"`
}

func (Brand) TableName() string { return "brands" }

// Category 商品分类
type Category struct {
    ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
    Name      string    `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
    CreatedAt time.Time `json:"created_at"`
}

func (Category) TableName() string { return "categories" }
