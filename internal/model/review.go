package model

import "time"

// Review 商品评价；(product_id, user_id) 唯一，避免重复评价
type Review struct {
    ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
    ProductID int64     `json:"product_id" gorm:"index:idx_review_pair,unique;not null"`
    UserID    int64     `json:"user_id" gorm:"index:idx_review_pair,unique;not null"`
    UserName  string    `json:"user_name" gorm:"type:varchar(100)"` // 下单时快照
    Rating    int       `json:"rating" gorm:"not null"`
    Comment   string    `json:"comment" gorm:"type:text"`
    CreatedAt time.Time `json:"created_at"`
}

func (Review) TableName() string { return "reviews" }
