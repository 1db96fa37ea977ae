package model

import (
    "strings"
    "time"
)

// 商品季节标签（闭集）
const (
    SeasonAll      = "All"
    SeasonSummer   = "Summer"
    SeasonWinter   = "Winter"
    SeasonFestival = "Festival"
)

// Seasons 合法季节值列表
var Seasons = []string{SeasonAll, SeasonSummer, SeasonWinter, SeasonFestival}

// NormalizeSeason 大小写归一化；非法值返回 ok=false
func NormalizeSeason(s string) (string, bool) {
    for _, v := range Seasons {
        if strings.EqualFold(s, v) {
            return v, true
        }
    }
    return "", false
}

// Product 商品；stock 与 total_sales 为冗余计数器，下单事务内条件更新
type Product struct {
    ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
    Name          string    `json:"name" gorm:"type:varchar(191);not null;index"`
    BrandID       int64     `json:"brand_id" gorm:"index"`
    CategoryID    int64     `json:"category_id" gorm:"index"`
    Description   string    `json:"description" gorm:"type:text"`
    Image         string    `json:"image" gorm:"type:varchar(255)"`
    Price         float64   `json:"price" gorm:"type:decimal(10,2);not null"`
    DiscountPrice float64   `json:"discountPrice" gorm:"type:decimal(10,2);default:0"` // 0 表示无折扣
    Stock         int       `json:"stock" gorm:"not null;default:0"`
    TotalSales    int64     `json:"total_sales" gorm:"not null;default:0;index"`
    Rating        float64   `json:"rating" gorm:"type:decimal(3,2);default:0"`
    NumReviews    int       `json:"reviews" gorm:"not null;default:0"`
    BestSelling   bool      `json:"best_selling" gorm:"index"`
    Season        string    `json:"season" gorm:"type:varchar(16);not null;default:All;index"`
    CreatedAt     time.Time `json:"created_at"`
    UpdatedAt     time.Time `json:"updated_at"`
}

func (Product) TableName() string { return "products" }

// EffectivePrice 有折扣取折扣价
func (p *Product) EffectivePrice() float64 {
    if p.DiscountPrice > 0 {
        return p.DiscountPrice
    }
    return p.Price
}
