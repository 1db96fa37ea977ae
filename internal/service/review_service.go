package service

import (
    "context"
    "errors"

    "gorm.io/gorm"

    "github.com/d60-Lab/desi-delights/internal/model"
)

var (
    ErrDuplicateReview = errors.New("product already reviewed by this user")
    ErrBadRating       = errors.New("rating must be between 1 and 5")
)

// ReviewService 商品评价；评分聚合与评价写入同一事务
type ReviewService struct {
    db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService { return &ReviewService{db: db} }

// Add 新增评价并在事务内重算商品 rating / num_reviews
func (s *ReviewService) Add(ctx context.Context, review *model.Review) error {
    if review.Rating < 1 || review.Rating > 5 {
        return ErrBadRating
    }
    return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        var cnt int64
        if err := tx.Model(&model.Review{}).
            Where("product_id = ? AND user_id = ?", review.ProductID, review.UserID).
            Count(&cnt).Error; err != nil {
            return err
        }
        if cnt > 0 {
            return ErrDuplicateReview
        }
        if err := tx.Create(review).Error; err != nil {
            return err
        }

        var agg struct {
            Avg float64
            Cnt int
        }
        if err := tx.Model(&model.Review{}).
            Select("AVG(rating) AS avg, COUNT(*) AS cnt").
            Where("product_id = ?", review.ProductID).
            Scan(&agg).Error; err != nil {
            return err
        }
        return tx.Model(&model.Product{}).
            Where("id = ?", review.ProductID).
            Updates(map[string]interface{}{"rating": agg.Avg, "num_reviews": agg.Cnt}).Error
    })
}

// ListByProduct 商品的评价列表，新评在前
func (s *ReviewService) ListByProduct(ctx context.Context, productID int64) ([]*model.Review, error) {
    var res []*model.Review
    err := s.db.WithContext(ctx).
        Where("product_id = ?", productID).
        Order("created_at DESC").
        Find(&res).Error
    return res, err
}
