package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/desi-delights/internal/model"
)

// 商品列表页大小
const (
    BestSellingPageSize = 8
    SeasonalPageSize    = 12
)

// ProductFilter 商品列表过滤条件
type ProductFilter struct {
    CategoryID int64
    BrandID    int64
    Query      string
    Offset     int
    Limit      int
}

// ProductRepository 商品仓储接口
type ProductRepository interface {
    Create(ctx context.Context, p *model.Product) error
    Update(ctx context.Context, p *model.Product) error
    Delete(ctx context.Context, id int64) error
    GetByID(ctx context.Context, id int64) (*model.Product, error)
    List(ctx context.Context, f ProductFilter) ([]*model.Product, error)

    // BestSelling 返回标记为 best_selling 的商品，销量/评分排序；
    // 不足 pageSize 时用未标记的高销量商品补齐。
    BestSelling(ctx context.Context, pageSize int) ([]*model.Product, error)

    // Seasonal 返回匹配季节（或 All 标签）的商品
    Seasonal(ctx context.Context, season string, pageSize int) ([]*model.Product, error)
}

type productRepository struct {
    db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepository{db: db} }

func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
    return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepository) Update(ctx context.Context, p *model.Product) error {
    return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
    return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
    var p model.Product
    if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
        return nil, err
    }
    return &p, nil
}

func (r *productRepository) List(ctx context.Context, f ProductFilter) ([]*model.Product, error) {
    q := r.db.WithContext(ctx).Model(&model.Product{})
    if f.CategoryID > 0 {
        q = q.Where("category_id = ?", f.CategoryID)
    }
    if f.BrandID > 0 {
        q = q.Where("brand_id = ?", f.BrandID)
    }
    if f.Query != "" {
        q = q.Where("name LIKE ?", "%"+f.Query+"%")
    }
    if f.Limit <= 0 {
        f.Limit = 20
    }
    var res []*model.Product
    err := q.Order("created_at DESC").Offset(f.Offset).Limit(f.Limit).Find(&res).Error
    return res, err
}

func (r *productRepository) BestSelling(ctx context.Context, pageSize int) ([]*model.Product, error) {
    var flagged []*model.Product
    err := r.db.WithContext(ctx).
        Where("best_selling = ?", true).
        Order("total_sales DESC").Order("rating DESC").
        Limit(pageSize).
        Find(&flagged).Error
    if err != nil {
        return nil, err
    }
    if len(flagged) >= pageSize {
        return flagged, nil
    }

    // 补齐：未标记的高销量商品
    var topUp []*model.Product
    err = r.db.WithContext(ctx).
        Where("best_selling = ?", false).
        Order("total_sales DESC").Order("rating DESC").
        Limit(pageSize - len(flagged)).
        Find(&topUp).Error
    if err != nil {
        return nil, err
    }
    return append(flagged, topUp...), nil
}

func (r *productRepository) Seasonal(ctx context.Context, season string, pageSize int) ([]*model.Product, error) {
    var res []*model.Product
    err := r.db.WithContext(ctx).
        Where("season = ? OR season = ?", season, model.SeasonAll).
        Order("total_sales DESC").Order("rating DESC").
        Limit(pageSize).
        Find(&res).Error
    return res, err
}
