package service

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/desi-delights/internal/model"
)

// CatalogService 品牌与分类
type CatalogService struct {
    db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService { return &CatalogService{db: db} }

func (s *CatalogService) ListBrands(ctx context.Context) ([]*model.Brand, error) {
    var res []*model.Brand
    err := s.db.WithContext(ctx).Order("name").Find(&res).Error
    return res, err
}

func (s *CatalogService) CreateBrand(ctx context.Context, b *model.Brand) error {
    return s.db.WithContext(ctx).Create(b).Error
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*model.Category, error) {
    var res []*model.Category
    err := s.db.WithContext(ctx).Order("name").Find(&res).Error
    return res, err
}

func (s *CatalogService) CreateCategory(ctx context.Context, c *model.Category) error {
    return s.db.WithContext(ctx).Create(c).Error
}
