package service

import (
    "context"

    "gorm.io/gorm"
    "gorm.io/gorm/clause"

    "github.com/d60-Lab/desi-delights/internal/model"
)

// CMSService 内容页读写
type CMSService struct {
    db *gorm.DB
}

func NewCMSService(db *gorm.DB) *CMSService { return &CMSService{db: db} }

// GetPage 按 slug 取内容页
func (s *CMSService) GetPage(ctx context.Context, slug string) (*model.Page, error) {
    var p model.Page
    if err := s.db.WithContext(ctx).First(&p, "slug = ?", slug).Error; err != nil {
        return nil, err
    }
    return &p, nil
}

// UpsertPage 管理端更新内容页，不存在则创建
func (s *CMSService) UpsertPage(ctx context.Context, p *model.Page) error {
    return s.db.WithContext(ctx).Clauses(clause.OnConflict{
        Columns:   []clause.Column{{Name: "slug"}},
        DoUpdates: clause.AssignmentColumns([]string{"title", "body", "updated_at"}),
    }).Create(p).Error
}
