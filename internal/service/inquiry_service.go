package service

import (
    "context"
    "strings"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/desi-delights/internal/model"
)

// InquiryService 客户咨询工单
type InquiryService struct {
    db *gorm.DB
}

func NewInquiryService(db *gorm.DB) *InquiryService { return &InquiryService{db: db} }

// Create 创建工单并分配工单号
func (s *InquiryService) Create(ctx context.Context, inq *model.Inquiry) error {
    inq.TicketNo = "INQ-" + strings.ToUpper(uuid.NewString()[:8])
    inq.Resolved = false
    return s.db.WithContext(ctx).Create(inq).Error
}

// List 管理端列表，未解决在前
func (s *InquiryService) List(ctx context.Context) ([]*model.Inquiry, error) {
    var res []*model.Inquiry
    err := s.db.WithContext(ctx).
        Order("resolved ASC").Order("created_at DESC").
        Find(&res).Error
    return res, err
}

// Resolve 标记已解决
func (s *InquiryService) Resolve(ctx context.Context, id int64) (*model.Inquiry, error) {
    var inq model.Inquiry
    if err := s.db.WithContext(ctx).First(&inq, id).Error; err != nil {
        return nil, err
    }
    inq.Resolved = true
    if err := s.db.WithContext(ctx).Model(&inq).Update("resolved", true).Error; err != nil {
        return nil, err
    }
    return &inq, nil
}
