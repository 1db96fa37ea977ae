package service

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/desi-delights/internal/model"
)

// ReportSummary 管理后台汇总
type ReportSummary struct {
    Revenue       float64          `json:"revenue"`
    OrderCount    int64            `json:"order_count"`
    PendingOrders int64            `json:"pending_orders"`
    ProductCount  int64            `json:"product_count"`
    LowStock      int64            `json:"low_stock"`
    TopProducts   []*model.Product `json:"top_products"`
}

// ReportService 管理后台聚合报表
type ReportService struct {
    db                *gorm.DB
    lowStockThreshold int
}

func NewReportService(db *gorm.DB, lowStockThreshold int) *ReportService {
    if lowStockThreshold <= 0 {
        lowStockThreshold = 5
    }
    return &ReportService{db: db, lowStockThreshold: lowStockThreshold}
}

// Summary 汇总：营收（不含已取消）、订单量、低库存、销量 Top5
func (s *ReportService) Summary(ctx context.Context) (*ReportSummary, error) {
    var out ReportSummary
    db := s.db.WithContext(ctx)

    err := db.Model(&model.Order{}).
        Where("status <> ?", model.OrderStatusCancelled).
        Select("COALESCE(SUM(total), 0)").
        Scan(&out.Revenue).Error
    if err != nil {
        return nil, err
    }
    if err := db.Model(&model.Order{}).Count(&out.OrderCount).Error; err != nil {
        return nil, err
    }
    if err := db.Model(&model.Order{}).
        Where("status = ?", model.OrderStatusPending).
        Count(&out.PendingOrders).Error; err != nil {
        return nil, err
    }
    if err := db.Model(&model.Product{}).Count(&out.ProductCount).Error; err != nil {
        return nil, err
    }
    if err := db.Model(&model.Product{}).
        Where("stock <= ?", s.lowStockThreshold).
        Count(&out.LowStock).Error; err != nil {
        return nil, err
    }
    if err := db.Model(&model.Product{}).
        Order("total_sales DESC").
        Limit(5).
        Find(&out.TopProducts).Error; err != nil {
        return nil, err
    }
    return &out, nil
}
