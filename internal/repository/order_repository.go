package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/desi-delights/internal/model"
)

// OrderRepository 订单仓储接口；创建走 service 层事务，不在此暴露
type OrderRepository interface {
    // GetByID 查询订单及其订单行
    GetByID(ctx context.Context, id int64) (*model.Order, error)

    // GetByIdempotencyKey 幂等键查重；未命中返回 (nil, nil)
    GetByIdempotencyKey(ctx context.Context, key string) (*model.Order, error)

    // ListByUser 查询某用户订单，按创建时间倒序
    ListByUser(ctx context.Context, userID int64, limit int) ([]*model.Order, error)

    // UpdateStatus 更新订单状态
    UpdateStatus(ctx context.Context, order *model.Order) error
}

type orderRepository struct {
    db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepository{db: db} }

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
    var order model.Order
    err := r.db.WithContext(ctx).Preload("Items").First(&order, id).Error
    if err != nil {
        return nil, err
    }
    return &order, nil
}

func (r *orderRepository) GetByIdempotencyKey(ctx context.Context, key string) (*model.Order, error) {
    var order model.Order
    err := r.db.WithContext(ctx).Preload("Items").
        Where("idempotency_key = ?", key).
        First(&order).Error
    if err == gorm.ErrRecordNotFound {
        return nil, nil
    }
    if err != nil {
        return nil, err
    }
    return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]*model.Order, error) {
    if limit <= 0 {
        limit = 50
    }
    var orders []*model.Order
    err := r.db.WithContext(ctx).Preload("Items").
        Where("user_id = ?", userID).
        Order("created_at DESC").
        Limit(limit).
        Find(&orders).Error
    return orders, err
}

func (r *orderRepository) UpdateStatus(ctx context.Context, order *model.Order) error {
    return r.db.WithContext(ctx).Model(order).
        Select("status", "is_paid", "paid_at", "is_delivered", "delivered_at").
        Updates(order).Error
}
