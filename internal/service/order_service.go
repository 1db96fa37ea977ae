package service

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "math"
    "sync/atomic"
    "time"

    "gorm.io/gorm"

    "github.com/d60-Lab/desi-delights/internal/cache"
    "github.com/d60-Lab/desi-delights/internal/model"
    "github.com/d60-Lab/desi-delights/internal/repository"
)

var (
    ErrEmptyCart         = errors.New("cart is empty")
    ErrBadQuantity       = errors.New("quantity must be positive")
    ErrBadPaymentMethod  = errors.New("unsupported payment method")
    ErrTotalMismatch     = errors.New("total does not match cart lines")
    ErrInsufficientStock = errors.New("insufficient stock")
    ErrBadOrderStatus    = errors.New("unknown order status")
)

// CartLine 结算购物车行
type CartLine struct {
    ProductID   int64
    Name        string
    Image       string
    Quantity    int
    UnitPrice   float64
    VariantID   *int64
    VariantName string
}

// PlaceOrderInput 下单入参
type PlaceOrderInput struct {
    UserID          int64 // 0 表示游客
    Lines           []CartLine
    Total           float64
    PaymentMethod   string
    ShippingAddress json.RawMessage
    IdempotencyKey  string
}

// OrderService 下单事务 + 状态流转 + 缓存失效
type OrderService struct {
    db     *gorm.DB
    orders repository.OrderRepository
    cache  cache.Store
    alerts *StockAlert // 可为 nil
}

func NewOrderService(db *gorm.DB, orders repository.OrderRepository, c cache.Store, alerts *StockAlert) *OrderService {
    return &OrderService{db: db, orders: orders, cache: c, alerts: alerts}
}

// PlaceOrder 在一个事务内落地订单头 + 订单行，并条件扣减库存。
// 任一行库存不足整体回滚。提交成功后失效推荐位缓存。
// replayed=true 表示幂等键命中，返回的是已存在的订单。
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*model.Order, bool, error) {
    if err := validatePlaceOrder(in); err != nil {
        return nil, false, err
    }

    if in.IdempotencyKey != "" {
        existing, err := s.orders.GetByIdempotencyKey(ctx, in.IdempotencyKey)
        if err != nil {
            return nil, false, err
        }
        if existing != nil {
            return existing, true, nil
        }
    }

    order := &model.Order{
        OrderNo:         newOrderNo(),
        UserID:          in.UserID,
        Total:           in.Total,
        Status:          model.OrderStatusPending,
        PaymentMethod:   in.PaymentMethod,
        ShippingAddress: string(in.ShippingAddress),
        CreatedAt:       time.Now(),
    }
    if in.IdempotencyKey != "" {
        key := in.IdempotencyKey
        order.IdempotencyKey = &key
    }

    err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        if err := tx.Create(order).Error; err != nil {
            return err
        }
        for _, line := range in.Lines {
            item := &model.OrderItem{
                OrderID:     order.ID,
                ProductID:   line.ProductID,
                Name:        line.Name,
                Image:       line.Image,
                Quantity:    line.Quantity,
                UnitPrice:   line.UnitPrice,
                VariantID:   line.VariantID,
                VariantName: line.VariantName,
            }
            if err := tx.Create(item).Error; err != nil {
                return err
            }
            order.Items = append(order.Items, *item)

            // 条件扣减：库存不足时零行受影响，整体回滚
            res := tx.Model(&model.Product{}).
                Where("id = ? AND stock >= ?", line.ProductID, line.Quantity).
                Updates(map[string]interface{}{
                    "stock":       gorm.Expr("stock - ?", line.Quantity),
                    "total_sales": gorm.Expr("total_sales + ?", line.Quantity),
                })
            if res.Error != nil {
                return res.Error
            }
            if res.RowsAffected == 0 {
                return fmt.Errorf("product %d: %w", line.ProductID, ErrInsufficientStock)
            }
        }
        return nil
    })
    if err != nil {
        // 幂等键唯一索引冲突：并发同键请求双双越过预读，落败方改走重放
        if in.IdempotencyKey != "" && errors.Is(err, gorm.ErrDuplicatedKey) {
            if existing, ferr := s.orders.GetByIdempotencyKey(ctx, in.IdempotencyKey); ferr == nil && existing != nil {
                return existing, true, nil
            }
        }
        return nil, false, err
    }

    // 提交后失效推荐位缓存，后续读取回源重算
    s.cache.Delete(ctx, cache.MerchandisingKeys()...)

    if s.alerts != nil {
        for _, line := range in.Lines {
            s.alerts.Enqueue(line.ProductID)
        }
    }
    return order, false, nil
}

var orderSeq atomic.Int64

// newOrderNo 订单号：毫秒时间戳 + 定宽进程内序号，同一毫秒并发下单不冲突
func newOrderNo() string {
    return fmt.Sprintf("ORD-%d%04d", time.Now().UnixMilli(), orderSeq.Add(1)%10000)
}

func validatePlaceOrder(in PlaceOrderInput) error {
    if len(in.Lines) == 0 {
        return ErrEmptyCart
    }
    var sum float64
    for _, line := range in.Lines {
        if line.Quantity <= 0 {
            return ErrBadQuantity
        }
        sum += line.UnitPrice * float64(line.Quantity)
    }
    switch in.PaymentMethod {
    case model.PaymentCOD, model.PaymentCard, model.PaymentUPI:
    default:
        return ErrBadPaymentMethod
    }
    // 不信任客户端合计，重算后比对（容忍一分钱浮点误差）
    if math.Abs(sum-in.Total) > 0.01 {
        return ErrTotalMismatch
    }
    return nil
}

// Get 查询订单
func (s *OrderService) Get(ctx context.Context, id int64) (*model.Order, error) {
    return s.orders.GetByID(ctx, id)
}

// ListMine 查询用户自己的订单
func (s *OrderService) ListMine(ctx context.Context, userID int64) ([]*model.Order, error) {
    return s.orders.ListByUser(ctx, userID, 50)
}

// SetStatus 状态流转；Paid / Delivered 时打时间戳
func (s *OrderService) SetStatus(ctx context.Context, id int64, status string) (*model.Order, error) {
    if !model.ValidOrderStatus(status) {
        return nil, ErrBadOrderStatus
    }
    order, err := s.orders.GetByID(ctx, id)
    if err != nil {
        return nil, err
    }
    now := time.Now()
    order.Status = status
    switch status {
    case model.OrderStatusPaid:
        order.IsPaid = true
        order.PaidAt = &now
    case model.OrderStatusDelivered:
        order.IsDelivered = true
        order.DeliveredAt = &now
    }
    if err := s.orders.UpdateStatus(ctx, order); err != nil {
        return nil, err
    }
    return order, nil
}
