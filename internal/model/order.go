package model

import "time"

// OrderStatus 订单状态常量
const (
    OrderStatusPending    = "Pending"
    OrderStatusPaid       = "Paid"
    OrderStatusProcessing = "Processing"
    OrderStatusShipped    = "Shipped"
    OrderStatusDelivered  = "Delivered"
    OrderStatusCancelled  = "Cancelled"
)

// OrderStatuses 合法状态值列表
var OrderStatuses = []string{
    OrderStatusPending, OrderStatusPaid, OrderStatusProcessing,
    OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled,
}

// ValidOrderStatus 状态枚举校验
func ValidOrderStatus(s string) bool {
    for _, v := range OrderStatuses {
        if v == s {
            return true
        }
    }
    return false
}

// 支付方式
const (
    PaymentCOD  = "COD"
    PaymentCard = "Card"
    PaymentUPI  = "UPI"
)

// Order 订单头；shipping_address 为 JSON 序列化文本
type Order struct {
    ID              int64       `json:"id" gorm:"primaryKey;autoIncrement"`
    OrderNo         string      `json:"order_no" gorm:"type:varchar(32);uniqueIndex;not null"`
    UserID          int64       `json:"user_id" gorm:"index:idx_user_created"` // 0 表示游客下单
    Total           float64     `json:"total" gorm:"type:decimal(10,2);not null"`
    Status          string      `json:"status" gorm:"type:varchar(16);not null;default:Pending;index"`
    PaymentMethod   string      `json:"payment_method" gorm:"type:varchar(16);not null"`
    ShippingAddress string      `json:"shipping_address" gorm:"type:text"`
    IdempotencyKey  *string     `json:"-" gorm:"type:varchar(64);uniqueIndex"`
    IsPaid          bool        `json:"is_paid"`
    PaidAt          *time.Time  `json:"paid_at"`
    IsDelivered     bool        `json:"is_delivered"`
    DeliveredAt     *time.Time  `json:"delivered_at"`
    CreatedAt       time.Time   `json:"created_at" gorm:"index:idx_user_created"`
    Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string { return "orders" }

// OrderItem 订单行；商品信息为下单时快照，创建后不可变
type OrderItem struct {
    ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
    OrderID     int64   `json:"order_id" gorm:"index;not null"`
    ProductID   int64   `json:"product_id" gorm:"index;not null"`
    Name        string  `json:"name" gorm:"type:varchar(191);not null"`
    Image       string  `json:"image" gorm:"type:varchar(255)"`
    Quantity    int     `json:"quantity" gorm:"not null"`
    UnitPrice   float64 `json:"price" gorm:"type:decimal(10,2);not null"`
    VariantID   *int64  `json:"selectedVariantId,omitempty"`
    VariantName string  `json:"selectedVariantName,omitempty" gorm:"type:varchar(100)"`
}

func (OrderItem) TableName() string { return "order_items" }
