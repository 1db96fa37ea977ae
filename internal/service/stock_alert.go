package service

import (
    "context"
    "time"

    "go.uber.org/zap"
    "gorm.io/gorm"

    "github.com/d60-Lab/desi-delights/internal/model"
    "github.com/d60-Lab/desi-delights/pkg/logger"
)

// StockAlert 低库存异步巡检：下单提交后入队商品ID，worker 回查并告警
type StockAlert struct {
    db        *gorm.DB
    threshold int
    ch        chan int64
}

func NewStockAlert(db *gorm.DB, threshold, queueSize int) *StockAlert {
    if threshold <= 0 {
        threshold = 5
    }
    if queueSize <= 0 {
        queueSize = 1024
    }
    return &StockAlert{db: db, threshold: threshold, ch: make(chan int64, queueSize)}
}

// Start 启动 worker；返回停止函数
func (a *StockAlert) Start(workers int) func(context.Context) error {
    if workers <= 0 {
        workers = 2
    }
    stopCh := make(chan struct{})
    for i := 0; i < workers; i++ {
        go func() {
            for {
                select {
                case id := <-a.ch:
                    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
                    a.check(ctx, id)
                    cancel()
                case <-stopCh:
                    return
                }
            }
        }()
    }
    return func(ctx context.Context) error {
        close(stopCh)
        // 等待队列自然排空一小段时间
        timeout := time.After(2 * time.Second)
        for {
            select {
            case <-timeout:
                return nil
            default:
                if len(a.ch) == 0 {
                    return nil
                }
                time.Sleep(50 * time.Millisecond)
            }
        }
    }
}

// Enqueue 入队；队列满时丢弃（告警是尽力而为的）
func (a *StockAlert) Enqueue(productID int64) {
    select {
    case a.ch <- productID:
    default:
        logger.Warn("stock alert queue full, drop", zap.Int64("product", productID))
    }
}

func (a *StockAlert) check(ctx context.Context, productID int64) {
    var p model.Product
    if err := a.db.WithContext(ctx).First(&p, productID).Error; err != nil {
        return
    }
    if p.Stock <= a.threshold {
        logger.Warn("low stock",
            zap.Int64("product", p.ID),
            zap.String("name", p.Name),
            zap.Int("stock", p.Stock))
    }
}

// QueueLen 返回当前队列长度（采样值）
func (a *StockAlert) QueueLen() int { return len(a.ch) }
