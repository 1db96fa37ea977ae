package service

import (
    "context"
    "encoding/json"
    "regexp"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/d60-Lab/desi-delights/internal/cache"
    "github.com/d60-Lab/desi-delights/internal/database"
    "github.com/d60-Lab/desi-delights/internal/model"
    "github.com/d60-Lab/desi-delights/internal/repository"
)

func setupDB(t *testing.T) *gorm.DB {
    t.Helper()
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
    require.NoError(t, err)
    sqlDB, err := db.DB()
    require.NoError(t, err)
    sqlDB.SetMaxOpenConns(1)
    require.NoError(t, database.Migrate(db))
    return db
}

func seedProducts(t *testing.T, db *gorm.DB) (a, b model.Product) {
    t.Helper()
    a = model.Product{Name: "Kaju Katli", Price: 100, Stock: 10, Season: model.SeasonAll}
    b = model.Product{Name: "Gajar Halwa", Price: 50, Stock: 5, Season: model.SeasonWinter}
    require.NoError(t, db.Create(&a).Error)
    require.NoError(t, db.Create(&b).Error)
    return a, b
}

func newOrderService(db *gorm.DB, c cache.Store) *OrderService {
    return NewOrderService(db, repository.NewOrderRepository(db), c, nil)
}

func twoLineCart(a, b model.Product) PlaceOrderInput {
    return PlaceOrderInput{
        Lines: []CartLine{
            {ProductID: a.ID, Name: a.Name, Quantity: 2, UnitPrice: 100},
            {ProductID: b.ID, Name: b.Name, Quantity: 1, UnitPrice: 50},
        },
        Total:           250,
        PaymentMethod:   model.PaymentCOD,
        ShippingAddress: json.RawMessage(`{"city":"Mumbai"}`),
    }
}

func TestPlaceOrderSuccess(t *testing.T) {
    db := setupDB(t)
    a, b := seedProducts(t, db)
    store := cache.NewMemory()
    svc := newOrderService(db, store)
    ctx := context.Background()

    order, replayed, err := svc.PlaceOrder(ctx, twoLineCart(a, b))
    require.NoError(t, err)
    assert.False(t, replayed)
    assert.Regexp(t, regexp.MustCompile(`^ORD-\d+$`), order.OrderNo)
    assert.Equal(t, model.OrderStatusPending, order.Status)
    assert.Equal(t, 250.0, order.Total)

    var itemCount int64
    require.NoError(t, db.Model(&model.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error)
    assert.EqualValues(t, 2, itemCount)

    var pa, pb model.Product
    require.NoError(t, db.First(&pa, a.ID).Error)
    require.NoError(t, db.First(&pb, b.ID).Error)
    assert.Equal(t, 8, pa.Stock)
    assert.EqualValues(t, 2, pa.TotalSales)
    assert.Equal(t, 4, pb.Stock)
    assert.EqualValues(t, 1, pb.TotalSales)
}

func TestPlaceOrderInvalidatesMerchandisingCache(t *testing.T) {
    db := setupDB(t)
    a, b := seedProducts(t, db)
    store := cache.NewMemory()
    svc := newOrderService(db, store)
    ctx := context.Background()

    for _, key := range cache.MerchandisingKeys() {
        store.Set(ctx, key, []byte("stale"), 5*time.Minute)
    }

    _, _, err := svc.PlaceOrder(ctx, twoLineCart(a, b))
    require.NoError(t, err)

    for _, key := range cache.MerchandisingKeys() {
        _, ok := store.Get(ctx, key)
        assert.False(t, ok, "key %s should be invalidated", key)
    }
}

func TestPlaceOrderInsufficientStockRollsBack(t *testing.T) {
    db := setupDB(t)
    a, b := seedProducts(t, db)
    svc := newOrderService(db, cache.NewMemory())
    ctx := context.Background()

    in := PlaceOrderInput{
        Lines: []CartLine{
            {ProductID: a.ID, Name: a.Name, Quantity: 2, UnitPrice: 100}, // 足够
            {ProductID: b.ID, Name: b.Name, Quantity: 6, UnitPrice: 50},  // 超出库存 5
        },
        Total:           500,
        PaymentMethod:   model.PaymentCOD,
        ShippingAddress: json.RawMessage(`{}`),
    }
    _, _, err := svc.PlaceOrder(ctx, in)
    require.ErrorIs(t, err, ErrInsufficientStock)

    // 整体回滚：订单头、订单行、两个商品计数器都不得有残留
    var orders, items int64
    require.NoError(t, db.Model(&model.Order{}).Count(&orders).Error)
    require.NoError(t, db.Model(&model.OrderItem{}).Count(&items).Error)
    assert.Zero(t, orders)
    assert.Zero(t, items)

    var pa, pb model.Product
    require.NoError(t, db.First(&pa, a.ID).Error)
    require.NoError(t, db.First(&pb, b.ID).Error)
    assert.Equal(t, 10, pa.Stock)
    assert.Zero(t, pa.TotalSales)
    assert.Equal(t, 5, pb.Stock)
    assert.Zero(t, pb.TotalSales)
}

func TestPlaceOrderTotalMismatchRejected(t *testing.T) {
    db := setupDB(t)
    a, b := seedProducts(t, db)
    svc := newOrderService(db, cache.NewMemory())

    in := twoLineCart(a, b)
    in.Total = 999
    _, _, err := svc.PlaceOrder(context.Background(), in)
    require.ErrorIs(t, err, ErrTotalMismatch)

    var orders int64
    require.NoError(t, db.Model(&model.Order{}).Count(&orders).Error)
    assert.Zero(t, orders)
}

func TestPlaceOrderValidation(t *testing.T) {
    db := setupDB(t)
    a, b := seedProducts(t, db)
    svc := newOrderService(db, cache.NewMemory())
    ctx := context.Background()

    _, _, err := svc.PlaceOrder(ctx, PlaceOrderInput{PaymentMethod: model.PaymentCOD})
    assert.ErrorIs(t, err, ErrEmptyCart)

    in := twoLineCart(a, b)
    in.Lines[0].Quantity = 0
    _, _, err = svc.PlaceOrder(ctx, in)
    assert.ErrorIs(t, err, ErrBadQuantity)

    in = twoLineCart(a, b)
    in.PaymentMethod = "Barter"
    _, _, err = svc.PlaceOrder(ctx, in)
    assert.ErrorIs(t, err, ErrBadPaymentMethod)
}

func TestPlaceOrderIdempotentReplay(t *testing.T) {
    db := setupDB(t)
    a, b := seedProducts(t, db)
    svc := newOrderService(db, cache.NewMemory())
    ctx := context.Background()

    in := twoLineCart(a, b)
    in.IdempotencyKey = "checkout-abc"

    first, replayed, err := svc.PlaceOrder(ctx, in)
    require.NoError(t, err)
    assert.False(t, replayed)

    second, replayed, err := svc.PlaceOrder(ctx, in)
    require.NoError(t, err)
    assert.True(t, replayed)
    assert.Equal(t, first.ID, second.ID)

    // 只扣一次库存，只建一单
    var orders int64
    require.NoError(t, db.Model(&model.Order{}).Count(&orders).Error)
    assert.EqualValues(t, 1, orders)
    var pa model.Product
    require.NoError(t, db.First(&pa, a.ID).Error)
    assert.Equal(t, 8, pa.Stock)
}

func TestPlaceOrderSameMillisecondDistinctOrderNos(t *testing.T) {
    db := setupDB(t)
    a, _ := seedProducts(t, db)
    svc := newOrderService(db, cache.NewMemory())
    ctx := context.Background()

    // 紧邻下单大多落在同一毫秒，订单号仍须两两不同
    seen := make(map[string]bool)
    for i := 0; i < 8; i++ {
        in := PlaceOrderInput{
            Lines:           []CartLine{{ProductID: a.ID, Name: a.Name, Quantity: 1, UnitPrice: 100}},
            Total:           100,
            PaymentMethod:   model.PaymentCOD,
            ShippingAddress: json.RawMessage(`{}`),
        }
        order, _, err := svc.PlaceOrder(ctx, in)
        require.NoError(t, err, "order %d", i)
        assert.False(t, seen[order.OrderNo], "duplicate order no %s", order.OrderNo)
        seen[order.OrderNo] = true
    }
    assert.Len(t, seen, 8)
}

// racingOrderRepo 首次幂等预读强制未命中，模拟并发同键请求交错
type racingOrderRepo struct {
    repository.OrderRepository
    missed bool
}

func (r *racingOrderRepo) GetByIdempotencyKey(ctx context.Context, key string) (*model.Order, error) {
    if !r.missed {
        r.missed = true
        return nil, nil
    }
    return r.OrderRepository.GetByIdempotencyKey(ctx, key)
}

func TestPlaceOrderIdempotencyRace(t *testing.T) {
    db := setupDB(t)
    a, b := seedProducts(t, db)
    ctx := context.Background()

    in := twoLineCart(a, b)
    in.IdempotencyKey = "checkout-race"

    first, _, err := newOrderService(db, cache.NewMemory()).PlaceOrder(ctx, in)
    require.NoError(t, err)

    // 预读未命中 → 事务插入撞幂等键唯一索引 → 改走重放
    racer := NewOrderService(db, &racingOrderRepo{OrderRepository: repository.NewOrderRepository(db)}, cache.NewMemory(), nil)
    second, replayed, err := racer.PlaceOrder(ctx, in)
    require.NoError(t, err)
    assert.True(t, replayed)
    assert.Equal(t, first.ID, second.ID)

    var orders int64
    require.NoError(t, db.Model(&model.Order{}).Count(&orders).Error)
    assert.EqualValues(t, 1, orders)
    var pa model.Product
    require.NoError(t, db.First(&pa, a.ID).Error)
    assert.Equal(t, 8, pa.Stock) // 只扣一次库存
}

func TestSetStatus(t *testing.T) {
    db := setupDB(t)
    a, b := seedProducts(t, db)
    svc := newOrderService(db, cache.NewMemory())
    ctx := context.Background()

    order, _, err := svc.PlaceOrder(ctx, twoLineCart(a, b))
    require.NoError(t, err)

    _, err = svc.SetStatus(ctx, order.ID, "Teleported")
    assert.ErrorIs(t, err, ErrBadOrderStatus)

    updated, err := svc.SetStatus(ctx, order.ID, model.OrderStatusPaid)
    require.NoError(t, err)
    assert.True(t, updated.IsPaid)
    require.NotNil(t, updated.PaidAt)

    updated, err = svc.SetStatus(ctx, order.ID, model.OrderStatusDelivered)
    require.NoError(t, err)
    assert.True(t, updated.IsDelivered)
    require.NotNil(t, updated.DeliveredAt)
}
