package repository

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/desi-delights/internal/model"
)

func TestGetByIdempotencyKey(t *testing.T) {
    db := setupRepoDB(t)
    repo := NewOrderRepository(db)
    ctx := context.Background()

    miss, err := repo.GetByIdempotencyKey(ctx, "nope")
    require.NoError(t, err)
    assert.Nil(t, miss)

    key := "checkout-1"
    order := &model.Order{OrderNo: "ORD-1", Total: 10, Status: model.OrderStatusPending, PaymentMethod: model.PaymentCOD, IdempotencyKey: &key}
    require.NoError(t, db.Create(order).Error)

    hit, err := repo.GetByIdempotencyKey(ctx, key)
    require.NoError(t, err)
    require.NotNil(t, hit)
    assert.Equal(t, order.ID, hit.ID)
}

func TestListByUserNewestFirst(t *testing.T) {
    db := setupRepoDB(t)
    repo := NewOrderRepository(db)
    ctx := context.Background()

    old := &model.Order{OrderNo: "ORD-10", UserID: 3, Total: 10, Status: model.OrderStatusPending, PaymentMethod: model.PaymentCOD, CreatedAt: time.Now().Add(-time.Hour)}
    recent := &model.Order{OrderNo: "ORD-11", UserID: 3, Total: 20, Status: model.OrderStatusPending, PaymentMethod: model.PaymentCOD, CreatedAt: time.Now()}
    other := &model.Order{OrderNo: "ORD-12", UserID: 4, Total: 30, Status: model.OrderStatusPending, PaymentMethod: model.PaymentCOD}
    require.NoError(t, db.Create(old).Error)
    require.NoError(t, db.Create(recent).Error)
    require.NoError(t, db.Create(other).Error)

    rows, err := repo.ListByUser(ctx, 3, 10)
    require.NoError(t, err)
    require.Len(t, rows, 2)
    assert.Equal(t, "ORD-11", rows[0].OrderNo)
    assert.Equal(t, "ORD-10", rows[1].OrderNo)
}

func TestGetByIDPreloadsItems(t *testing.T) {
    db := setupRepoDB(t)
    repo := NewOrderRepository(db)

    order := &model.Order{OrderNo: "ORD-20", Total: 50, Status: model.OrderStatusPending, PaymentMethod: model.PaymentCOD}
    require.NoError(t, db.Create(order).Error)
    require.NoError(t, db.Create(&model.OrderItem{OrderID: order.ID, ProductID: 1, Name: "x", Quantity: 2, UnitPrice: 25}).Error)

    got, err := repo.GetByID(context.Background(), order.ID)
    require.NoError(t, err)
    require.Len(t, got.Items, 1)
    assert.Equal(t, 2, got.Items[0].Quantity)
}
