package service

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/desi-delights/internal/model"
)

func TestAddReviewUpdatesAggregates(t *testing.T) {
    db := setupDB(t)
    p := model.Product{Name: "Jalebi", Price: 20, Season: model.SeasonAll}
    require.NoError(t, db.Create(&p).Error)
    svc := NewReviewService(db)
    ctx := context.Background()

    require.NoError(t, svc.Add(ctx, &model.Review{ProductID: p.ID, UserID: 1, Rating: 5, Comment: "great"}))
    require.NoError(t, svc.Add(ctx, &model.Review{ProductID: p.ID, UserID: 2, Rating: 3}))

    var got model.Product
    require.NoError(t, db.First(&got, p.ID).Error)
    assert.Equal(t, 2, got.NumReviews)
    assert.InDelta(t, 4.0, got.Rating, 0.001)
}

func TestAddReviewDuplicateRejected(t *testing.T) {
    db := setupDB(t)
    p := model.Product{Name: "Jalebi", Price: 20, Season: model.SeasonAll}
    require.NoError(t, db.Create(&p).Error)
    svc := NewReviewService(db)
    ctx := context.Background()

    require.NoError(t, svc.Add(ctx, &model.Review{ProductID: p.ID, UserID: 1, Rating: 5}))
    err := svc.Add(ctx, &model.Review{ProductID: p.ID, UserID: 1, Rating: 1})
    assert.ErrorIs(t, err, ErrDuplicateReview)

    var cnt int64
    require.NoError(t, db.Model(&model.Review{}).Count(&cnt).Error)
    assert.EqualValues(t, 1, cnt)
}

func TestAddReviewBadRating(t *testing.T) {
    db := setupDB(t)
    svc := NewReviewService(db)
    err := svc.Add(context.Background(), &model.Review{ProductID: 1, UserID: 1, Rating: 6})
    assert.ErrorIs(t, err, ErrBadRating)
}
