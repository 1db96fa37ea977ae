package service

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/desi-delights/internal/cache"
    "github.com/d60-Lab/desi-delights/internal/model"
    "github.com/d60-Lab/desi-delights/internal/repository"
)

// countingProductRepo 记录回源次数
type countingProductRepo struct {
    repository.ProductRepository
    bestSellingCalls int
    seasonalCalls    int
}

func (r *countingProductRepo) BestSelling(ctx context.Context, pageSize int) ([]*model.Product, error) {
    r.bestSellingCalls++
    return r.ProductRepository.BestSelling(ctx, pageSize)
}

func (r *countingProductRepo) Seasonal(ctx context.Context, season string, pageSize int) ([]*model.Product, error) {
    r.seasonalCalls++
    return r.ProductRepository.Seasonal(ctx, season, pageSize)
}

func TestBestSellingServedFromCacheWithinTTL(t *testing.T) {
    db := setupDB(t)
    require.NoError(t, db.Create(&model.Product{Name: "Ladoo", Price: 10, BestSelling: true, TotalSales: 7, Season: model.SeasonAll}).Error)

    repo := &countingProductRepo{ProductRepository: repository.NewProductRepository(db)}
    svc := NewProductService(repo, cache.NewMemory(), time.Minute)
    ctx := context.Background()

    first, err := svc.BestSelling(ctx)
    require.NoError(t, err)
    require.Len(t, first, 1)
    assert.Equal(t, 1, repo.bestSellingCalls)

    // TTL 内第二次读取不回源，返回同样内容
    second, err := svc.BestSelling(ctx)
    require.NoError(t, err)
    assert.Equal(t, 1, repo.bestSellingCalls)
    require.Len(t, second, 1)
    assert.Equal(t, first[0].ID, second[0].ID)
    assert.Equal(t, first[0].TotalSales, second[0].TotalSales)
}

func TestSeasonalRejectsUnknownSeasonBeforeStore(t *testing.T) {
    db := setupDB(t)
    repo := &countingProductRepo{ProductRepository: repository.NewProductRepository(db)}
    svc := NewProductService(repo, cache.NewMemory(), time.Minute)

    _, err := svc.Seasonal(context.Background(), "banana")
    assert.ErrorIs(t, err, ErrBadSeason)
    assert.Zero(t, repo.seasonalCalls, "invalid season must not reach the store")
}

func TestSeasonalCaseNormalizedAndCached(t *testing.T) {
    db := setupDB(t)
    require.NoError(t, db.Create(&model.Product{Name: "Thandai", Price: 30, Season: model.SeasonSummer}).Error)
    require.NoError(t, db.Create(&model.Product{Name: "Mixture", Price: 20, Season: model.SeasonAll}).Error)
    require.NoError(t, db.Create(&model.Product{Name: "Gajak", Price: 25, Season: model.SeasonWinter}).Error)

    repo := &countingProductRepo{ProductRepository: repository.NewProductRepository(db)}
    svc := NewProductService(repo, cache.NewMemory(), time.Minute)
    ctx := context.Background()

    rows, err := svc.Seasonal(ctx, "sUmMeR")
    require.NoError(t, err)
    require.Len(t, rows, 2) // Summer + All 标签
    assert.Equal(t, 1, repo.seasonalCalls)

    _, err = svc.Seasonal(ctx, "Summer")
    require.NoError(t, err)
    assert.Equal(t, 1, repo.seasonalCalls, "second read within TTL should hit cache")
}

func TestProductWritesInvalidateCache(t *testing.T) {
    db := setupDB(t)
    store := cache.NewMemory()
    repo := &countingProductRepo{ProductRepository: repository.NewProductRepository(db)}
    svc := NewProductService(repo, store, time.Minute)
    ctx := context.Background()

    _, err := svc.BestSelling(ctx)
    require.NoError(t, err)
    _, ok := store.Get(ctx, cache.KeyBestSelling)
    require.True(t, ok)

    require.NoError(t, svc.Create(ctx, &model.Product{Name: "Barfi", Price: 40, Season: model.SeasonAll}))
    _, ok = store.Get(ctx, cache.KeyBestSelling)
    assert.False(t, ok, "product write must invalidate merchandising keys")
}

func TestCreateRejectsBadSeason(t *testing.T) {
    db := setupDB(t)
    repo := &countingProductRepo{ProductRepository: repository.NewProductRepository(db)}
    svc := NewProductService(repo, cache.NewMemory(), time.Minute)

    err := svc.Create(context.Background(), &model.Product{Name: "X", Price: 1, Season: "Monsoon"})
    assert.ErrorIs(t, err, ErrBadSeason)
}
