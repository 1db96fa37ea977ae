package service

import (
    "context"
    "encoding/json"
    "errors"
    "strings"
    "time"

    "github.com/d60-Lab/desi-delights/internal/cache"
    "github.com/d60-Lab/desi-delights/internal/model"
    "github.com/d60-Lab/desi-delights/internal/repository"
)

var ErrBadSeason = errors.New("unknown season")

// ProductService 商品读写 + 推荐位缓存
type ProductService struct {
    products repository.ProductRepository
    cache    cache.Store
    ttl      time.Duration
}

func NewProductService(products repository.ProductRepository, c cache.Store, ttl time.Duration) *ProductService {
    if ttl <= 0 {
        ttl = 5 * time.Minute
    }
    return &ProductService{products: products, cache: c, ttl: ttl}
}

// BestSelling 热销榜，缓存命中时不回源
func (s *ProductService) BestSelling(ctx context.Context) ([]*model.Product, error) {
    if data, ok := s.cache.Get(ctx, cache.KeyBestSelling); ok {
        var out []*model.Product
        if err := json.Unmarshal(data, &out); err == nil {
            return out, nil
        }
    }
    rows, err := s.products.BestSelling(ctx, repository.BestSellingPageSize)
    if err != nil {
        return nil, err
    }
    if payload, err := json.Marshal(rows); err == nil {
        s.cache.Set(ctx, cache.KeyBestSelling, payload, s.ttl)
    }
    return rows, nil
}

// Seasonal 季节商品；非法季节在任何存储访问之前拒绝
func (s *ProductService) Seasonal(ctx context.Context, season string) ([]*model.Product, error) {
    normalized, ok := model.NormalizeSeason(season)
    if !ok {
        return nil, ErrBadSeason
    }
    key := cache.KeySeasonPrefix + strings.ToLower(normalized)
    if data, ok := s.cache.Get(ctx, key); ok {
        var out []*model.Product
        if err := json.Unmarshal(data, &out); err == nil {
            return out, nil
        }
    }
    rows, err := s.products.Seasonal(ctx, normalized, repository.SeasonalPageSize)
    if err != nil {
        return nil, err
    }
    if payload, err := json.Marshal(rows); err == nil {
        s.cache.Set(ctx, key, payload, s.ttl)
    }
    return rows, nil
}

// Get 商品详情
func (s *ProductService) Get(ctx context.Context, id int64) (*model.Product, error) {
    return s.products.GetByID(ctx, id)
}

// List 商品列表
func (s *ProductService) List(ctx context.Context, f repository.ProductFilter) ([]*model.Product, error) {
    return s.products.List(ctx, f)
}

// Create 新建商品并失效推荐位缓存
func (s *ProductService) Create(ctx context.Context, p *model.Product) error {
    if _, ok := model.NormalizeSeason(p.Season); !ok {
        return ErrBadSeason
    }
    if err := s.products.Create(ctx, p); err != nil {
        return err
    }
    s.cache.Delete(ctx, cache.MerchandisingKeys()...)
    return nil
}

// Update 更新商品并失效推荐位缓存
func (s *ProductService) Update(ctx context.Context, p *model.Product) error {
    if _, ok := model.NormalizeSeason(p.Season); !ok {
        return ErrBadSeason
    }
    if err := s.products.Update(ctx, p); err != nil {
        return err
    }
    s.cache.Delete(ctx, cache.MerchandisingKeys()...)
    return nil
}

// Delete 删除商品并失效推荐位缓存
func (s *ProductService) Delete(ctx context.Context, id int64) error {
    if err := s.products.Delete(ctx, id); err != nil {
        return err
    }
    s.cache.Delete(ctx, cache.MerchandisingKeys()...)
    return nil
}
