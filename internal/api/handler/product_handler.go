package handler

import (
    "errors"
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/desi-delights/internal/model"
    "github.com/d60-Lab/desi-delights/internal/repository"
    "github.com/d60-Lab/desi-delights/internal/service"
    "github.com/d60-Lab/desi-delights/pkg/response"
)

// ListProducts 商品列表
// @Summary 商品列表
// @Tags 商品
// @Param category query int false "分类ID"
// @Param brand query int false "品牌ID"
// @Param q query string false "名称模糊查询"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {array} model.Product
// @Router /api/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
    page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
    pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
    if page < 1 {
        page = 1
    }
    categoryID, _ := strconv.ParseInt(c.Query("category"), 10, 64)
    brandID, _ := strconv.ParseInt(c.Query("brand"), 10, 64)

    rows, err := h.products.List(c.Request.Context(), repository.ProductFilter{
        CategoryID: categoryID,
        BrandID:    brandID,
        Query:      c.Query("q"),
        Offset:     (page - 1) * pageSize,
        Limit:      pageSize,
    })
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, rows)
}

// GetProduct 商品详情
// @Summary 商品详情
// @Tags 商品
// @Param id path int true "商品ID"
// @Success 200 {object} model.Product
// @Router /api/products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
    id, err := strconv.ParseInt(c.Param("id"), 10, 64)
    if err != nil {
        response.BadRequest(c, "invalid product id")
        return
    }
    p, err := h.products.Get(c.Request.Context(), id)
    if err != nil {
        response.NotFound(c, "product not found")
        return
    }
    response.Success(c, p)
}

// BestSelling 热销榜（短 TTL 缓存）
// @Summary 热销商品
// @Tags 商品
// @Success 200 {array} model.Product
// @Router /api/products/best-selling [get]
func (h *Handler) BestSelling(c *gin.Context) {
    rows, err := h.products.BestSelling(c.Request.Context())
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, rows)
}

// SeasonalProducts 季节商品；非法季节 400
// @Summary 季节商品
// @Tags 商品
// @Param season path string true "季节" Enums(All, Summer, Winter, Festival)
// @Success 200 {array} model.Product
// @Failure 400 {object} map[string]string
// @Router /api/products/season/{season} [get]
func (h *Handler) SeasonalProducts(c *gin.Context) {
    rows, err := h.products.Seasonal(c.Request.Context(), c.Param("season"))
    if err != nil {
        if errors.Is(err, service.ErrBadSeason) {
            response.BadRequest(c, err.Error())
            return
        }
        response.InternalError(c, err)
        return
    }
    response.Success(c, rows)
}

type productRequest struct {
    Name          string  `json:"name" binding:"required"`
    BrandID       int64   `json:"brand_id"`
    CategoryID    int64   `json:"category_id"`
    Description   string  `json:"description"`
    Image         string  `json:"image"`
    Price         float64 `json:"price" binding:"required,gt=0"`
    DiscountPrice float64 `json:"discountPrice" binding:"omitempty,gte=0"`
    Stock         int     `json:"stock" binding:"gte=0"`
    BestSelling   bool    `json:"best_selling"`
    Season        string  `json:"season" binding:"omitempty,season"`
}

func (r productRequest) toModel() *model.Product {
    season := r.Season
    if season == "" {
        season = model.SeasonAll
    }
    return &model.Product{
        Name:          r.Name,
        BrandID:       r.BrandID,
        CategoryID:    r.CategoryID,
        Description:   r.Description,
        Image:         r.Image,
        Price:         r.Price,
        DiscountPrice: r.DiscountPrice,
        Stock:         r.Stock,
        BestSelling:   r.BestSelling,
        Season:        season,
    }
}

// CreateProduct 管理端新建商品
// @Summary 新建商品
// @Tags 商品
// @Accept json
// @Param request body productRequest true "商品"
// @Success 201 {object} model.Product
// @Router /api/products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
    var req productRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    p := req.toModel()
    if err := h.products.Create(c.Request.Context(), p); err != nil {
        response.InternalError(c, err)
        return
    }
    response.Created(c, p)
}

// UpdateProduct 管理端更新商品
// @Summary 更新商品
// @Tags 商品
// @Param id path int true "商品ID"
// @Param request body productRequest true "商品"
// @Success 200 {object} model.Product
// @Router /api/products/{id} [put]
func (h *Handler) UpdateProduct(c *gin.Context) {
    id, err := strconv.ParseInt(c.Param("id"), 10, 64)
    if err != nil {
        response.BadRequest(c, "invalid product id")
        return
    }
    existing, err := h.products.Get(c.Request.Context(), id)
    if err != nil {
        response.NotFound(c, "product not found")
        return
    }
    var req productRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    p := req.toModel()
    p.ID = existing.ID
    p.TotalSales = existing.TotalSales
    p.Rating = existing.Rating
    p.NumReviews = existing.NumReviews
    p.CreatedAt = existing.CreatedAt
    if err := h.products.Update(c.Request.Context(), p); err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, p)
}

// DeleteProduct 管理端删除商品
// @Summary 删除商品
// @Tags 商品
// @Param id path int true "商品ID"
// @Success 200 {object} map[string]string
// @Router /api/products/{id} [delete]
func (h *Handler) DeleteProduct(c *gin.Context) {
    id, err := strconv.ParseInt(c.Param("id"), 10, 64)
    if err != nil {
        response.BadRequest(c, "invalid product id")
        return
    }
    if err := h.products.Delete(c.Request.Context(), id); err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, gin.H{"message": "deleted"})
}

// ListBrands 品牌列表
// @Summary 品牌列表
// @Tags 商品
// @Success 200 {array} model.Brand
// @Router /api/brands [get]
func (h *Handler) ListBrands(c *gin.Context) {
    rows, err := h.catalog.ListBrands(c.Request.Context())
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, rows)
}

type nameRequest struct {
    Name string `json:"name" binding:"required"`
}

// CreateBrand 管理端新建品牌
// @Summary 新建品牌
// @Tags 商品
// @Param request body nameRequest true "品牌"
// @Success 201 {object} model.Brand
// @Router /api/brands [post]
func (h *Handler) CreateBrand(c *gin.Context) {
    var req nameRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    b := &model.Brand{Name: req.Name}
    if err := h.catalog.CreateBrand(c.Request.Context(), b); err != nil {
        response.InternalError(c, err)
        return
    }
    response.Created(c, b)
}

// ListCategories 分类列表
// @Summary 分类列表
// @Tags 商品
// @Success 200 {array} model.Category
// @Router /api/categories [get]
func (h *Handler) ListCategories(c *gin.Context) {
    rows, err := h.catalog.ListCategories(c.Request.Context())
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, rows)
}

// CreateCategory 管理端新建分类
// @Summary 新建分类
// @Tags 商品
// @Param request body nameRequest true "分类"
// @Success 201 {object} model.Category
// @Router /api/categories [post]
func (h *Handler) CreateCategory(c *gin.Context) {
    var req nameRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    cat := &model.Category{Name: req.Name}
    if err := h.catalog.CreateCategory(c.Request.Context(), cat); err != nil {
        response.InternalError(c, err)
        return
    }
    response.Created(c, cat)
}
