package handler

import (
    "errors"
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/desi-delights/internal/api/middleware"
    "github.com/d60-Lab/desi-delights/internal/model"
    "github.com/d60-Lab/desi-delights/internal/service"
    "github.com/d60-Lab/desi-delights/pkg/response"
)

type reviewRequest struct {
    Rating  int    `json:"rating" binding:"required,min=1,max=5"`
    Comment string `json:"comment"`
}

// AddReview 新增商品评价
// @Summary 评价商品
// @Tags 评价
// @Param id path int true "商品ID"
// @Param request body reviewRequest true "评价"
// @Success 201 {object} model.Review
// @Failure 409 {object} map[string]string
// @Router /api/products/{id}/reviews [post]
func (h *Handler) AddReview(c *gin.Context) {
    productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
    if err != nil {
        response.BadRequest(c, "invalid product id")
        return
    }
    var req reviewRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    userID := middleware.UserID(c)
    userName := ""
    if u, err := h.auth.GetUser(c.Request.Context(), userID); err == nil {
        userName = u.Name
    }
    review := &model.Review{
        ProductID: productID,
        UserID:    userID,
        UserName:  userName,
        Rating:    req.Rating,
        Comment:   req.Comment,
    }
    if err := h.reviews.Add(c.Request.Context(), review); err != nil {
        switch {
        case errors.Is(err, service.ErrDuplicateReview):
            response.Conflict(c, err.Error())
        case errors.Is(err, service.ErrBadRating):
            response.BadRequest(c, err.Error())
        default:
            response.InternalError(c, err)
        }
        return
    }
    response.Created(c, review)
}

// ListReviews 商品评价列表
// @Summary 商品评价
// @Tags 评价
// @Param id path int true "商品ID"
// @Success 200 {array} model.Review
// @Router /api/products/{id}/reviews [get]
func (h *Handler) ListReviews(c *gin.Context) {
    productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
    if err != nil {
        response.BadRequest(c, "invalid product id")
        return
    }
    rows, err := h.reviews.ListByProduct(c.Request.Context(), productID)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, rows)
}
