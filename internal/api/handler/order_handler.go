package handler

import (
    "encoding/json"
    "errors"
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/desi-delights/internal/api/middleware"
    "github.com/d60-Lab/desi-delights/internal/invoice"
    "github.com/d60-Lab/desi-delights/internal/model"
    "github.com/d60-Lab/desi-delights/internal/service"
    "github.com/d60-Lab/desi-delights/pkg/response"
)

type orderItemRequest struct {
    ID                  int64   `json:"id" binding:"required"`
    Name                string  `json:"name" binding:"required"`
    Quantity            int     `json:"quantity" binding:"required,gt=0"`
    Image               string  `json:"image"`
    Price               float64 `json:"price"`
    DiscountPrice       float64 `json:"discountPrice"`
    SelectedVariantID   *int64  `json:"selectedVariantId"`
    SelectedVariantName string  `json:"selectedVariantName"`
}

// unitPrice 有折扣价取折扣价
func (r orderItemRequest) unitPrice() float64 {
    if r.DiscountPrice > 0 {
        return r.DiscountPrice
    }
    return r.Price
}

type createOrderRequest struct {
    Items           []orderItemRequest `json:"items" binding:"required,min=1,dive"`
    Total           float64            `json:"total" binding:"required"`
    PaymentMethod   string             `json:"paymentMethod" binding:"required"`
    ShippingAddress json.RawMessage    `json:"shippingAddress" binding:"required"`
    IdempotencyKey  string             `json:"idempotencyKey"`
}

type orderCreatedResponse struct {
    ID      int64  `json:"id"`
    OrderNo string `json:"order_no"`
    Status  string `json:"status"`
    Message string `json:"message"`
}

// CreateOrder 下单（游客可用）
// @Summary 下单
// @Tags 订单
// @Accept json
// @Produce json
// @Param request body createOrderRequest true "购物车"
// @Success 201 {object} orderCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/orders [post]
func (h *Handler) CreateOrder(c *gin.Context) {
    var req createOrderRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }

    lines := make([]service.CartLine, len(req.Items))
    for i, it := range req.Items {
        lines[i] = service.CartLine{
            ProductID:   it.ID,
            Name:        it.Name,
            Image:       it.Image,
            Quantity:    it.Quantity,
            UnitPrice:   it.unitPrice(),
            VariantID:   it.SelectedVariantID,
            VariantName: it.SelectedVariantName,
        }
    }

    order, replayed, err := h.orders.PlaceOrder(c.Request.Context(), service.PlaceOrderInput{
        UserID:          middleware.UserID(c),
        Lines:           lines,
        Total:           req.Total,
        PaymentMethod:   req.PaymentMethod,
        ShippingAddress: req.ShippingAddress,
        IdempotencyKey:  req.IdempotencyKey,
    })
    if err != nil {
        switch {
        case errors.Is(err, service.ErrInsufficientStock):
            response.Conflict(c, err.Error())
        case errors.Is(err, service.ErrEmptyCart),
            errors.Is(err, service.ErrBadQuantity),
            errors.Is(err, service.ErrBadPaymentMethod),
            errors.Is(err, service.ErrTotalMismatch):
            response.BadRequest(c, err.Error())
        default:
            response.InternalError(c, err)
        }
        return
    }

    body := orderCreatedResponse{ID: order.ID, OrderNo: order.OrderNo, Status: order.Status, Message: "order placed"}
    if replayed {
        body.Message = "order already placed"
        response.Success(c, body)
        return
    }
    response.Created(c, body)
}

// ListMyOrders 当前用户订单列表
// @Summary 我的订单
// @Tags 订单
// @Produce json
// @Success 200 {array} model.Order
// @Router /api/orders/mine [get]
func (h *Handler) ListMyOrders(c *gin.Context) {
    orders, err := h.orders.ListMine(c.Request.Context(), middleware.UserID(c))
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, orders)
}

// loadOwnedOrder 取订单并校验归属（本人或管理员）
func (h *Handler) loadOwnedOrder(c *gin.Context) *model.Order {
    id, err := strconv.ParseInt(c.Param("id"), 10, 64)
    if err != nil {
        response.BadRequest(c, "invalid order id")
        return nil
    }
    order, err := h.orders.Get(c.Request.Context(), id)
    if err != nil {
        response.NotFound(c, "order not found")
        return nil
    }
    role := c.GetString(middleware.CtxRole)
    if role != model.RoleAdmin && order.UserID != middleware.UserID(c) {
        response.Forbidden(c, "not your order")
        return nil
    }
    return order
}

// GetOrder 订单详情
// @Summary 订单详情
// @Tags 订单
// @Param id path int true "订单ID"
// @Success 200 {object} model.Order
// @Failure 403 {object} map[string]string
// @Router /api/orders/{id} [get]
func (h *Handler) GetOrder(c *gin.Context) {
    if order := h.loadOwnedOrder(c); order != nil {
        response.Success(c, order)
    }
}

type setStatusRequest struct {
    Status string `json:"status" binding:"required"`
}

// SetOrderStatus 管理端状态流转
// @Summary 更新订单状态
// @Tags 订单
// @Param id path int true "订单ID"
// @Param request body setStatusRequest true "目标状态"
// @Success 200 {object} model.Order
// @Failure 400 {object} map[string]string
// @Router /api/orders/{id}/status [put]
func (h *Handler) SetOrderStatus(c *gin.Context) {
    id, err := strconv.ParseInt(c.Param("id"), 10, 64)
    if err != nil {
        response.BadRequest(c, "invalid order id")
        return
    }
    var req setStatusRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    order, err := h.orders.SetStatus(c.Request.Context(), id, req.Status)
    if err != nil {
        if errors.Is(err, service.ErrBadOrderStatus) {
            response.BadRequest(c, err.Error())
            return
        }
        response.InternalError(c, err)
        return
    }
    response.Success(c, order)
}

// GetInvoice 下载订单发票 PDF
// @Summary 订单发票
// @Tags 订单
// @Param id path int true "订单ID"
// @Produce application/pdf
// @Success 200 {file} binary
// @Router /api/orders/{id}/invoice [get]
func (h *Handler) GetInvoice(c *gin.Context) {
    order := h.loadOwnedOrder(c)
    if order == nil {
        return
    }
    c.Header("Content-Type", "application/pdf")
    c.Header("Content-Disposition", "attachment; filename="+order.OrderNo+".pdf")
    if err := invoice.Render(c.Writer, order); err != nil {
        response.InternalError(c, err)
    }
}
