package handler

import (
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/desi-delights/internal/model"
    "github.com/d60-Lab/desi-delights/pkg/response"
)

type inquiryBody struct {
    Name    string `json:"name" binding:"required"`
    Email   string `json:"email" binding:"required,email"`
    Subject string `json:"subject"`
    Message string `json:"message" binding:"required"`
}

// CreateInquiry 提交咨询（公开）
// @Summary 提交咨询
// @Tags 咨询
// @Param request body inquiryBody true "咨询内容"
// @Success 201 {object} model.Inquiry
// @Router /api/inquiries [post]
func (h *Handler) CreateInquiry(c *gin.Context) {
    var req inquiryBody
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    inq := &model.Inquiry{Name: req.Name, Email: req.Email, Subject: req.Subject, Message: req.Message}
    if err := h.inquiry.Create(c.Request.Context(), inq); err != nil {
        response.InternalError(c, err)
        return
    }
    response.Created(c, inq)
}

// ListInquiries 管理端工单列表
// @Summary 咨询列表
// @Tags 咨询
// @Success 200 {array} model.Inquiry
// @Router /api/inquiries [get]
func (h *Handler) ListInquiries(c *gin.Context) {
    rows, err := h.inquiry.List(c.Request.Context())
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, rows)
}

// ResolveInquiry 标记工单已解决
// @Summary 解决咨询
// @Tags 咨询
// @Param id path int true "工单ID"
// @Success 200 {object} model.Inquiry
// @Router /api/inquiries/{id}/resolve [put]
func (h *Handler) ResolveInquiry(c *gin.Context) {
    id, err := strconv.ParseInt(c.Param("id"), 10, 64)
    if err != nil {
        response.BadRequest(c, "invalid inquiry id")
        return
    }
    inq, err := h.inquiry.Resolve(c.Request.Context(), id)
    if err != nil {
        response.NotFound(c, "inquiry not found")
        return
    }
    response.Success(c, inq)
}
