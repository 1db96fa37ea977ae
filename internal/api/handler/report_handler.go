package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/desi-delights/pkg/response"
)

// ReportSummary 管理后台汇总
// @Summary 后台汇总报表
// @Tags 报表
// @Success 200 {object} service.ReportSummary
// @Router /api/admin/reports/summary [get]
func (h *Handler) ReportSummary(c *gin.Context) {
    summary, err := h.reports.Summary(c.Request.Context())
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, summary)
}
