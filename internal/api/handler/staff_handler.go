package handler

import (
    "errors"
    "strconv"
    "time"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/desi-delights/internal/api/middleware"
    "github.com/d60-Lab/desi-delights/internal/model"
    "github.com/d60-Lab/desi-delights/internal/service"
    "github.com/d60-Lab/desi-delights/pkg/response"
)

// CheckIn 员工当日签到
// @Summary 签到
// @Tags 员工
// @Success 201 {object} model.Attendance
// @Failure 409 {object} map[string]string
// @Router /api/staff/attendance/check-in [post]
func (h *Handler) CheckIn(c *gin.Context) {
    att, err := h.staff.CheckIn(c.Request.Context(), middleware.UserID(c))
    if err != nil {
        if errors.Is(err, service.ErrAlreadyCheckedIn) {
            response.Conflict(c, err.Error())
            return
        }
        response.InternalError(c, err)
        return
    }
    response.Created(c, att)
}

// CheckOut 员工当日签退
// @Summary 签退
// @Tags 员工
// @Success 200 {object} model.Attendance
// @Failure 404 {object} map[string]string
// @Router /api/staff/attendance/check-out [post]
func (h *Handler) CheckOut(c *gin.Context) {
    att, err := h.staff.CheckOut(c.Request.Context(), middleware.UserID(c))
    if err != nil {
        if errors.Is(err, service.ErrNoOpenAttendance) {
            response.NotFound(c, err.Error())
            return
        }
        response.InternalError(c, err)
        return
    }
    response.Success(c, att)
}

// ListAttendance 本人月度考勤
// @Summary 月度考勤
// @Tags 员工
// @Param month query string false "月份 YYYY-MM，默认当月"
// @Success 200 {array} model.Attendance
// @Router /api/staff/attendance [get]
func (h *Handler) ListAttendance(c *gin.Context) {
    month := c.DefaultQuery("month", time.Now().Format("2006-01"))
    rows, err := h.staff.ListAttendance(c.Request.Context(), middleware.UserID(c), month)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, rows)
}

type leaveRequestBody struct {
    FromDate string `json:"from_date" binding:"required"`
    ToDate   string `json:"to_date" binding:"required"`
    Reason   string `json:"reason" binding:"required"`
}

// RequestLeave 提交请假
// @Summary 请假申请
// @Tags 员工
// @Param request body leaveRequestBody true "请假单"
// @Success 201 {object} model.LeaveRequest
// @Router /api/staff/leaves [post]
func (h *Handler) RequestLeave(c *gin.Context) {
    var req leaveRequestBody
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    leave := &model.LeaveRequest{
        StaffID:  middleware.UserID(c),
        FromDate: req.FromDate,
        ToDate:   req.ToDate,
        Reason:   req.Reason,
    }
    if err := h.staff.RequestLeave(c.Request.Context(), leave); err != nil {
        response.InternalError(c, err)
        return
    }
    response.Created(c, leave)
}

// ListLeaves 请假列表；管理员看全部，员工看自己的
// @Summary 请假列表
// @Tags 员工
// @Success 200 {array} model.LeaveRequest
// @Router /api/staff/leaves [get]
func (h *Handler) ListLeaves(c *gin.Context) {
    staffID := middleware.UserID(c)
    if c.GetString(middleware.CtxRole) == model.RoleAdmin {
        staffID = 0 // 全部
    }
    rows, err := h.staff.ListLeaves(c.Request.Context(), staffID)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, rows)
}

type leaveDecisionBody struct {
    Decision string `json:"decision" binding:"required"`
}

// DecideLeave 审批请假
// @Summary 审批请假
// @Tags 员工
// @Param id path int true "请假单ID"
// @Param request body leaveDecisionBody true "Approved 或 Rejected"
// @Success 200 {object} model.LeaveRequest
// @Router /api/staff/leaves/{id}/decision [put]
func (h *Handler) DecideLeave(c *gin.Context) {
    id, err := strconv.ParseInt(c.Param("id"), 10, 64)
    if err != nil {
        response.BadRequest(c, "invalid leave id")
        return
    }
    var req leaveDecisionBody
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    leave, err := h.staff.DecideLeave(c.Request.Context(), id, middleware.UserID(c), req.Decision)
    if err != nil {
        if errors.Is(err, service.ErrBadLeaveDecision) {
            response.BadRequest(c, err.Error())
            return
        }
        response.InternalError(c, err)
        return
    }
    response.Success(c, leave)
}

// ListHolidays 假期表
// @Summary 假期表
// @Tags 员工
// @Success 200 {array} model.Holiday
// @Router /api/staff/holidays [get]
func (h *Handler) ListHolidays(c *gin.Context) {
    rows, err := h.staff.ListHolidays(c.Request.Context())
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, rows)
}

type holidayBody struct {
    Name string `json:"name" binding:"required"`
    Date string `json:"date" binding:"required"`
}

// AddHoliday 管理端新增假期
// @Summary 新增假期
// @Tags 员工
// @Param request body holidayBody true "假期"
// @Success 201 {object} model.Holiday
// @Router /api/staff/holidays [post]
func (h *Handler) AddHoliday(c *gin.Context) {
    var req holidayBody
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    holiday := &model.Holiday{Name: req.Name, Date: req.Date}
    if err := h.staff.AddHoliday(c.Request.Context(), holiday); err != nil {
        response.InternalError(c, err)
        return
    }
    response.Created(c, holiday)
}
