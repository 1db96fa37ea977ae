package service

import (
    "context"
    "errors"
    "time"

    "gorm.io/gorm"

    "github.com/d60-Lab/desi-delights/internal/model"
)

var (
    ErrAlreadyCheckedIn = errors.New("already checked in today")
    ErrNoOpenAttendance = errors.New("no open attendance for today")
    ErrBadLeaveDecision = errors.New("decision must be Approved or Rejected")
)

// StaffService 员工考勤 / 请假 / 假期
type StaffService struct {
    db *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService { return &StaffService{db: db} }

func today() string { return time.Now().Format("2006-01-02") }

// CheckIn 当日签到；重复签到报错
func (s *StaffService) CheckIn(ctx context.Context, staffID int64) (*model.Attendance, error) {
    var cnt int64
    if err := s.db.WithContext(ctx).Model(&model.Attendance{}).
        Where("staff_id = ? AND date = ?", staffID, today()).
        Count(&cnt).Error; err != nil {
        return nil, err
    }
    if cnt > 0 {
        return nil, ErrAlreadyCheckedIn
    }
    att := &model.Attendance{StaffID: staffID, Date: today(), CheckIn: time.Now()}
    if err := s.db.WithContext(ctx).Create(att).Error; err != nil {
        return nil, err
    }
    return att, nil
}

// CheckOut 当日签退；没有未签退记录时报错
func (s *StaffService) CheckOut(ctx context.Context, staffID int64) (*model.Attendance, error) {
    var att model.Attendance
    err := s.db.WithContext(ctx).
        Where("staff_id = ? AND date = ? AND check_out IS NULL", staffID, today()).
        First(&att).Error
    if errors.Is(err, gorm.ErrRecordNotFound) {
        return nil, ErrNoOpenAttendance
    }
    if err != nil {
        return nil, err
    }
    now := time.Now()
    att.CheckOut = &now
    if err := s.db.WithContext(ctx).Model(&att).Update("check_out", &now).Error; err != nil {
        return nil, err
    }
    return &att, nil
}

// ListAttendance 某员工某月考勤（month 形如 2026-08）
func (s *StaffService) ListAttendance(ctx context.Context, staffID int64, month string) ([]*model.Attendance, error) {
    var res []*model.Attendance
    err := s.db.WithContext(ctx).
        Where("staff_id = ? AND date LIKE ?", staffID, month+"%").
        Order("date").
        Find(&res).Error
    return res, err
}

// RequestLeave 提交请假申请
func (s *StaffService) RequestLeave(ctx context.Context, req *model.LeaveRequest) error {
    req.Status = model.LeavePending
    return s.db.WithContext(ctx).Create(req).Error
}

// ListLeaves staffID=0 时返回全部（管理端）
func (s *StaffService) ListLeaves(ctx context.Context, staffID int64) ([]*model.LeaveRequest, error) {
    q := s.db.WithContext(ctx).Model(&model.LeaveRequest{})
    if staffID > 0 {
        q = q.Where("staff_id = ?", staffID)
    }
    var res []*model.LeaveRequest
    err := q.Order("created_at DESC").Find(&res).Error
    return res, err
}

// DecideLeave 审批请假
func (s *StaffService) DecideLeave(ctx context.Context, id, adminID int64, decision string) (*model.LeaveRequest, error) {
    if decision != model.LeaveApproved && decision != model.LeaveRejected {
        return nil, ErrBadLeaveDecision
    }
    var req model.LeaveRequest
    if err := s.db.WithContext(ctx).First(&req, id).Error; err != nil {
        return nil, err
    }
    req.Status = decision
    req.DecidedBy = adminID
    if err := s.db.WithContext(ctx).Model(&req).
        Updates(map[string]interface{}{"status": decision, "decided_by": adminID}).Error; err != nil {
        return nil, err
    }
    return &req, nil
}

// ListHolidays 假期表
func (s *StaffService) ListHolidays(ctx context.Context) ([]*model.Holiday, error) {
    var res []*model.Holiday
    err := s.db.WithContext(ctx).Order("date").Find(&res).Error
    return res, err
}

// AddHoliday 新增假期
func (s *StaffService) AddHoliday(ctx context.Context, h *model.Holiday) error {
    return s.db.WithContext(ctx).Create(h).Error
}
