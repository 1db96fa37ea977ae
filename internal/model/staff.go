package model

import "time"

// 请假状态
const (
    LeavePending  = "Pending"
    LeaveApproved = "Approved"
    LeaveRejected = "Rejected"
)

// Attendance 员工考勤；每人每天一行
type Attendance struct {
    ID       int64      `json:"id" gorm:"primaryKey;autoIncrement"`
    StaffID  int64      `json:"staff_id" gorm:"index:idx_att_staff_date,unique;not null"`
    Date     string     `json:"date" gorm:"type:varchar(10);index:idx_att_staff_date,unique;not null"` // YYYY-MM-DD
    CheckIn  time.Time  `json:"check_in"`
    CheckOut *time.Time `json:"check_out"`
}

func (Attendance) TableName() string { return "attendances" }

// LeaveRequest 请假申请
type LeaveRequest struct {
    ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
    StaffID   int64     `json:"staff_id" gorm:"index;not null"`
    FromDate  string    `json:"from_date" gorm:"type:varchar(10);not null"`
    ToDate    string    `json:"to_date" gorm:"type:varchar(10);not null"`
    Reason    string    `json:"reason" gorm:"type:text"`
    Status    string    `json:"status" gorm:"type:varchar(16);not null;default:Pending;index"`
    DecidedBy int64     `json:"decided_by"`
    CreatedAt time.Time `json:"created_at"`
}

func (LeaveRequest) TableName() string { return "leave_requests" }

// Holiday 公司假期
type Holiday struct {
    ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
    Name string `json:"name" gorm:"type:varchar(100);not null"`
    Date string `json:"date" gorm:"type:varchar(10);uniqueIndex;not null"`
}

func (Holiday) TableName() string { return "holidays" }
