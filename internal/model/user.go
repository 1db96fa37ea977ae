package model

import "time"

// 用户角色
const (
    RoleCustomer = "customer"
    RoleStaff    = "staff"
    RoleAdmin    = "admin"
)

// User 用户（顾客 / 员工 / 管理员）
type User struct {
    ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
    Name      string    `json:"name" gorm:"type:varchar(100);not null"`
    Email     string    `json:"email" gorm:"type:varchar(191);uniqueIndex;not null"`
    Password  string    `json:"-" gorm:"type:varchar(100);not null"` // bcrypt hash
    Role      string    `json:"role" gorm:"type:varchar(16);not null;default:customer"`
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
