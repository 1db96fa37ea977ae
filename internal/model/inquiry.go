package model

import "time"

// Inquiry 客户咨询工单
type Inquiry struct {
    ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
    TicketNo  string    `json:"ticket_no" gorm:"type:varchar(16);uniqueIndex;not null"`
    Name      string    `json:"name" gorm:"type:varchar(100);not null"`
    Email     string    `json:"email" gorm:"type:varchar(191);not null"`
    Subject   string    `json:"subject" gorm:"type:varchar(191)"`
    Message   string    `json:"message" gorm:"type:text;not null"`
    Resolved  bool      `json:"resolved" gorm:"index"`
    CreatedAt time.Time `json:"created_at"`
}

func (Inquiry) TableName() string { return "inquiries" }
