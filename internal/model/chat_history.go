package model

import "time"

type ChatHistory struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    *uint      `json:"user_id"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	Response  *string    `gorm:"type:text" json:"response"`
	Timestamp *time.Time `json:"timestamp"`
}

func (ChatHistory) TableName() string {
	return "chat_history"
}
