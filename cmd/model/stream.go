package model

import "time"

// LiveStream 同一用户同一时刻至多一条is_active=true的记录
type LiveStream struct {
	StreamId    int64      `gorm:"column:stream_id;primaryKey;autoIncrement" json:"stream_id"`
	UserId      int64      `gorm:"column:user_id;not null;index" json:"user_id"`
	Title       string     `gorm:"column:title;size:255;not null" json:"title"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	IsActive    bool       `gorm:"column:is_active;not null;default:true;index" json:"is_active"`
	StartedAt   time.Time  `gorm:"column:started_at;not null" json:"started_at"`
	EndedAt     *time.Time `gorm:"column:ended_at" json:"ended_at"`
}

func (LiveStream) TableName() string {
	return "live_streams"
}
