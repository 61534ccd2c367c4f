package model

import "time"

type User struct {
	UserId    int64     `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	UserName  string    `gorm:"column:user_name;size:64;not null;uniqueIndex" json:"user_name"`
	Email     string    `gorm:"column:email;size:128;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password;size:128;not null" json:"-"` // 密码字段，不在JSON中序列化
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
