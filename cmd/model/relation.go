package model

import "time"

// Follow 关注关系实体 (follower -> followed)
// 唯一索引保证同一条边不会重复插入 并发下的正确性依赖该约束而非应用层检查
type Follow struct {
	FollowId   int64     `gorm:"column:follow_id;primaryKey;autoIncrement" json:"follow_id"`
	FollowerId int64     `gorm:"column:follower_id;not null;uniqueIndex:idx_follow_edge;index" json:"follower_id"`
	FollowedId int64     `gorm:"column:followed_id;not null;uniqueIndex:idx_follow_edge;index" json:"followed_id"`
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
