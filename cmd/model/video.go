package model

import "time"

type Video struct {
	VideoId     int64     `gorm:"column:video_id;primaryKey;autoIncrement" json:"video_id"`
	UserId      int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Title       string    `gorm:"column:title;size:255;not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	VideoUrl    string    `gorm:"column:video_url;size:512;not null" json:"video_url"`
	IsPodcast   bool      `gorm:"column:is_podcast;not null;default:false;index" json:"is_podcast"`
	LikeCount   int64     `gorm:"column:like_count;not null;default:0" json:"like_count"`
	VisitCount  int64     `gorm:"column:visit_count;not null;default:0" json:"visit_count"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;index" json:"created_at"`
}

func (Video) TableName() string {
	return "videos"
}

// UserVideoStats 个人主页的聚合统计 不落库
type UserVideoStats struct {
	TotalVideos   int64 `json:"totalVideos"`
	TotalLikes    int64 `json:"totalLikes"`
	TotalViews    int64 `json:"totalViews"`
	TotalComments int64 `json:"totalComments"`
}
