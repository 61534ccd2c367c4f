package model

import "time"

type Comment struct {
	CommentId int64     `gorm:"column:comment_id;primaryKey;autoIncrement" json:"comment_id"`
	VideoId   int64     `gorm:"column:video_id;not null;index" json:"video_id"`
	UserId    int64     `gorm:"column:user_id;not null" json:"user_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// VideoLike 每个(用户,视频)至多一条点赞记录 toggle语义依赖该唯一约束
type VideoLike struct {
	VideoLikeId int64     `gorm:"column:video_like_id;primaryKey;autoIncrement" json:"video_like_id"`
	UserId      int64     `gorm:"column:user_id;not null;uniqueIndex:idx_user_video" json:"user_id"`
	VideoId     int64     `gorm:"column:video_id;not null;uniqueIndex:idx_user_video;index" json:"video_id"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (VideoLike) TableName() string {
	return "video_likes"
}
