package constants

const (
	// DataFormate 数据库中时间字段统一使用的格式
	DataFormate = "2006-01-02 15:04:05"

	DefaultLimit   = 10
	MaxFeedLimit   = 50
	UploadFileKey  = "file"
	BearerPrefix   = "Bearer "
	ContextUserKey = "user_id"
	ContextUserObj = "current_user"
)
