package handlers

import (
	"ClipFlow.com/cmd/video/service"
	"ClipFlow.com/pkg/constants"
	"ClipFlow.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

var videoService *service.VideoService

func Init(s *service.VideoService) {
	videoService = s
}

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(errno.StatusCode(Err), Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

func currentUserId(c *app.RequestContext) (int64, bool) {
	v, ok := c.Get(constants.ContextUserKey)
	if !ok {
		return 0, false
	}
	userId, ok := v.(int64)
	return userId, ok
}

type UpLoadVideoParam struct {
	Title       string `form:"title" vd:"len($)>0"`
	Description string `form:"description"`
	IsPodcast   bool   `form:"is_podcast"`
}

type FeedListParam struct {
	Skip  int64 `query:"skip"`
	Limit int64 `query:"limit"`
}

type CommentParam struct {
	Text string `json:"text" form:"text" vd:"len($)>0"`
}
