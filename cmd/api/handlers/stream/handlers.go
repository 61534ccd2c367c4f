package handlers

import (
	"ClipFlow.com/cmd/stream/service"
	"ClipFlow.com/pkg/constants"
	"ClipFlow.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

var streamService *service.StreamService

func Init(s *service.StreamService) {
	streamService = s
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

type StartStreamParam struct {
	Title       string `json:"title" form:"title" vd:"len($)>0"`
	Description string `json:"description" form:"description"`
}
