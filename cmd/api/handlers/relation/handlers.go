package handlers

import (
	"ClipFlow.com/cmd/relation/service"
	"ClipFlow.com/pkg/constants"
	"ClipFlow.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

var relationService *service.RelationService

func Init(s *service.RelationService) {
	relationService = s
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
