package handlers

import (
	"ClipFlow.com/cmd/user/service"
	"ClipFlow.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

var userService *service.UserService

func Init(s *service.UserService) {
	userService = s
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

type RegisterParam struct {
	UserName string `json:"username" form:"username" vd:"len($)>0"`
	Email    string `json:"email" form:"email" vd:"len($)>0"`
	PassWord string `json:"password" form:"password" vd:"len($)>0"`
}

type LoginParam struct {
	Email    string `json:"email" form:"email" vd:"len($)>0"`
	PassWord string `json:"password" form:"password" vd:"len($)>0"`
}

type ProfileVideosParam struct {
	Skip  int64 `query:"skip"`
	Limit int64 `query:"limit"`
}
