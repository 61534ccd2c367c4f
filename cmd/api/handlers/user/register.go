package handlers

import (
	"context"

	"ClipFlow.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func Register(ctx context.Context, c *app.RequestContext) {
	var registerVar RegisterParam
	if err := c.BindAndValidate(&registerVar); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	user, token, err := userService.CreateUser(ctx, registerVar.UserName, registerVar.Email, registerVar.PassWord)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}
