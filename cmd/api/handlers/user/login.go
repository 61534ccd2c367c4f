package handlers

import (
	"context"

	"ClipFlow.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func Login(ctx context.Context, c *app.RequestContext) {
	var loginVar LoginParam
	if err := c.BindAndValidate(&loginVar); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	user, token, err := userService.LoginUser(ctx, loginVar.Email, loginVar.PassWord)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}
