package handlers

import (
	"context"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/pkg/constants"
	"ClipFlow.com/pkg/errno"
	"ClipFlow.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

// currentUser 鉴权中间件放入RequestContext的当前用户
func currentUser(c *app.RequestContext) (*model.User, bool) {
	v, ok := c.Get(constants.ContextUserObj)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}

func GetProfile(ctx context.Context, c *app.RequestContext) {
	user, ok := currentUser(c)
	if !ok {
		SendResponse(c, errno.AuthorizationFailedErr, nil)
		return
	}
	var page ProfileVideosParam
	if err := c.BindQuery(&page); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	profile, err := userService.GetProfile(ctx, user, page.Skip, page.Limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, profile)
}

// GetUserProfile 目前仅允许查看自己的主页 其他id一律403
func GetUserProfile(ctx context.Context, c *app.RequestContext) {
	user, ok := currentUser(c)
	if !ok {
		SendResponse(c, errno.AuthorizationFailedErr, nil)
		return
	}
	targetId, err := utils.ConvertStringToInt64(c.Param("user_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	if targetId != user.UserId {
		SendResponse(c, errno.ForbiddenErr, nil)
		return
	}
	var page ProfileVideosParam
	if err := c.BindQuery(&page); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	profile, err := userService.GetProfile(ctx, user, page.Skip, page.Limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, profile)
}
