package handlers

import (
	"context"

	"ClipFlow.com/pkg/errno"
	"ClipFlow.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

func Follow(ctx context.Context, c *app.RequestContext) {
	userId, ok := currentUserId(c)
	if !ok {
		SendResponse(c, errno.AuthorizationFailedErr, nil)
		return
	}
	targetId, err := utils.ConvertStringToInt64(c.Param("user_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	if err := relationService.Follow(ctx, userId, targetId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func Unfollow(ctx context.Context, c *app.RequestContext) {
	userId, ok := currentUserId(c)
	if !ok {
		SendResponse(c, errno.AuthorizationFailedErr, nil)
		return
	}
	targetId, err := utils.ConvertStringToInt64(c.Param("user_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	if err := relationService.Unfollow(ctx, userId, targetId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
