package handlers

import (
	"context"

	"ClipFlow.com/pkg/errno"
	"ClipFlow.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

func LikeAction(ctx context.Context, c *app.RequestContext) {
	userId, ok := currentUserId(c)
	if !ok {
		SendResponse(c, errno.AuthorizationFailedErr, nil)
		return
	}
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	liked, likeCount, err := videoService.ToggleLike(ctx, userId, videoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{
		"liked": liked,
		"likes": likeCount,
	})
}

// Visit 浏览上报 不需要登录
func Visit(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	if err := videoService.Visit(ctx, videoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
