package handlers

import (
	"context"

	"ClipFlow.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func FeedForYou(ctx context.Context, c *app.RequestContext) {
	var feedVar FeedListParam
	if err := c.BindQuery(&feedVar); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	videos, err := videoService.FeedForYou(ctx, feedVar.Skip, feedVar.Limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"videos": videos})
}

func FeedPodcasts(ctx context.Context, c *app.RequestContext) {
	var feedVar FeedListParam
	if err := c.BindQuery(&feedVar); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	videos, err := videoService.FeedPodcasts(ctx, feedVar.Skip, feedVar.Limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"videos": videos})
}

func FeedFollowing(ctx context.Context, c *app.RequestContext) {
	userId, ok := currentUserId(c)
	if !ok {
		SendResponse(c, errno.AuthorizationFailedErr, nil)
		return
	}
	var feedVar FeedListParam
	if err := c.BindQuery(&feedVar); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	videos, err := videoService.FeedFollowing(ctx, userId, feedVar.Skip, feedVar.Limit)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"videos": videos})
}
