package handlers

import (
	"context"

	"ClipFlow.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

func StartStream(ctx context.Context, c *app.RequestContext) {
	userId, ok := currentUserId(c)
	if !ok {
		SendResponse(c, errno.AuthorizationFailedErr, nil)
		return
	}
	var startVar StartStreamParam
	if err := c.BindAndValidate(&startVar); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	stream, err := streamService.StartStream(ctx, userId, startVar.Title, startVar.Description)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"stream": stream})
}

func StopStream(ctx context.Context, c *app.RequestContext) {
	userId, ok := currentUserId(c)
	if !ok {
		SendResponse(c, errno.AuthorizationFailedErr, nil)
		return
	}

	stream, err := streamService.StopStream(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"stream": stream})
}

func ListActive(ctx context.Context, c *app.RequestContext) {
	streams, err := streamService.ListActive(ctx)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"streams": streams})
}
