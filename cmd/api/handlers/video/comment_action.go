package handlers

import (
	"context"

	"ClipFlow.com/pkg/errno"
	"ClipFlow.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

func CommentAction(ctx context.Context, c *app.RequestContext) {
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
	var commentVar CommentParam
	if err := c.BindAndValidate(&commentVar); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	comment, err := videoService.AddComment(ctx, userId, videoId, commentVar.Text)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"comment": comment})
}

func CommentList(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	comments, err := videoService.ListComments(ctx, videoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"comments": comments})
}
