package handlers

import (
	"context"
	"io"

	"ClipFlow.com/pkg/constants"
	"ClipFlow.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Upload multipart上传 字段: title, description, is_podcast, file
func Upload(ctx context.Context, c *app.RequestContext) {
	userId, ok := currentUserId(c)
	if !ok {
		SendResponse(c, errno.AuthorizationFailedErr, nil)
		return
	}
	var uploadVar UpLoadVideoParam
	if err := c.BindAndValidate(&uploadVar); err != nil {
		SendResponse(c, errno.ParamErr.WithMessage(err.Error()), nil)
		return
	}

	fileHeader, err := c.FormFile(constants.UploadFileKey)
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("file is required"), nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	video, err := videoService.UploadVideo(ctx, userId, uploadVar.Title, uploadVar.Description,
		uploadVar.IsPodcast, data, fileHeader.Filename, contentType)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	hlog.Infof("video uploaded, videoId: %d, userId: %d", video.VideoId, userId)
	SendResponse(c, errno.Success, map[string]interface{}{"video": video})
}
