package router

import (
	"context"

	relation "ClipFlow.com/cmd/api/handlers/relation"
	stream "ClipFlow.com/cmd/api/handlers/stream"
	user "ClipFlow.com/cmd/api/handlers/user"
	video "ClipFlow.com/cmd/api/handlers/video"
	"ClipFlow.com/cmd/api/router/authfunc"
	"ClipFlow.com/config"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Register 注册全部HTTP路由
func Register(r *server.Hertz) {
	// 健康检查
	r.GET("/", func(ctx context.Context, c *app.RequestContext) {
		c.JSON(consts.StatusOK, map[string]interface{}{"message": "Welcome to ClipFlow Backend"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", user.Register)
		auth.POST("/login", user.Login)
		auth.POST("/follow/:user_id", append(authfunc.Auth(), relation.Follow)...)
		auth.POST("/unfollow/:user_id", append(authfunc.Auth(), relation.Unfollow)...)
	}

	liveStream := r.Group("/live-stream")
	{
		liveStream.POST("/start", append(authfunc.Auth(), stream.StartStream)...)
		liveStream.POST("/stop", append(authfunc.Auth(), stream.StopStream)...)
		liveStream.GET("/", stream.ListActive)
	}

	videoGroup := r.Group("/video")
	{
		videoGroup.POST("/upload", append(authfunc.Auth(), video.Upload)...)
		videoGroup.GET("/feed/for-you", video.FeedForYou)
		videoGroup.GET("/feed/following", append(authfunc.Auth(), video.FeedFollowing)...)
		videoGroup.GET("/feed/podcasts", video.FeedPodcasts)
		videoGroup.POST("/like/:video_id", append(authfunc.Auth(), video.LikeAction)...)
		videoGroup.POST("/comment/:video_id", append(authfunc.Auth(), video.CommentAction)...)
		videoGroup.GET("/comments/:video_id", video.CommentList)
		videoGroup.POST("/visit/:video_id", video.Visit)
	}

	profile := r.Group("/profile")
	{
		profile.GET("/", append(authfunc.Auth(), user.GetProfile)...)
		profile.GET("/:user_id", append(authfunc.Auth(), user.GetUserProfile)...)
	}

	// 本地存储时由进程自身提供上传文件的静态访问
	// hertz的FS默认把完整请求路径拼在Root后 所以Root取工作目录
	if config.ConfigInfo.Storage.Backend == "local" {
		r.Static("/uploads", "./")
	}
}
