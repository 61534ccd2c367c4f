package main

import (
	"context"
	"fmt"
	"time"

	relationhandlers "ClipFlow.com/cmd/api/handlers/relation"
	streamhandlers "ClipFlow.com/cmd/api/handlers/stream"
	userhandlers "ClipFlow.com/cmd/api/handlers/user"
	videohandlers "ClipFlow.com/cmd/api/handlers/video"
	"ClipFlow.com/cmd/api/router"
	"ClipFlow.com/cmd/api/router/authfunc"
	relationdb "ClipFlow.com/cmd/relation/dal/db"
	relationservice "ClipFlow.com/cmd/relation/service"
	streamdb "ClipFlow.com/cmd/stream/dal/db"
	streamservice "ClipFlow.com/cmd/stream/service"
	userdb "ClipFlow.com/cmd/user/dal/db"
	userservice "ClipFlow.com/cmd/user/service"
	videodb "ClipFlow.com/cmd/video/dal/db"
	videoservice "ClipFlow.com/cmd/video/service"
	"ClipFlow.com/config"
	"ClipFlow.com/pkg/database"
	"ClipFlow.com/pkg/errno"
	"ClipFlow.com/pkg/jwt"
	"ClipFlow.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
)

func newStorage() oss.Storage {
	c := config.ConfigInfo.Storage
	switch c.Backend {
	case "minio":
		storage, err := oss.NewMinioStorage(c.Minio.Endpoint, c.Minio.AccessKey,
			c.Minio.SecretKey, c.Minio.Bucket, c.Minio.UseSSL)
		if err != nil {
			hlog.Fatalf("init minio storage failed: %v", err)
		}
		return storage
	default:
		storage, err := oss.NewLocalStorage(c.Local.Dir, c.Local.UrlPrefix)
		if err != nil {
			hlog.Fatalf("init local storage failed: %v", err)
		}
		return storage
	}
}

func Init() {
	config.Init()

	db, err := database.Init()
	if err != nil {
		hlog.Fatalf("init database failed: %v", err)
	}

	tokenService := jwt.NewTokenService(
		config.ConfigInfo.Jwt.Secret,
		config.ConfigInfo.Jwt.Algorithm,
		time.Duration(config.ConfigInfo.Jwt.ExpireSec)*time.Second,
	)
	storage := newStorage()

	userRepo := userdb.NewUserRepo(db)
	followRepo := relationdb.NewFollowRepo(db)
	videoRepo := videodb.NewVideoRepo(db)
	interactionRepo := videodb.NewInteractionRepo(db)
	streamRepo := streamdb.NewStreamRepo(db)

	userSvc := userservice.NewUserService(userRepo, followRepo, videoRepo, tokenService)
	userhandlers.Init(userSvc)
	authfunc.Init(userSvc)
	relationhandlers.Init(relationservice.NewRelationService(followRepo, userRepo))
	videohandlers.Init(videoservice.NewVideoService(videoRepo, interactionRepo, followRepo, storage))
	streamhandlers.Init(streamservice.NewStreamService(streamRepo))
}

func main() {
	Init()

	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(config.ConfigInfo.Server.MaxRequestBodySize),
	)

	// 配置 CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigInfo.Cors.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 错误处理
	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("[Recovery] err=%v", err),
			})
		})))

	// 注册路由
	router.Register(r)

	r.Spin()
}
