package authfunc

import (
	"context"

	handlers "ClipFlow.com/cmd/api/handlers/user"
	"ClipFlow.com/cmd/model"
	"ClipFlow.com/pkg/constants"
	"ClipFlow.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// Authenticator 根据Authorization头解析当前用户 由user service实现
type Authenticator interface {
	Authenticate(ctx context.Context, headerValue string) (*model.User, error)
}

var authenticator Authenticator

func Init(a Authenticator) {
	authenticator = a
}

func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		BearerTokenAuthFunc(),
	)
}

// BearerTokenAuthFunc 所有鉴权失败对外统一为401 不区分具体原因
func BearerTokenAuthFunc() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		user, err := authenticator.Authenticate(ctx, string(c.GetHeader("Authorization")))
		if err != nil {
			handlers.SendResponse(c, errno.AuthorizationFailedErr, nil)
			c.Abort()
			return
		}
		c.Set(constants.ContextUserKey, user.UserId)
		c.Set(constants.ContextUserObj, user)
		c.Next(ctx)
	}
}
