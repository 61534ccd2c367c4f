package service

import (
	"context"
	"strings"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/pkg/constants"
	"ClipFlow.com/pkg/errno"
	"ClipFlow.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Authenticate 根据Authorization头解析出当前用户
// 头格式错误/token非法或过期/用户已被删除 对外统一表现为鉴权失败
// 每次调用都重新验签并查库 不做缓存
func (s *UserService) Authenticate(ctx context.Context, headerValue string) (*model.User, error) {
	if !strings.HasPrefix(headerValue, constants.BearerPrefix) {
		return nil, errno.AuthorizationFailedErr
	}
	tokenString := headerValue[len(constants.BearerPrefix):]

	subject, err := s.token.VerifyToken(tokenString)
	if err != nil {
		hlog.Infof("token verify failed: %v", err)
		return nil, errno.AuthorizationFailedErr
	}
	userId, err := utils.ConvertStringToInt64(subject)
	if err != nil {
		return nil, errno.AuthorizationFailedErr
	}

	user, err := s.repo.GetUserById(ctx, userId)
	if err != nil {
		return nil, errno.AuthorizationFailedErr
	}
	if user == nil {
		// token签发后账号被删除
		return nil, errno.AuthorizationFailedErr
	}
	return user, nil
}
