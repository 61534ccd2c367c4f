package service

import (
	"context"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/pkg/errno"
	"ClipFlow.com/pkg/utils"
	"github.com/pkg/errors"
)

// LoginUser 校验邮箱密码并签发token 邮箱不存在与密码错误对外不做区分
func (s *UserService) LoginUser(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", errors.WithMessage(err, "dao.GetUserByEmail failed")
	}
	if user == nil || !utils.VerifyPassword(password, user.Password) {
		return nil, "", errno.PasswordErr
	}

	token, err := s.token.IssueToken(user.UserId)
	if err != nil {
		return nil, "", errors.WithMessage(err, "issue token failed")
	}
	return user, token, nil
}
