package service

import (
	"context"
	"time"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/pkg/errno"
	"ClipFlow.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

// CreateUser 注册新用户并签发token
func (s *UserService) CreateUser(ctx context.Context, username, email, password string) (*model.User, string, error) {
	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", errors.WithMessage(err, "dao.GetUserByEmail failed")
	}
	if existing != nil {
		return nil, "", errno.UserAlreadyExistErr
	}

	passWord, err := utils.Crypt(password)
	if err != nil {
		return nil, "", errors.WithMessage(err, "Password fail to crypt")
	}

	user := &model.User{
		UserName:  username,
		Email:     email,
		Password:  passWord,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, "", errors.WithMessage(err, "dao.CreateUser failed")
	}
	hlog.Infof("user registered, userId: %d, username: %s", user.UserId, user.UserName)

	token, err := s.token.IssueToken(user.UserId)
	if err != nil {
		return nil, "", errors.WithMessage(err, "issue token failed")
	}
	return user, token, nil
}
