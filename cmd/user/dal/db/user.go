package db

import (
	"context"

	"ClipFlow.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) CreateUser(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return errors.Wrap(err, "CreateUser failed")
	}
	return nil
}

// GetUserByEmail 用户不存在时返回(nil, nil)
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "GetUserByEmail failed")
	}
	return &user, nil
}

func (r *UserRepo) GetUserById(ctx context.Context, userId int64) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "GetUserById failed, userId: %d", userId)
	}
	return &user, nil
}

func (r *UserRepo) CheckUserExistById(ctx context.Context, userId int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "CheckUserExistById failed, userId: %d", userId)
	}
	return count > 0, nil
}

func (r *UserRepo) DeleteUser(ctx context.Context, userId int64) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.User{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteUser failed, userId: %d", userId)
	}
	return nil
}
