package service

import (
	"context"
	"time"

	"ClipFlow.com/cmd/model"
	"ClipFlow.com/pkg/jwt"
)

type fakeUserRepo struct {
	users  map[int64]*model.User
	nextId int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*model.User)}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	r.nextId++
	user.UserId = r.nextId
	clone := *user
	r.users[user.UserId] = &clone
	return nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetUserById(ctx context.Context, userId int64) (*model.User, error) {
	u, ok := r.users[userId]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

type fakeFollowCounter struct {
	followers map[int64]int64
	following map[int64]int64
}

func (c *fakeFollowCounter) GetFollowerCount(ctx context.Context, userId int64) (int64, error) {
	return c.followers[userId], nil
}

func (c *fakeFollowCounter) GetFollowingCount(ctx context.Context, userId int64) (int64, error) {
	return c.following[userId], nil
}

type fakeVideoStatsRepo struct {
	videos map[int64][]model.Video
	stats  map[int64]*model.UserVideoStats
}

func (r *fakeVideoStatsRepo) ListVideosByUser(ctx context.Context, userId, skip, limit int64) ([]model.Video, error) {
	return r.videos[userId], nil
}

func (r *fakeVideoStatsRepo) GetUserVideoStats(ctx context.Context, userId int64) (*model.UserVideoStats, error) {
	if s, ok := r.stats[userId]; ok {
		return s, nil
	}
	return &model.UserVideoStats{}, nil
}

func newTestUserService() (*UserService, *fakeUserRepo, *fakeFollowCounter, *fakeVideoStatsRepo) {
	repo := newFakeUserRepo()
	follows := &fakeFollowCounter{followers: map[int64]int64{}, following: map[int64]int64{}}
	videos := &fakeVideoStatsRepo{videos: map[int64][]model.Video{}, stats: map[int64]*model.UserVideoStats{}}
	token := jwt.NewTokenService("unit-test-secret", "HS256", time.Hour)
	return NewUserService(repo, follows, videos, token), repo, follows, videos
}
