package service

import (
	"context"
	"testing"

	"ClipFlow.com/cmd/relation/dal/db"
	"ClipFlow.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFollowRepo struct {
	edges map[[2]int64]bool
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: make(map[[2]int64]bool)}
}

func (r *fakeFollowRepo) CreateFollow(ctx context.Context, followerId, followedId int64) error {
	key := [2]int64{followerId, followedId}
	if r.edges[key] {
		return db.ErrDuplicateFollow
	}
	r.edges[key] = true
	return nil
}

func (r *fakeFollowRepo) DeleteFollow(ctx context.Context, followerId, followedId int64) (int64, error) {
	key := [2]int64{followerId, followedId}
	if !r.edges[key] {
		return 0, nil
	}
	delete(r.edges, key)
	return 1, nil
}

func (r *fakeFollowRepo) CheckFollowExist(ctx context.Context, followerId, followedId int64) (bool, error) {
	return r.edges[[2]int64{followerId, followedId}], nil
}

func (r *fakeFollowRepo) GetFollowerCount(ctx context.Context, userId int64) (int64, error) {
	var count int64
	for edge := range r.edges {
		if edge[1] == userId {
			count++
		}
	}
	return count, nil
}

func (r *fakeFollowRepo) GetFollowingCount(ctx context.Context, userId int64) (int64, error) {
	var count int64
	for edge := range r.edges {
		if edge[0] == userId {
			count++
		}
	}
	return count, nil
}

func (r *fakeFollowRepo) ListFollowing(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	for edge := range r.edges {
		if edge[0] == userId {
			list = append(list, edge[1])
		}
	}
	return list, nil
}

type fakeUserChecker struct {
	existing map[int64]bool
}

func (c *fakeUserChecker) CheckUserExistById(ctx context.Context, userId int64) (bool, error) {
	return c.existing[userId], nil
}

func newRelationService(userIds ...int64) (*RelationService, *fakeFollowRepo) {
	repo := newFakeFollowRepo()
	users := &fakeUserChecker{existing: make(map[int64]bool)}
	for _, id := range userIds {
		users.existing[id] = true
	}
	return NewRelationService(repo, users), repo
}

func TestFollowSelf(t *testing.T) {
	svc, _ := newRelationService(1)
	err := svc.Follow(context.Background(), 1, 1)
	assert.ErrorIs(t, err, errno.SelfFollowErr)
}

func TestFollowUnknownTarget(t *testing.T) {
	svc, _ := newRelationService(1)
	err := svc.Follow(context.Background(), 1, 99)
	assert.ErrorIs(t, err, errno.UserNotFoundErr)
}

func TestFollowTwice(t *testing.T) {
	svc, _ := newRelationService(1, 2)

	require.NoError(t, svc.Follow(context.Background(), 1, 2))
	// 重复关注报错而非静默成功
	err := svc.Follow(context.Background(), 1, 2)
	assert.ErrorIs(t, err, errno.AlreadyFollowErr)
}

func TestUnfollow(t *testing.T) {
	svc, _ := newRelationService(1, 2)
	ctx := context.Background()

	require.NoError(t, svc.Follow(ctx, 1, 2))
	require.NoError(t, svc.Unfollow(ctx, 1, 2))

	err := svc.Unfollow(ctx, 1, 2)
	assert.ErrorIs(t, err, errno.NotFollowingErr)
}

func TestUnfollowSelf(t *testing.T) {
	svc, _ := newRelationService(1)
	err := svc.Unfollow(context.Background(), 1, 1)
	assert.ErrorIs(t, err, errno.SelfUnfollowErr)
}

func TestFollowCounts(t *testing.T) {
	svc, _ := newRelationService(1, 2, 3)
	ctx := context.Background()

	require.NoError(t, svc.Follow(ctx, 1, 3))
	require.NoError(t, svc.Follow(ctx, 2, 3))
	require.NoError(t, svc.Follow(ctx, 3, 1))

	followers, err := svc.FollowerCount(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), followers)

	following, err := svc.FollowingCount(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), following)
}
