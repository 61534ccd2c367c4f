package service

import (
	"context"
	"sort"
	"time"

	"ClipFlow.com/cmd/model"
	"github.com/pkg/errors"
)

// 测试替身 覆盖存储接口的内存实现

type fakeVideoRepo struct {
	videos []model.Video
	nextId int64
}

func (r *fakeVideoRepo) CreateVideo(ctx context.Context, video *model.Video) error {
	r.nextId++
	video.VideoId = r.nextId
	r.videos = append(r.videos, *video)
	return nil
}

func (r *fakeVideoRepo) GetVideoById(ctx context.Context, videoId int64) (*model.Video, error) {
	for i := range r.videos {
		if r.videos[i].VideoId == videoId {
			v := r.videos[i]
			return &v, nil
		}
	}
	return nil, nil
}

func (r *fakeVideoRepo) page(list []model.Video, skip, limit int64) []model.Video {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	if skip >= int64(len(list)) {
		return []model.Video{}
	}
	list = list[skip:]
	if limit < int64(len(list)) {
		list = list[:limit]
	}
	return list
}

func (r *fakeVideoRepo) ListVideosByTime(ctx context.Context, skip, limit int64) ([]model.Video, error) {
	return r.page(append([]model.Video(nil), r.videos...), skip, limit), nil
}

func (r *fakeVideoRepo) ListPodcasts(ctx context.Context, skip, limit int64) ([]model.Video, error) {
	list := make([]model.Video, 0)
	for _, v := range r.videos {
		if v.IsPodcast {
			list = append(list, v)
		}
	}
	return r.page(list, skip, limit), nil
}

func (r *fakeVideoRepo) ListVideosByAuthors(ctx context.Context, authorIds []int64, skip, limit int64) ([]model.Video, error) {
	authors := make(map[int64]bool, len(authorIds))
	for _, id := range authorIds {
		authors[id] = true
	}
	list := make([]model.Video, 0)
	for _, v := range r.videos {
		if authors[v.UserId] {
			list = append(list, v)
		}
	}
	return r.page(list, skip, limit), nil
}

func (r *fakeVideoRepo) AddVisitCount(ctx context.Context, videoId int64) (int64, error) {
	for i := range r.videos {
		if r.videos[i].VideoId == videoId {
			r.videos[i].VisitCount++
			return 1, nil
		}
	}
	return 0, nil
}

type fakeInteractionRepo struct {
	likes    map[[2]int64]bool
	counts   map[int64]int64
	comments []model.Comment
}

func newFakeInteractionRepo() *fakeInteractionRepo {
	return &fakeInteractionRepo{
		likes:  make(map[[2]int64]bool),
		counts: make(map[int64]int64),
	}
}

func (r *fakeInteractionRepo) ToggleLike(ctx context.Context, userId, videoId int64) (bool, int64, error) {
	key := [2]int64{userId, videoId}
	if r.likes[key] {
		delete(r.likes, key)
		r.counts[videoId]--
		return false, r.counts[videoId], nil
	}
	r.likes[key] = true
	r.counts[videoId]++
	return true, r.counts[videoId], nil
}

func (r *fakeInteractionRepo) CreateComment(ctx context.Context, comment *model.Comment) error {
	comment.CommentId = int64(len(r.comments) + 1)
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *fakeInteractionRepo) ListComments(ctx context.Context, videoId int64) ([]model.Comment, error) {
	list := make([]model.Comment, 0)
	for _, c := range r.comments {
		if c.VideoId == videoId {
			list = append(list, c)
		}
	}
	return list, nil
}

type fakeFollowingLister struct {
	following map[int64][]int64
	calls     int
}

func (l *fakeFollowingLister) ListFollowing(ctx context.Context, userId int64) ([]int64, error) {
	l.calls++
	return l.following[userId], nil
}

type fakeStorage struct {
	fail    bool
	uploads int
}

func (s *fakeStorage) UploadVideo(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	if s.fail {
		return "", errors.New("storage unavailable")
	}
	s.uploads++
	return "/uploads/videos/test.mp4", nil
}

func newTestVideoService() (*VideoService, *fakeVideoRepo, *fakeInteractionRepo, *fakeFollowingLister, *fakeStorage) {
	repo := &fakeVideoRepo{}
	interactions := newFakeInteractionRepo()
	follows := &fakeFollowingLister{following: make(map[int64][]int64)}
	storage := &fakeStorage{}
	return NewVideoService(repo, interactions, follows, storage), repo, interactions, follows, storage
}

func seedVideo(repo *fakeVideoRepo, userId int64, title string, isPodcast bool, createdAt time.Time) model.Video {
	video := model.Video{
		UserId:    userId,
		Title:     title,
		VideoUrl:  "/uploads/videos/" + title + ".mp4",
		IsPodcast: isPodcast,
		CreatedAt: createdAt,
	}
	_ = repo.CreateVideo(context.Background(), &video)
	return video
}
