package errno

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestConvertErr(t *testing.T) {
	assert.Equal(t, Success, ConvertErr(nil))

	// ErrNo原样透传
	assert.Equal(t, AlreadyFollowErr, ConvertErr(AlreadyFollowErr))

	// 包装过的ErrNo同样可以还原
	wrapped := errors.WithMessage(VideoNotFoundErr, "dao.GetVideoById failed")
	assert.Equal(t, VideoNotFoundErr, ConvertErr(wrapped))

	// 普通error落到ServiceErr
	plain := ConvertErr(errors.New("boom"))
	assert.Equal(t, int64(ServiceErrCode), plain.ErrCode)
	assert.Equal(t, "boom", plain.ErrMsg)
}

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err    ErrNo
		status int
	}{
		{Success, 200},
		{AuthorizationFailedErr, 401},
		{PasswordErr, 401},
		{ForbiddenErr, 403},
		{UserNotFoundErr, 404},
		{VideoNotFoundErr, 404},
		{NoActiveStreamErr, 404},
		{AlreadyFollowErr, 400},
		{SelfFollowErr, 400},
		{AlreadyLiveErr, 400},
		{UserAlreadyExistErr, 400},
		{ParamErr, 400},
		{StorageErr, 500},
		{ServiceErr, 500},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, StatusCode(tc.err), "code %d", tc.err.ErrCode)
	}
}
