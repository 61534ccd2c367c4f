package errno

import (
	"errors"
	"fmt"

	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const (
	SuccessCode             = 0
	ServiceErrCode          = 10001
	ParamErrCode            = 10002
	AuthorizationFailedCode = 10003
	UserNotFoundCode        = 10101
	UserAlreadyExistCode    = 10102
	PasswordErrCode         = 10103
	SelfFollowCode          = 10201
	SelfUnfollowCode        = 10202
	AlreadyFollowCode       = 10203
	NotFollowingCode        = 10204
	VideoNotFoundCode       = 10301
	StorageErrCode          = 10302
	AlreadyLiveCode         = 10401
	NoActiveStreamCode      = 10402
	ForbiddenCode           = 10501
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success                = NewErrNo(SuccessCode, "Success")
	ServiceErr             = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	ParamErr               = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedCode, "Authorization failed")
	UserNotFoundErr        = NewErrNo(UserNotFoundCode, "User not found")
	UserAlreadyExistErr    = NewErrNo(UserAlreadyExistCode, "Email is already registered")
	PasswordErr            = NewErrNo(PasswordErrCode, "Invalid email or password")
	SelfFollowErr          = NewErrNo(SelfFollowCode, "You cannot follow yourself")
	SelfUnfollowErr        = NewErrNo(SelfUnfollowCode, "You cannot unfollow yourself")
	AlreadyFollowErr       = NewErrNo(AlreadyFollowCode, "Already following this user")
	NotFollowingErr        = NewErrNo(NotFollowingCode, "Not following this user")
	VideoNotFoundErr       = NewErrNo(VideoNotFoundCode, "Video not found")
	StorageErr             = NewErrNo(StorageErrCode, "Failed to save file")
	AlreadyLiveErr         = NewErrNo(AlreadyLiveCode, "You already have an active live stream")
	NoActiveStreamErr      = NewErrNo(NoActiveStreamCode, "No active live stream found")
	ForbiddenErr           = NewErrNo(ForbiddenCode, "Unauthorized access")
)

// ConvertErr 将任意error转换为ErrNo 服务层返回的ErrNo原样透传
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	var e ErrNo
	if errors.As(err, &e) {
		return e
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}

// StatusCode 边界层根据错误码决定HTTP状态码
func StatusCode(e ErrNo) int {
	switch e.ErrCode {
	case SuccessCode:
		return consts.StatusOK
	case AuthorizationFailedCode, PasswordErrCode:
		return consts.StatusUnauthorized
	case ForbiddenCode:
		return consts.StatusForbidden
	case UserNotFoundCode, VideoNotFoundCode, NoActiveStreamCode:
		return consts.StatusNotFound
	case UserAlreadyExistCode, SelfFollowCode, SelfUnfollowCode,
		AlreadyFollowCode, NotFollowingCode, AlreadyLiveCode:
		return consts.StatusBadRequest
	case ParamErrCode:
		return consts.StatusBadRequest
	default:
		return consts.StatusInternalServerError
	}
}
