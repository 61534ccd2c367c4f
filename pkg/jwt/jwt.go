package jwt

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenSignature = errors.New("token signature is invalid")
)

// TokenService 负责签发与校验会话token 配置在启动时注入 自身无任何状态
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	expire time.Duration
	now    func() time.Time
}

func NewTokenService(secret, algorithm string, expire time.Duration) *TokenService {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		// 与原有默认保持一致
		method = jwt.SigningMethodHS256
	}
	return &TokenService{
		secret: []byte(secret),
		method: method,
		expire: expire,
		now:    time.Now,
	}
}

// IssueToken 签发携带{sub, exp}的token sub统一转换为字符串
func (s *TokenService) IssueToken(userId int64) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userId, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expire)),
	}
	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token failed")
	}
	return signed, nil
}

// VerifyToken 校验token并返回sub 过期按校验时刻的墙上时钟判断 不做时钟偏移补偿
func (s *TokenService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != s.method.Alg() {
				return nil, ErrTokenSignature
			}
			return s.secret, nil
		},
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, ErrTokenSignature):
			return "", ErrTokenSignature
		default:
			return "", ErrTokenMalformed
		}
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" || claims.ExpiresAt == nil {
		return "", ErrTokenMalformed
	}
	return claims.Subject, nil
}
