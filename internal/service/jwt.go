package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserJWTClaims 用户令牌载荷。令牌由外部认证服务以相同密钥签发，
// 本服务只做校验；is_admin 以数据库中的用户行为准。
type UserJWTClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
