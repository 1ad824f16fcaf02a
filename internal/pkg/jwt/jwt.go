package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"user-vault/internal/pkg/config"
	"user-vault/pkg/constants"
	"user-vault/pkg/responses"
)

// UserClaims 用户Claims
type UserClaims struct {
	UID      string `json:"uid"`
	OrgID    string `json:"org_id"`
	Username string `json:"username"`
	Type     string `json:"type"` // access or refresh
	jwt.RegisteredClaims
}

// GenerateAccessToken 生成访问Token
// 令牌通常由身份服务签发，这里用于本地调试和测试
func GenerateAccessToken(uid, orgID, username string) (string, error) {
	cfg := config.GlobalConfig.Auth.JWT

	now := time.Now()
	claims := UserClaims{
		UID:      uid,
		OrgID:    orgID,
		Username: username,
		Type:     constants.JWTTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.AccessTokenExpire) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ParseToken 解析Token
func ParseToken(tokenString string) (*UserClaims, error) {
	cfg := config.GlobalConfig.Auth.JWT

	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名方法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, responses.ErrTokenExpired
		}
		return nil, responses.Wrap(responses.CodeUnauthorized, "解析Token失败", err)
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, responses.ErrInvalidToken
}

// ValidateToken 验证Token有效性，必须是 access token 且携带用户与组织
func ValidateToken(tokenString string) (*UserClaims, error) {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Type != constants.JWTTypeAccess {
		return nil, responses.New(responses.CodeUnauthorized, "无效的Token类型")
	}
	if claims.UID == "" || claims.OrgID == "" {
		return nil, responses.New(responses.CodeUnauthorized, "Token缺少用户或组织信息")
	}

	return claims, nil
}
