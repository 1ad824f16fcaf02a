package responses

import "fmt"

// 错误码
const (
	CodeSuccess         = 2000000
	CodeBadRequest      = 4000000
	CodeUnauthorized    = 4010000
	CodeForbidden       = 4030000
	CodeNotFound        = 4040000
	CodePayloadTooLarge = 4130000
	CodeTooManyRequests = 4290000
	CodeInternalError   = 5000000
	CodeDatabaseError   = 5001000
	CodeEncryptionError = 5004000
	CodeDataIntegrity   = 5005000
)

// AppError 应用错误
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 返回底层错误
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码匹配，errors.Is(err, ErrForbidden) 对任意 Forbidden 错误成立
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New 创建新错误
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// 预定义错误
var (
	ErrBadRequest      = New(CodeBadRequest, "请求参数错误")
	ErrUnauthorized    = New(CodeUnauthorized, "未授权")
	ErrForbidden       = New(CodeForbidden, "禁止访问")
	ErrNotFound        = New(CodeNotFound, "资源不存在")
	ErrInternalError   = New(CodeInternalError, "内部服务器错误")
	ErrDatabaseError   = New(CodeDatabaseError, "数据库错误")
	ErrEncryptionError = New(CodeEncryptionError, "加解密失败")
	ErrDataIntegrity   = New(CodeDataIntegrity, "凭据数据损坏")
	ErrPayloadTooLarge = New(CodePayloadTooLarge, "凭据内容过长")
	ErrTooManyRequests = New(CodeTooManyRequests, "请求过于频繁")

	ErrInvalidToken        = New(CodeUnauthorized, "无效的Token")
	ErrTokenExpired        = New(CodeUnauthorized, "Token已过期")
	ErrRecordNotFound      = New(CodeNotFound, "记录不存在")
	ErrInvalidCredentialID = New(CodeBadRequest, "无效的凭据ID")
)
