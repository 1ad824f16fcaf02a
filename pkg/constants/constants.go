package constants

// JWT 相关
const (
	JWTTypeAccess  = "access"
	JWTTypeRefresh = "refresh"
)

// HTTP Header
const (
	HeaderAuthorization = "Authorization"
	HeaderBearerPrefix  = "Bearer "
)

// gin.Context 中的身份信息 key
const (
	ContextKeyUID      = "uid"
	ContextKeyOrgID    = "org_id"
	ContextKeyUsername = "username"
)

// MaxLimit 列表单页最大数量
const MaxLimit = 100

// MaxCredentialPayloadBytes 凭据明文序列化后的最大字节数
const MaxCredentialPayloadBytes = 10000

// MaxCredentialNameLength 凭据名称最大字符数，与 name 列宽一致
const MaxCredentialNameLength = 255
