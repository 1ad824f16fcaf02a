package dto

import (
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"

	"user-vault/internal/model"
)

// CredentialRequest 创建/更新凭据请求，按 type 区分字段
// 更新为整体替换：name、type 与对应类型的全部字段都需要重新提交
type CredentialRequest struct {
	Kind string `json:"type" binding:"required,oneof=login card note"`
	Name string `json:"name" binding:"required,max=255"`

	// login
	URL      *string `json:"url,omitempty"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`

	// card
	CardholderName *string `json:"cardholderName,omitempty"`
	Number         *string `json:"number,omitempty"`
	ExpMonth       *string `json:"expMonth,omitempty"`
	ExpYear        *string `json:"expYear,omitempty"`
	Code           *string `json:"code,omitempty"`

	// note
	Content *string `json:"content,omitempty"`
}

// ToSecret 按 type 组装明文，缺少该类型任一字段时报错
func (r *CredentialRequest) ToSecret() (model.Secret, error) {
	switch model.CredentialKind(r.Kind) {
	case model.CredentialKindLogin:
		if err := requireFields(map[string]*string{"url": r.URL, "username": r.Username, "password": r.Password}); err != nil {
			return nil, err
		}
		return model.LoginSecret{URL: *r.URL, Username: *r.Username, Password: *r.Password}, nil
	case model.CredentialKindCard:
		if err := requireFields(map[string]*string{
			"cardholderName": r.CardholderName,
			"number":         r.Number,
			"expMonth":       r.ExpMonth,
			"expYear":        r.ExpYear,
			"code":           r.Code,
		}); err != nil {
			return nil, err
		}
		return model.CardSecret{
			CardholderName: *r.CardholderName,
			Number:         *r.Number,
			ExpMonth:       *r.ExpMonth,
			ExpYear:        *r.ExpYear,
			Code:           *r.Code,
		}, nil
	case model.CredentialKindNote:
		if err := requireFields(map[string]*string{"content": r.Content}); err != nil {
			return nil, err
		}
		return model.NoteSecret{Content: *r.Content}, nil
	default:
		return nil, fmt.Errorf("field 'type' must be one of: login card note")
	}
}

func requireFields(fields map[string]*string) error {
	names := lo.Keys(fields)
	sort.Strings(names)
	for _, name := range names {
		if fields[name] == nil {
			return fmt.Errorf("field '%s' is required", name)
		}
	}
	return nil
}

// CredentialListQuery 列表分页参数
type CredentialListQuery struct {
	Offset int `form:"offset,default=0" binding:"min=0,max=100"`
	Limit  int `form:"limit,default=25" binding:"min=1,max=100"`
}

// CredentialIDParam 路径参数
type CredentialIDParam struct {
	ID string `uri:"credentialId" binding:"required"`
}

// CredentialResponse 凭据响应
// 公共字段之外按 type 展开对应明文字段，未知 type 只返回公共字段
type CredentialResponse struct {
	ID             string    `json:"id"`
	Kind           string    `json:"type"`
	Name           string    `json:"name"`
	UserID         string    `json:"userId"`
	OrganizationID string    `json:"organizationId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	*model.LoginSecret
	*model.CardSecret
	*model.NoteSecret
}

// Secret 返回响应中携带的明文，没有时为 nil
func (r *CredentialResponse) Secret() model.Secret {
	switch {
	case r.LoginSecret != nil:
		return *r.LoginSecret
	case r.CardSecret != nil:
		return *r.CardSecret
	case r.NoteSecret != nil:
		return *r.NoteSecret
	}
	return nil
}

// CredentialListResponse 凭据列表
type CredentialListResponse struct {
	Credentials []*CredentialResponse `json:"credentials"`
	TotalCount  int64                 `json:"totalCount"`
}

// IDResponse 写操作响应
type IDResponse struct {
	ID string `json:"id"`
}
