package model

import (
	"time"

	"github.com/samber/lo"
)

const CredentialTableName = "user_credentials"

// CredentialKind 凭据类型，决定 encryptedData 解密后的结构
type CredentialKind string

const (
	CredentialKindLogin CredentialKind = "login" // url/username/password
	CredentialKindCard  CredentialKind = "card"  // 银行卡
	CredentialKindNote  CredentialKind = "note"  // 安全笔记
)

// CredentialKinds 全部已知类型
var CredentialKinds = []CredentialKind{CredentialKindLogin, CredentialKindCard, CredentialKindNote}

// Valid 是否为已知类型
func (k CredentialKind) Valid() bool {
	return lo.Contains(CredentialKinds, k)
}

// UserCredential 用户私有凭据
//
// 说明：
// - encryptedData: 根密钥加密后的密文（hex），明文为对应类型字段的 JSON
// - userId/organizationId: 创建者身份，创建后不可变
type UserCredential struct {
	BaseModel

	Kind           CredentialKind `gorm:"column:type;size:16;not null" json:"type"`
	Name           string         `gorm:"column:name;size:255;not null" json:"name"`
	EncryptedData  string         `gorm:"column:encryptedData;type:text;not null" json:"-"`
	UserID         string         `gorm:"column:userId;type:varchar(36);not null;index" json:"userId"`
	OrganizationID string         `gorm:"column:organizationId;type:varchar(36);not null;index" json:"organizationId"`
}

func (UserCredential) TableName() string {
	return CredentialTableName
}

// CredentialFilter 查询条件，零值字段不参与过滤
type CredentialFilter struct {
	ID             string
	UserID         string
	OrganizationID string
}

// Empty 没有任何条件
func (f CredentialFilter) Empty() bool {
	return f.ID == "" && f.UserID == "" && f.OrganizationID == ""
}

// Conditions 转为 gorm map 条件（key 为列名）
func (f CredentialFilter) Conditions() map[string]interface{} {
	conds := make(map[string]interface{}, 3)
	if f.ID != "" {
		conds["id"] = f.ID
	}
	if f.UserID != "" {
		conds["userId"] = f.UserID
	}
	if f.OrganizationID != "" {
		conds["organizationId"] = f.OrganizationID
	}
	return conds
}

// CredentialUpdate 整体替换的可变字段
type CredentialUpdate struct {
	Kind          CredentialKind
	Name          string
	EncryptedData string
	UpdatedAt     time.Time // 为零值时由存储层取当前时间
}

// Pagination 偏移分页
type Pagination struct {
	Offset int
	Limit  int
}
