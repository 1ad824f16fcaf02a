package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel 基础模型，UUID 主键
// 列名沿用 camelCase，与既有 user_credentials 表结构保持一致
type BaseModel struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:createdAt;not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updatedAt;not null;autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate 未指定 ID 时生成 UUID v4
func (m *BaseModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Actor 已认证的请求方身份
type Actor struct {
	ID    string
	OrgID string
}

// Anonymous 身份信息不完整
func (a Actor) Anonymous() bool {
	return a.ID == "" || a.OrgID == ""
}
