package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"user-vault/internal/dto"
	"user-vault/internal/model"
	"user-vault/internal/pkg/crypto"
	"user-vault/pkg/constants"
	pkgErrors "user-vault/pkg/responses"
)

// CredentialStore 凭据存储，按主键与过滤条件读写不透明的密文记录
type CredentialStore interface {
	Create(ctx context.Context, c *model.UserCredential) error
	FindOne(ctx context.Context, filter model.CredentialFilter) (*model.UserCredential, error)
	FindMany(ctx context.Context, filter model.CredentialFilter, page model.Pagination) ([]*model.UserCredential, error)
	Count(ctx context.Context, filter model.CredentialFilter) (int64, error)
	UpdateByID(ctx context.Context, id string, fields model.CredentialUpdate) (*model.UserCredential, error)
	DeleteByID(ctx context.Context, id string) error
}

type CredentialService interface {
	List(ctx context.Context, actor model.Actor, offset, limit int) (*dto.CredentialListResponse, error)
	Create(ctx context.Context, actor model.Actor, name string, secret model.Secret) (*dto.IDResponse, error)
	Get(ctx context.Context, actor model.Actor, id string) (*dto.CredentialResponse, error)
	Update(ctx context.Context, actor model.Actor, id, name string, secret model.Secret) (*dto.IDResponse, error)
	Delete(ctx context.Context, actor model.Actor, id string) (*dto.IDResponse, error)
}

// CredentialServiceOptions 凭据服务可选项，零值字段使用默认值
type CredentialServiceOptions struct {
	DecryptConcurrency int
	StrictOrgCheck     bool // 读写单条凭据时要求 organizationId 与请求方一致
	MaxPayloadBytes    int
	Now                func() time.Time
}

func (o CredentialServiceOptions) withDefaults() CredentialServiceOptions {
	if o.DecryptConcurrency < 1 {
		o.DecryptConcurrency = 8
	}
	if o.MaxPayloadBytes < 1 {
		o.MaxPayloadBytes = constants.MaxCredentialPayloadBytes
	}
	if o.Now == nil {
		o.Now = func() time.Time { return time.Now().UTC() }
	}
	return o
}

type credentialService struct {
	logger *zap.Logger
	repo   CredentialStore
	cipher crypto.RootKeyCipher
	opts   CredentialServiceOptions
}

func NewCredentialService(logger *zap.Logger, repo CredentialStore, cipher crypto.RootKeyCipher, opts CredentialServiceOptions) CredentialService {
	return &credentialService{
		logger: logger,
		repo:   repo,
		cipher: cipher,
		opts:   opts.withDefaults(),
	}
}

// Create 创建凭据，返回新凭据ID
func (s *credentialService) Create(ctx context.Context, actor model.Actor, name string, secret model.Secret) (*dto.IDResponse, error) {
	if actor.Anonymous() {
		return nil, pkgErrors.ErrUnauthorized
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	enc, err := s.seal(ctx, secret)
	if err != nil {
		return nil, err
	}

	now := s.opts.Now()
	c := &model.UserCredential{
		BaseModel:      model.BaseModel{CreatedAt: now, UpdatedAt: now},
		Kind:           secret.Kind(),
		Name:           name,
		EncryptedData:  enc,
		UserID:         actor.ID,
		OrganizationID: actor.OrgID,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, storageError("创建凭据失败", err)
	}

	s.logger.Info("凭据已创建",
		zap.String("credential_id", c.ID),
		zap.String("type", string(c.Kind)),
		zap.String("user_id", actor.ID),
	)
	return &dto.IDResponse{ID: c.ID}, nil
}

// List 当前用户在当前组织下的凭据，createdAt 倒序分页
// 任一记录解密失败则整个列表失败
func (s *credentialService) List(ctx context.Context, actor model.Actor, offset, limit int) (*dto.CredentialListResponse, error) {
	if actor.Anonymous() {
		return nil, pkgErrors.ErrUnauthorized
	}
	if offset < 0 || limit < 1 || limit > constants.MaxLimit {
		return nil, pkgErrors.New(pkgErrors.CodeBadRequest, fmt.Sprintf("分页参数错误: offset>=0, 1<=limit<=%d", constants.MaxLimit))
	}

	filter := model.CredentialFilter{UserID: actor.ID, OrganizationID: actor.OrgID}

	records, err := s.repo.FindMany(ctx, filter, model.Pagination{Offset: offset, Limit: limit})
	if err != nil {
		return nil, storageError("查询凭据列表失败", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, storageError("统计凭据数量失败", err)
	}

	items := make([]*dto.CredentialResponse, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.DecryptConcurrency)
	for i, record := range records {
		g.Go(func() error {
			secret, err := s.open(gctx, record)
			if err != nil {
				return err
			}
			items[i] = toCredentialResponse(record, secret)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.CredentialListResponse{Credentials: items, TotalCount: total}, nil
}

// Get 获取凭据详情（含明文）
func (s *credentialService) Get(ctx context.Context, actor model.Actor, id string) (*dto.CredentialResponse, error) {
	c, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	secret, err := s.open(ctx, c)
	if err != nil {
		return nil, err
	}
	return toCredentialResponse(c, secret), nil
}

// Update 整体替换 name 与明文，type 不允许变更
func (s *credentialService) Update(ctx context.Context, actor model.Actor, id, name string, secret model.Secret) (*dto.IDResponse, error) {
	c, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	if secret != nil && secret.Kind() != c.Kind {
		return nil, pkgErrors.New(pkgErrors.CodeBadRequest, fmt.Sprintf("凭据类型不可修改: %s -> %s", c.Kind, secret.Kind()))
	}

	enc, err := s.seal(ctx, secret)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateByID(ctx, c.ID, model.CredentialUpdate{
		Kind:          secret.Kind(),
		Name:          name,
		EncryptedData: enc,
		UpdatedAt:     s.opts.Now(),
	})
	if err != nil {
		if errors.Is(err, pkgErrors.ErrNotFound) {
			return nil, notFound(id)
		}
		return nil, storageError("更新凭据失败", err)
	}

	s.logger.Info("凭据已更新", zap.String("credential_id", updated.ID), zap.String("user_id", actor.ID))
	return &dto.IDResponse{ID: updated.ID}, nil
}

// Delete 删除凭据（物理删除）
func (s *credentialService) Delete(ctx context.Context, actor model.Actor, id string) (*dto.IDResponse, error) {
	c, err := s.authorize(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteByID(ctx, c.ID); err != nil {
		return nil, storageError("删除凭据失败", err)
	}

	s.logger.Info("凭据已删除", zap.String("credential_id", c.ID), zap.String("user_id", actor.ID))
	return &dto.IDResponse{ID: c.ID}, nil
}

// validateName 名称不能为空白，长度与列宽一致
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return pkgErrors.New(pkgErrors.CodeBadRequest, "凭据名称不能为空")
	}
	if !utf8.ValidString(name) {
		return pkgErrors.New(pkgErrors.CodeBadRequest, "凭据名称不是合法的 UTF-8 文本")
	}
	if utf8.RuneCountInString(name) > constants.MaxCredentialNameLength {
		return pkgErrors.New(pkgErrors.CodeBadRequest, fmt.Sprintf("凭据名称过长，最多 %d 个字符", constants.MaxCredentialNameLength))
	}
	return nil
}

// authorize 单条凭据读写的前置校验：ID 格式、身份、存在性、归属
func (s *credentialService) authorize(ctx context.Context, actor model.Actor, id string) (*model.UserCredential, error) {
	if !isUUIDv4(id) {
		return nil, pkgErrors.ErrInvalidCredentialID
	}
	if actor.Anonymous() {
		return nil, pkgErrors.ErrUnauthorized
	}

	c, err := s.repo.FindOne(ctx, model.CredentialFilter{ID: id})
	if err != nil {
		return nil, storageError("查询凭据失败", err)
	}
	if c == nil {
		return nil, notFound(id)
	}

	if c.UserID != actor.ID || (s.opts.StrictOrgCheck && c.OrganizationID != actor.OrgID) {
		s.logger.Warn("拒绝访问他人凭据",
			zap.String("credential_id", id),
			zap.String("user_id", actor.ID),
			zap.String("org_id", actor.OrgID),
		)
		return nil, pkgErrors.ErrForbidden
	}
	return c, nil
}

// seal 序列化并用根密钥加密，返回 hex 密文
func (s *credentialService) seal(ctx context.Context, secret model.Secret) (string, error) {
	payload, err := encodeSecret(secret, s.opts.MaxPayloadBytes)
	if err != nil {
		return "", err
	}

	ciphertext, err := s.cipher.EncryptWithRootKey(ctx, payload)
	if err != nil {
		return "", pkgErrors.Wrap(pkgErrors.CodeEncryptionError, "凭据加密失败", err)
	}
	return hex.EncodeToString(ciphertext), nil
}

// open 解密并按 kind 还原明文
// 未知 kind 返回 nil；密文为空时返回该类型的空字段集合
func (s *credentialService) open(ctx context.Context, c *model.UserCredential) (model.Secret, error) {
	if !c.Kind.Valid() {
		return nil, nil
	}
	if c.EncryptedData == "" {
		return decodeSecret(c.Kind, []byte("{}"))
	}

	ciphertext, err := hex.DecodeString(c.EncryptedData)
	if err != nil {
		s.logger.Error("凭据密文编码损坏", zap.String("credential_id", c.ID), zap.Error(err))
		return nil, pkgErrors.Wrap(pkgErrors.CodeDataIntegrity, fmt.Sprintf("凭据 '%s' 数据损坏", c.ID), err)
	}

	payload, err := s.cipher.DecryptWithRootKey(ctx, ciphertext)
	if err != nil {
		s.logger.Error("凭据解密失败", zap.String("credential_id", c.ID), zap.Error(err))
		return nil, pkgErrors.Wrap(pkgErrors.CodeEncryptionError, fmt.Sprintf("凭据 '%s' 解密失败", c.ID), err)
	}

	secret, err := decodeSecret(c.Kind, payload)
	if err != nil {
		s.logger.Error("凭据明文与类型不符", zap.String("credential_id", c.ID), zap.String("type", string(c.Kind)))
		return nil, pkgErrors.Wrap(pkgErrors.CodeDataIntegrity, fmt.Sprintf("凭据 '%s' 数据损坏", c.ID), err)
	}
	return secret, nil
}

func isUUIDv4(id string) bool {
	if len(id) != 36 {
		return false
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	return u.Version() == 4 && u.Variant() == uuid.RFC4122
}

func notFound(id string) error {
	return pkgErrors.New(pkgErrors.CodeNotFound, fmt.Sprintf("凭据 '%s' 不存在", id))
}

// storageError 存储层错误统一归为数据库错误，保留底层错误链
func storageError(op string, err error) error {
	return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, op, err)
}
