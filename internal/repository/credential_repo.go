package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"user-vault/internal/model"
	pkgErrors "user-vault/pkg/responses"
)

// ErrEmptyFilter 不带条件的读写会命中整张表，直接拒绝
var ErrEmptyFilter = pkgErrors.New(pkgErrors.CodeBadRequest, "查询条件不能为空")

type CredentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Create 新增凭据，ID 与时间戳为空时由 gorm 填充
func (r *CredentialRepository) Create(ctx context.Context, c *model.UserCredential) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建凭据失败", err)
	}
	return nil
}

// FindOne 按条件查询单条，不存在时返回 (nil, nil)
func (r *CredentialRepository) FindOne(ctx context.Context, filter model.CredentialFilter) (*model.UserCredential, error) {
	if filter.Empty() {
		return nil, ErrEmptyFilter
	}
	var c model.UserCredential
	err := r.db.WithContext(ctx).Where(filter.Conditions()).Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询凭据失败", err)
	}
	return &c, nil
}

// FindMany 按条件分页查询，createdAt 倒序
func (r *CredentialRepository) FindMany(ctx context.Context, filter model.CredentialFilter, page model.Pagination) ([]*model.UserCredential, error) {
	if filter.Empty() {
		return nil, ErrEmptyFilter
	}
	var list []*model.UserCredential
	q := r.db.WithContext(ctx).Model(&model.UserCredential{}).Where(filter.Conditions())
	q = applyOptions(q, WithNewestFirst(), WithPagination(page))
	if err := q.Find(&list).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询凭据列表失败", err)
	}
	return list, nil
}

// Count 按条件计数（不分页）
func (r *CredentialRepository) Count(ctx context.Context, filter model.CredentialFilter) (int64, error) {
	if filter.Empty() {
		return 0, ErrEmptyFilter
	}
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.UserCredential{}).Where(filter.Conditions()).Count(&total).Error; err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计凭据数量失败", err)
	}
	return total, nil
}

// UpdateByID 整体替换 type/name/encryptedData 并刷新 updatedAt
func (r *CredentialRepository) UpdateByID(ctx context.Context, id string, fields model.CredentialUpdate) (*model.UserCredential, error) {
	if id == "" {
		return nil, ErrEmptyFilter
	}
	var updated *model.UserCredential
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updatedAt := fields.UpdatedAt
		if updatedAt.IsZero() {
			updatedAt = tx.NowFunc()
		}
		res := tx.Model(&model.UserCredential{}).
			Where(model.CredentialFilter{ID: id}.Conditions()).
			Updates(map[string]interface{}{
				"type":          fields.Kind,
				"name":          fields.Name,
				"encryptedData": fields.EncryptedData,
				"updatedAt":     updatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var c model.UserCredential
		if err := tx.Where(model.CredentialFilter{ID: id}.Conditions()).Take(&c).Error; err != nil {
			return err
		}
		updated = &c
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgErrors.ErrRecordNotFound
	}
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新凭据失败", err)
	}
	return updated, nil
}

// DeleteByID 物理删除
func (r *CredentialRepository) DeleteByID(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyFilter
	}
	if err := r.db.WithContext(ctx).Where(model.CredentialFilter{ID: id}.Conditions()).Delete(&model.UserCredential{}).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除凭据失败", err)
	}
	return nil
}
