package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"user-vault/internal/model"
)

type QueryOption func(*gorm.DB) *gorm.DB

// WithPagination offset/limit，limit<=0 时不分页
func WithPagination(p model.Pagination) QueryOption {
	return func(db *gorm.DB) *gorm.DB {
		if p.Limit <= 0 {
			return db
		}
		return db.Offset(p.Offset).Limit(p.Limit)
	}
}

// WithNewestFirst createdAt 倒序，id 作为同一时间戳下的稳定排序
func WithNewestFirst() QueryOption {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "createdAt"}, Desc: true}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true})
	}
}

func applyOptions(db *gorm.DB, opts ...QueryOption) *gorm.DB {
	for _, opt := range opts {
		db = opt(db)
	}
	return db
}
