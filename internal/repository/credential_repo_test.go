package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"user-vault/internal/model"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "user:pass@tcp(127.0.0.1:3306)/vault?parseTime=True",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestFindManySQL(t *testing.T) {
	db := dryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var list []*model.UserCredential
		q := tx.Model(&model.UserCredential{}).Where(model.CredentialFilter{UserID: "u1", OrganizationID: "o1"}.Conditions())
		return applyOptions(q, WithNewestFirst(), WithPagination(model.Pagination{Offset: 5, Limit: 25})).Find(&list)
	})

	assert.Contains(t, sql, "FROM `user_credentials`")
	assert.Contains(t, sql, "`userId` = 'u1'")
	assert.Contains(t, sql, "`organizationId` = 'o1'")
	assert.Contains(t, sql, "ORDER BY `createdAt` DESC,`id` DESC")
	assert.Contains(t, sql, "LIMIT 25 OFFSET 5")
}

func TestWithPagination_NoLimit(t *testing.T) {
	db := dryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var list []*model.UserCredential
		return applyOptions(tx.Model(&model.UserCredential{}), WithPagination(model.Pagination{})).Find(&list)
	})
	assert.NotContains(t, sql, "LIMIT")
}

func TestFindOneSQL(t *testing.T) {
	db := dryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var c model.UserCredential
		return tx.Where(model.CredentialFilter{ID: "5b1d1c2e-6a5e-4f8a-9c1d-2b3a4c5d6e7f"}.Conditions()).Take(&c)
	})
	assert.Contains(t, sql, "`id` = '5b1d1c2e-6a5e-4f8a-9c1d-2b3a4c5d6e7f'")
	assert.Contains(t, sql, "LIMIT 1")
	assert.NotContains(t, sql, "userId")
}

func TestCredentialFilter_Conditions(t *testing.T) {
	assert.Empty(t, model.CredentialFilter{}.Conditions())
	assert.Equal(t, map[string]interface{}{"userId": "u", "organizationId": "o"},
		model.CredentialFilter{UserID: "u", OrganizationID: "o"}.Conditions())
}

func TestCredentialRepository_RejectsEmptyFilter(t *testing.T) {
	repo := NewCredentialRepository(dryRunDB(t))
	ctx := context.Background()

	c, err := repo.FindOne(ctx, model.CredentialFilter{})
	assert.ErrorIs(t, err, ErrEmptyFilter)
	assert.Nil(t, c)

	list, err := repo.FindMany(ctx, model.CredentialFilter{}, model.Pagination{Limit: 25})
	assert.ErrorIs(t, err, ErrEmptyFilter)
	assert.Nil(t, list)

	_, err = repo.Count(ctx, model.CredentialFilter{})
	assert.ErrorIs(t, err, ErrEmptyFilter)

	_, err = repo.UpdateByID(ctx, "", model.CredentialUpdate{Name: "x"})
	assert.ErrorIs(t, err, ErrEmptyFilter)

	assert.ErrorIs(t, repo.DeleteByID(ctx, ""), ErrEmptyFilter)
}

func TestCredentialFilter_Empty(t *testing.T) {
	assert.True(t, model.CredentialFilter{}.Empty())
	assert.False(t, model.CredentialFilter{ID: "x"}.Empty())
	assert.False(t, model.CredentialFilter{OrganizationID: "o"}.Empty())
}
