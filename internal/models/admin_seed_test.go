package models

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func openAdminDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Admin{}))
	return db
}

func TestEnsureSuperAdminCreatesOnEmptyDB(t *testing.T) {
	db := openAdminDB(t)

	created, err := EnsureSuperAdmin(db, " root ", "s3cret")
	require.NoError(t, err)
	assert.True(t, created)

	var admin Admin
	require.NoError(t, db.Where("username = ?", "root").First(&admin).Error)
	assert.True(t, admin.IsSuper)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("s3cret")))
}

func TestEnsureSuperAdminPromotesExisting(t *testing.T) {
	db := openAdminDB(t)
	require.NoError(t, db.Create(&Admin{Username: "admin", PasswordHash: "x"}).Error)
	require.NoError(t, db.Create(&Admin{Username: "other", PasswordHash: "x"}).Error)

	created, err := EnsureSuperAdmin(db, "", "")
	require.NoError(t, err)
	assert.False(t, created)

	var admin, other Admin
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	require.NoError(t, db.Where("username = ?", "other").First(&other).Error)
	assert.True(t, admin.IsSuper)
	assert.False(t, other.IsSuper)

	var count int64
	require.NoError(t, db.Model(&Admin{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestAdminLabel(t *testing.T) {
	assert.Equal(t, "ada", (&Admin{Username: "ada"}).Label())
	assert.Equal(t, "Ada L.", (&Admin{Username: "ada", DisplayName: " Ada L. "}).Label())
	assert.Equal(t, "", (*Admin)(nil).Label())
}
