package models_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/croftbar/blogadmin/models"
)

func openSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		_ = sqlDB.Close()
	})
	return db
}

func TestSeedDataset(t *testing.T) {
	db := openSeedDB(t)

	stats, err := models.Seed(db)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Users)
	assert.EqualValues(t, 5, stats.Posts)
	assert.EqualValues(t, 4, stats.Published)

	var alice models.User
	require.NoError(t, db.Preload("Posts").Where("email = ?", "alice@example.com").First(&alice).Error)
	assert.Len(t, alice.Posts, 2)
}

func TestSeedIsRepeatable(t *testing.T) {
	db := openSeedDB(t)

	_, err := models.Seed(db)
	require.NoError(t, err)
	stats, err := models.Seed(db)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Users)
	assert.EqualValues(t, 5, stats.Posts)
}
