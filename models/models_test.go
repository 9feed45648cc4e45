package models

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// 所有模型在同一个库中建表，索引名在 sqlite 中是库级全局的，不能跨表重名
func TestAutoMigrateAllModels(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	models := []any{
		&User{},
		&Recipe{},
		&RecipeScore{},
		&Ingredient{},
		&IngredientAmount{},
		&Post{},
		&PostLike{},
		&Comment{},
	}
	require.NoError(t, db.AutoMigrate(models...))

	// 重复迁移应幂等
	require.NoError(t, db.AutoMigrate(models...))
}
