package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"seecooker/dao"
	"seecooker/models"
	"seecooker/pkg/snowflake"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库随连接销毁，限制为单连接
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.RecipeScore{},
		&models.Ingredient{},
		&models.IngredientAmount{},
		&models.Post{},
		&models.PostLike{},
		&models.Comment{},
	))
	return db
}

// fakeFavoriteCache 内存版收藏缓存，可注入故障
type fakeFavoriteCache struct {
	data   map[string]bool
	getErr error
	setErr error
}

func newFakeFavoriteCache() *fakeFavoriteCache {
	return &fakeFavoriteCache{data: make(map[string]bool)}
}

func (f *fakeFavoriteCache) cacheKey(userID, recipeID uint64) string {
	return fmt.Sprintf("%d:%d", userID, recipeID)
}

func (f *fakeFavoriteCache) Get(_ context.Context, userID, recipeID uint64) (bool, bool, error) {
	if f.getErr != nil {
		return false, false, f.getErr
	}
	val, ok := f.data[f.cacheKey(userID, recipeID)]
	return val, ok, nil
}

func (f *fakeFavoriteCache) Set(_ context.Context, userID, recipeID uint64, favorite bool) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[f.cacheKey(userID, recipeID)] = favorite
	return nil
}

type fakePublisher struct {
	topics []string
	bodies [][]byte
	err    error
}

func (f *fakePublisher) SendMsg(_ context.Context, topic string, body []byte) error {
	if f.err != nil {
		return f.err
	}
	f.topics = append(f.topics, topic)
	f.bodies = append(f.bodies, body)
	return nil
}

func newRecipeService(db *gorm.DB, favorite FavoriteCache) *RecipeService {
	return &RecipeService{
		RecipeDAO:           dao.NewRecipeDAO(db),
		RecipeScoreDAO:      dao.NewRecipeScoreDAO(db),
		IngredientDAO:       dao.NewIngredientDAO(db),
		IngredientAmountDAO: dao.NewIngredientAmountDAO(db),
		UsersRepo:           dao.NewUsers(db),
		Favorite:            favorite,
	}
}

// fakeLikeCache 内存版点赞集合缓存
type fakeLikeCache struct {
	data map[string]bool
	err  error
}

func newFakeLikeCache() *fakeLikeCache {
	return &fakeLikeCache{data: make(map[string]bool)}
}

func (f *fakeLikeCache) cacheKey(postID, userID uint64) string {
	return fmt.Sprintf("%d:%d", postID, userID)
}

func (f *fakeLikeCache) IsMember(_ context.Context, postID, userID uint64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.data[f.cacheKey(postID, userID)], nil
}

func (f *fakeLikeCache) Add(_ context.Context, postID, userID uint64) error {
	if f.err != nil {
		return f.err
	}
	f.data[f.cacheKey(postID, userID)] = true
	return nil
}

func (f *fakeLikeCache) Remove(_ context.Context, postID, userID uint64) error {
	if f.err != nil {
		return f.err
	}
	delete(f.data, f.cacheKey(postID, userID))
	return nil
}

func newPostService(db *gorm.DB) *PostService {
	return &PostService{
		PostDAO:     dao.NewPostDAO(db),
		PostLikeDAO: dao.NewPostLikeDAO(db),
		CommentDAO:  dao.NewCommentDAO(db),
		UsersRepo:   dao.NewUsers(db),
		Like:        newFakeLikeCache(),
	}
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	now := time.Now()
	user := &models.User{
		ID:              uint64(snowflake.GenID()),
		Username:        username,
		Password:        "not-a-real-hash",
		Avatar:          "https://dummyimage.com/100x100",
		Posts:           []uint64{},
		PostRecipes:     []uint64{},
		FavoriteRecipes: []uint64{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestRecipe(t *testing.T, db *gorm.DB, authorID uint64, name string, createdAt time.Time) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		ID:           uint64(snowflake.GenID()),
		Name:         name,
		Introduction: "介绍",
		AuthorID:     authorID,
		StepContents: []string{"步骤一"},
		StepImages:   []string{"https://example.com/step1.jpg"},
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}
