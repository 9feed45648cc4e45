package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"seecooker/models"
	"seecooker/pkg/response"
	"seecooker/pkg/snowflake"
	"seecooker/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestPost(t *testing.T, db *gorm.DB, authorID uint64, title string, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{
		ID:        uint64(snowflake.GenID()),
		AuthorID:  authorID,
		Title:     title,
		Content:   "内容",
		Images:    []string{},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func TestPublishPost(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)
	ctx := context.Background()

	author := createTestUser(t, db, "小王")
	req := &types.PublishPostRequest{Title: "今天做了红烧肉", Content: "很成功"}

	postID, err := svc.PublishPost(ctx, author.ID, req, []string{"https://example.com/1.jpg"})
	require.NoError(t, err)
	require.NotZero(t, postID)

	// 帖子进入作者的发布列表
	user, err := svc.UsersRepo.FindById(ctx, author.ID)
	require.NoError(t, err)
	assert.Contains(t, []uint64(user.Posts), postID)

	_, err = svc.PublishPost(ctx, 404, req, nil)
	assert.ErrorIs(t, err, response.ErrUserNotExist)
}

func TestListPostsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)
	ctx := context.Background()

	author := createTestUser(t, db, "小王")
	base := time.Now().Add(-time.Hour)
	createTestPost(t, db, author.ID, "旧帖", base)
	createTestPost(t, db, author.ID, "新帖", base.Add(time.Minute))

	posts, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "新帖", posts[0].Title)
	assert.Equal(t, "旧帖", posts[1].Title)
	assert.Equal(t, "小王", posts[0].AuthorName)
}

func TestCommentFlow(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)
	ctx := context.Background()

	author := createTestUser(t, db, "小王")
	alice := createTestUser(t, db, "爱丽丝")
	post := createTestPost(t, db, author.ID, "求助", time.Now())

	_, err := svc.AddComment(ctx, alice.ID, 404, "沙发")
	assert.ErrorIs(t, err, response.ErrPostNotExist)

	commentID, err := svc.AddComment(ctx, alice.ID, post.ID, "沙发")
	require.NoError(t, err)
	require.NotZero(t, commentID)
	_, err = svc.AddComment(ctx, author.ID, post.ID, "自答")
	require.NoError(t, err)

	comments, err := svc.GetComments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	// 按时间正序
	assert.Equal(t, "沙发", comments[0].Content)
	assert.Equal(t, "爱丽丝", comments[0].AuthorName)
	assert.Equal(t, "自答", comments[1].Content)
}

func TestLikePostToggle(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)
	ctx := context.Background()

	author := createTestUser(t, db, "小王")
	alice := createTestUser(t, db, "爱丽丝")
	post := createTestPost(t, db, author.ID, "晒图", time.Now())

	_, err := svc.LikePost(ctx, 0, post.ID)
	assert.ErrorIs(t, err, response.ErrUnauthorized)

	liked, err := svc.LikePost(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	got, err := svc.PostDAO.FindById(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.LikeCount)

	// 再次点赞即取消
	liked, err = svc.LikePost(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	got, err = svc.PostDAO.FindById(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.LikeCount)
}

func TestLikeStateCacheSelfHeal(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)
	ctx := context.Background()

	author := createTestUser(t, db, "小王")
	alice := createTestUser(t, db, "爱丽丝")
	post := createTestPost(t, db, author.ID, "晒图", time.Now())

	// 直接写持久化点赞记录，缓存为空
	require.NoError(t, svc.PostLikeDAO.SetStatus(ctx, post.ID, alice.ID, 1))

	fake := svc.Like.(*fakeLikeCache)
	detail, err := svc.GetPostDetail(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, detail.IsLiked)
	// 回查后集合已回写
	member, err := fake.IsMember(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, member)

	// 缓存不可用时回落数据库
	fake.err = errors.New("connection refused")
	detail, err = svc.GetPostDetail(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, detail.IsLiked)
}

func TestGetPostDetail(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)
	ctx := context.Background()

	author := createTestUser(t, db, "小王")
	alice := createTestUser(t, db, "爱丽丝")
	post := createTestPost(t, db, author.ID, "晒图", time.Now())

	_, err := svc.LikePost(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, alice.ID, post.ID, "好看")
	require.NoError(t, err)

	detail, err := svc.GetPostDetail(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "晒图", detail.Title)
	assert.True(t, detail.IsLiked)
	assert.Equal(t, int64(1), detail.LikeCount)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "好看", detail.Comments[0].Content)

	// 未登录访客不展示点赞状态
	detail, err = svc.GetPostDetail(ctx, 0, post.ID)
	require.NoError(t, err)
	assert.False(t, detail.IsLiked)

	_, err = svc.GetPostDetail(ctx, 0, 404)
	assert.ErrorIs(t, err, response.ErrPostNotExist)
}

func TestDeletePostAuthorOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)
	ctx := context.Background()

	author := createTestUser(t, db, "小王")
	alice := createTestUser(t, db, "爱丽丝")
	req := &types.PublishPostRequest{Title: "删我", Content: "内容"}
	postImages := []string{"https://example.com/post/a.jpg", "https://example.com/post/b.jpg"}
	postID, err := svc.PublishPost(ctx, author.ID, req, postImages)
	require.NoError(t, err)

	_, err = svc.DeletePost(ctx, alice.ID, postID)
	assert.ErrorIs(t, err, response.ErrUnauthorized)

	// 删除成功时返回图片 URL 供上层清理
	images, err := svc.DeletePost(ctx, author.ID, postID)
	require.NoError(t, err)
	assert.Equal(t, postImages, images)

	_, err = svc.GetPostDetail(ctx, 0, postID)
	assert.ErrorIs(t, err, response.ErrPostNotExist)

	_, err = svc.DeletePost(ctx, author.ID, postID)
	assert.ErrorIs(t, err, response.ErrPostNotExist)
}
