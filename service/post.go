package service

import (
	"context"
	"errors"
	"time"

	"seecooker/dao"
	"seecooker/models"
	"seecooker/pkg/log"
	"seecooker/pkg/response"
	"seecooker/pkg/snowflake"
	"seecooker/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IPostService = (*PostService)(nil)

// LikeCache 帖子点赞集合缓存
// 持久化点赞记录是权威数据，集合只做读加速
type LikeCache interface {
	IsMember(ctx context.Context, postID uint64, userID uint64) (bool, error)
	Add(ctx context.Context, postID uint64, userID uint64) error
	Remove(ctx context.Context, postID uint64, userID uint64) error
}

type IPostService interface {
	PublishPost(ctx context.Context, authorID uint64, req *types.PublishPostRequest, images []string) (uint64, error)
	ListPosts(ctx context.Context) ([]*types.PostListItem, error)
	GetPostDetail(ctx context.Context, viewerID uint64, postID uint64) (*types.PostDetail, error)
	AddComment(ctx context.Context, userID uint64, postID uint64, content string) (uint64, error)
	GetComments(ctx context.Context, postID uint64) ([]types.CommentItem, error)
	LikePost(ctx context.Context, userID uint64, postID uint64) (bool, error)
	DeletePost(ctx context.Context, userID uint64, postID uint64) ([]string, error)
}

type PostService struct {
	PostDAO     *dao.PostDAO
	PostLikeDAO *dao.PostLikeDAO
	CommentDAO  *dao.CommentDAO
	UsersRepo   *dao.Users
	Like        LikeCache
}

// PublishPost 发布帖子
func (s *PostService) PublishPost(ctx context.Context, authorID uint64, req *types.PublishPostRequest, images []string) (uint64, error) {
	exist, err := s.UsersRepo.IsExist(ctx, "id = ?", authorID)
	if err != nil {
		return 0, err
	}
	if !exist {
		return 0, response.ErrUserNotExist
	}

	now := time.Now()
	post := &models.Post{
		ID:        uint64(snowflake.GenID()),
		AuthorID:  authorID,
		Title:     req.Title,
		Content:   req.Content,
		Images:    images,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.PostDAO.Create(ctx, post); err != nil {
		return 0, err
	}
	if err := s.UsersRepo.AppendPost(ctx, authorID, post.ID); err != nil {
		return 0, err
	}
	return post.ID, nil
}

// ListPosts 获取帖子列表，最新的在前
func (s *PostService) ListPosts(ctx context.Context) ([]*types.PostListItem, error) {
	posts, err := s.PostDAO.FindAllOrderByCreateTimeDesc(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*types.PostListItem, 0, len(posts))
	for _, post := range posts {
		item, err := s.mapPost(ctx, post)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

// GetPostDetail 获取帖子详情，包含评论与当前用户点赞状态
func (s *PostService) GetPostDetail(ctx context.Context, viewerID uint64, postID uint64) (*types.PostDetail, error) {
	post, err := s.PostDAO.FindById(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrPostNotExist
		}
		return nil, err
	}

	item, err := s.mapPost(ctx, post)
	if err != nil {
		return nil, err
	}

	isLiked := false
	if viewerID > 0 {
		isLiked, err = s.isLiked(ctx, postID, viewerID)
		if err != nil {
			return nil, err
		}
	}

	comments, err := s.GetComments(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &types.PostDetail{
		PostListItem: *item,
		IsLiked:      isLiked,
		Comments:     comments,
	}, nil
}

// AddComment 发表评论
func (s *PostService) AddComment(ctx context.Context, userID uint64, postID uint64, content string) (uint64, error) {
	exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
	if err != nil {
		return 0, err
	}
	if !exist {
		return 0, response.ErrPostNotExist
	}

	now := time.Now()
	comment := &models.Comment{
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return 0, err
	}
	return comment.ID, nil
}

// GetComments 获取帖子评论，按时间正序
func (s *PostService) GetComments(ctx context.Context, postID uint64) ([]types.CommentItem, error) {
	comments, err := s.CommentDAO.FindByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	result := make([]types.CommentItem, 0, len(comments))
	for _, comment := range comments {
		item := types.CommentItem{
			ID:        comment.ID,
			UserID:    comment.UserID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		}
		author, err := s.UsersRepo.FindById(ctx, comment.UserID)
		if err == nil {
			item.AuthorName = author.Username
			item.AuthorAvatar = author.Avatar
		}
		result = append(result, item)
	}
	return result, nil
}

// LikePost 点赞或取消点赞帖子，返回交互后的点赞状态
func (s *PostService) LikePost(ctx context.Context, userID uint64, postID uint64) (bool, error) {
	if userID == 0 {
		return false, response.ErrUnauthorized
	}
	exist, err := s.PostDAO.IsExist(ctx, "id = ?", postID)
	if err != nil {
		return false, err
	}
	if !exist {
		return false, response.ErrPostNotExist
	}

	isLiked, err := s.isLiked(ctx, postID, userID)
	if err != nil {
		return false, err
	}

	if isLiked {
		if err := s.PostLikeDAO.SetStatus(ctx, postID, userID, 0); err != nil {
			return false, err
		}
		if err := s.PostDAO.IncrLikeCount(ctx, postID, -1); err != nil {
			return false, err
		}
		if err := s.Like.Remove(ctx, postID, userID); err != nil {
			log.L.Warn("like cache remove error", zap.Error(err), zap.Uint64("postId", postID))
		}
		return false, nil
	}

	if err := s.PostLikeDAO.SetStatus(ctx, postID, userID, 1); err != nil {
		return false, err
	}
	if err := s.PostDAO.IncrLikeCount(ctx, postID, 1); err != nil {
		return false, err
	}
	if err := s.Like.Add(ctx, postID, userID); err != nil {
		log.L.Warn("like cache add error", zap.Error(err), zap.Uint64("postId", postID))
	}
	return true, nil
}

// isLiked 点赞状态查询，集合命中直接返回，否则回查点赞记录并回写集合
func (s *PostService) isLiked(ctx context.Context, postID uint64, userID uint64) (bool, error) {
	member, err := s.Like.IsMember(ctx, postID, userID)
	if err != nil {
		// 缓存不可用时回落数据库
		log.L.Warn("like cache query error", zap.Error(err), zap.Uint64("postId", postID))
	} else if member {
		return true, nil
	}

	liked, err := s.PostLikeDAO.IsLiked(ctx, postID, userID)
	if err != nil {
		return false, err
	}
	if liked {
		if err := s.Like.Add(ctx, postID, userID); err != nil {
			log.L.Warn("like cache add error", zap.Error(err), zap.Uint64("postId", postID))
		}
	}
	return liked, nil
}

// DeletePost 删除帖子，仅作者本人可删除
// 返回被删帖子的图片 URL，供上层清理对象存储
func (s *PostService) DeletePost(ctx context.Context, userID uint64, postID uint64) ([]string, error) {
	post, err := s.PostDAO.FindById(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrPostNotExist
		}
		return nil, err
	}
	if post.AuthorID != userID {
		return nil, response.ErrUnauthorized
	}
	if err := s.PostDAO.DeleteById(ctx, postID); err != nil {
		return nil, err
	}
	return post.Images, nil
}

func (s *PostService) mapPost(ctx context.Context, post *models.Post) (*types.PostListItem, error) {
	item := &types.PostListItem{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Images:    post.Images,
		LikeCount: post.LikeCount,
		CreatedAt: post.CreatedAt,
	}
	author, err := s.UsersRepo.FindById(ctx, post.AuthorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrUserNotExist
		}
		return nil, err
	}
	item.AuthorName = author.Username
	item.AuthorAvatar = author.Avatar
	return item, nil
}
