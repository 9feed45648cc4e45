package types

import "time"

// PublishPostRequest 发布帖子请求，图片通过 multipart 文件上传
type PublishPostRequest struct {
	Title   string `form:"title" binding:"required"`
	Content string `form:"content" binding:"required"`
}

type PublishPostResponse struct {
	PostID uint64 `json:"post_id"`
}

// PostListItem 帖子列表项
type PostListItem struct {
	ID           uint64    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Images       []string  `json:"images"`
	LikeCount    int64     `json:"like_count"`
	AuthorName   string    `json:"author_name"`
	AuthorAvatar string    `json:"author_avatar"`
	CreatedAt    time.Time `json:"created_at"`
}

// PostDetail 帖子详情
type PostDetail struct {
	PostListItem
	IsLiked  bool          `json:"is_liked"`
	Comments []CommentItem `json:"comments"`
}

type AddCommentRequest struct {
	PostID  uint64 `json:"post_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type CommentItem struct {
	ID           uint64    `json:"id"`
	UserID       uint64    `json:"user_id"`
	AuthorName   string    `json:"author_name"`
	AuthorAvatar string    `json:"author_avatar"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}

type LikePostResponse struct {
	IsLiked bool `json:"is_liked"`
}
