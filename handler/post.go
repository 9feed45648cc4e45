package handler

import (
	"net/http"

	"seecooker/config"
	"seecooker/middleware"
	"seecooker/pkg/context"
	"seecooker/pkg/log"
	"seecooker/pkg/response"
	"seecooker/service"
	"seecooker/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Post struct {
	PostService service.IPostService
	OssService  service.IOssService
	Config      *config.Config
}

func (h *Post) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/v2/community")
	g.POST("/post", authorize, context.Wrap(h.PublishPost))
	g.GET("/posts", context.Wrap(h.ListPosts))
	g.GET("/post/:id", optional, context.Wrap(h.GetPostDetail))
	g.POST("/comment", authorize, context.Wrap(h.AddComment))
	g.GET("/comments/:postId", context.Wrap(h.GetComments))
	g.PUT("/like/:postId", authorize, context.Wrap(h.LikePost))
	g.DELETE("/post/:id", authorize, context.Wrap(h.DeletePost))
}

// PublishPost 发布帖子
func (h *Post) PublishPost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.PublishPostRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	images := make([]string, 0)
	if form, err := c.MultipartForm(); err == nil {
		for _, header := range form.File["images"] {
			url, err := h.OssService.UploadImage(c.Request.Context(), types.ImageCategoryPost, header)
			if err != nil {
				return response.NewError(http.StatusInternalServerError, err.Error())
			}
			images = append(images, url)
		}
	}

	postID, err := h.PostService.PublishPost(c.Request.Context(), uint64(userID), &req, images)
	if err != nil {
		return err
	}
	response.Success(c, types.PublishPostResponse{PostID: postID})
	return nil
}

// ListPosts 获取帖子列表
func (h *Post) ListPosts(c *gin.Context) error {
	posts, err := h.PostService.ListPosts(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, posts)
	return nil
}

// GetPostDetail 获取帖子详情
func (h *Post) GetPostDetail(c *gin.Context) error {
	postID, err := parseID(c.Param("id"))
	if err != nil {
		return response.ErrIllegalArgument
	}
	viewerID := context.CurrentUserID(c)
	detail, err := h.PostService.GetPostDetail(c.Request.Context(), uint64(viewerID), postID)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

// AddComment 发表评论
func (h *Post) AddComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	commentID, err := h.PostService.AddComment(c.Request.Context(), uint64(userID), req.PostID, req.Content)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"comment_id": commentID})
	return nil
}

// GetComments 获取帖子评论
func (h *Post) GetComments(c *gin.Context) error {
	postID, err := parseID(c.Param("postId"))
	if err != nil {
		return response.ErrIllegalArgument
	}
	comments, err := h.PostService.GetComments(c.Request.Context(), postID)
	if err != nil {
		return err
	}
	response.Success(c, comments)
	return nil
}

// LikePost 点赞或取消点赞帖子，返回交互后的点赞状态
func (h *Post) LikePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	postID, err := parseID(c.Param("postId"))
	if err != nil {
		return response.ErrIllegalArgument
	}

	isLiked, err := h.PostService.LikePost(c.Request.Context(), uint64(userID), postID)
	if err != nil {
		return err
	}
	response.Success(c, types.LikePostResponse{IsLiked: isLiked})
	return nil
}

// DeletePost 删除帖子，并清理其在对象存储中的图片
func (h *Post) DeletePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	postID, err := parseID(c.Param("id"))
	if err != nil {
		return response.ErrIllegalArgument
	}

	images, err := h.PostService.DeletePost(c.Request.Context(), uint64(userID), postID)
	if err != nil {
		return err
	}
	// 图片清理失败不影响删除结果
	for _, img := range images {
		if err := h.OssService.DeleteByURL(c.Request.Context(), img); err != nil {
			log.L.Warn("delete post image error", zap.Error(err), zap.String("url", img))
		}
	}
	response.Success(c, nil)
	return nil
}
