package handler

import (
	"net/http"
	"time"

	"seecooker/config"
	"seecooker/middleware"
	"seecooker/pkg/context"
	"seecooker/pkg/jwt"
	"seecooker/pkg/response"
	"seecooker/service"
	"seecooker/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	UserService service.IUserService
	OssService  service.IOssService
	Config      *config.Config
}

func (h *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/user")
	g.POST("/register", context.Wrap(h.Register))
	g.POST("/login", context.Wrap(h.Login))
	g.GET("/info", authorize, context.Wrap(h.GetCurrentUserInfo))
	g.PUT("/username", context.Wrap(h.ModifyUsername))
	g.PUT("/password", context.Wrap(h.ModifyPassword))
	g.PUT("/avatar", authorize, context.Wrap(h.ModifyAvatar))
	g.PUT("/signature", authorize, context.Wrap(h.ModifySignature))
}

// Register 用户注册
func (h *User) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	user, err := h.UserService.Register(c.Request.Context(), req.Username, req.Password, req.Avatar)
	if err != nil {
		return err
	}
	response.Success(c, types.RegisterResponse{UserID: user.ID})
	return nil
}

// Login 用户登录，返回访问 token
func (h *User) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	user, err := h.UserService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	expire := time.Duration(h.Config.Jwt.ExpiresHour) * time.Hour
	token, err := jwt.GenerateToken([]byte(h.Config.Jwt.Secret), int64(user.ID), "access", expire)
	if err != nil {
		return err
	}
	response.Success(c, types.LoginResponse{UserID: user.ID, Token: token})
	return nil
}

// GetCurrentUserInfo 获取当前登录用户信息
func (h *User) GetCurrentUserInfo(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	info, err := h.UserService.GetUserInfo(c.Request.Context(), uint64(userID))
	if err != nil {
		return err
	}
	response.Success(c, info)
	return nil
}

// ModifyUsername 修改用户名
func (h *User) ModifyUsername(c *gin.Context) error {
	var req types.ModifyUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}
	if err := h.UserService.ModifyUsername(c.Request.Context(), req.Username, req.NewUsername); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// ModifyPassword 修改密码
func (h *User) ModifyPassword(c *gin.Context) error {
	var req types.ModifyPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}
	if err := h.UserService.ModifyPassword(c.Request.Context(), req.Username, req.Password, req.NewPassword); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// ModifyAvatar 上传并更新头像
func (h *User) ModifyAvatar(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	header, err := c.FormFile("avatar")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "缺少头像文件")
	}

	url, err := h.OssService.UploadImage(c.Request.Context(), types.ImageCategoryAvatar, header)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	if err := h.UserService.ModifyAvatar(c.Request.Context(), uint64(userID), url); err != nil {
		return err
	}
	response.Success(c, types.UploadResponse{Url: url})
	return nil
}

// ModifySignature 修改个性签名，经 MQ 异步落库
func (h *User) ModifySignature(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	var req types.ModifySignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}
	if err := h.UserService.ModifySignature(c.Request.Context(), uint64(userID), req.Signature); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
