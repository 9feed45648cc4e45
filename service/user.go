package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"seecooker/dao"
	"seecooker/models"
	"seecooker/pkg/encrypt"
	"seecooker/pkg/response"
	"seecooker/pkg/snowflake"
	"seecooker/types"

	"gorm.io/gorm"
)

const defaultAvatar = "https://dummyimage.com/100x100"

var _ IUserService = (*UserService)(nil)

// Publisher 消息发送接口
type Publisher interface {
	SendMsg(ctx context.Context, topic string, body []byte) error
}

type IUserService interface {
	Register(ctx context.Context, username, password, avatar string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	GetUserInfo(ctx context.Context, userID uint64) (*types.UserInfo, error)
	ModifyUsername(ctx context.Context, username, newUsername string) error
	ModifyPassword(ctx context.Context, username, password, newPassword string) error
	ModifyAvatar(ctx context.Context, userID uint64, avatar string) error
	ModifySignature(ctx context.Context, userID uint64, signature string) error
}

type UserService struct {
	UsersRepo *dao.Users
	MQ        Publisher
}

// Register 注册用户
func (s *UserService) Register(ctx context.Context, username, password, avatar string) (*models.User, error) {
	if s.UsersRepo.IsUsernameExist(ctx, username) {
		return nil, response.ErrUserAlreadyExist
	}

	hash, err := encrypt.HashPassword(password)
	if err != nil {
		return nil, err
	}
	if avatar == "" {
		avatar = defaultAvatar
	}

	now := time.Now()
	user := &models.User{
		ID:              uint64(snowflake.GenID()),
		Username:        username,
		Password:        hash,
		Avatar:          avatar,
		Posts:           []uint64{},
		PostRecipes:     []uint64{},
		FavoriteRecipes: []uint64{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.UsersRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 用户登录校验
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.UsersRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrUserNotExist
		}
		return nil, err
	}
	if !encrypt.VerifyPassword(password, user.Password) {
		return nil, response.ErrPasswordError
	}
	return user, nil
}

// GetUserInfo 获取用户信息
func (s *UserService) GetUserInfo(ctx context.Context, userID uint64) (*types.UserInfo, error) {
	user, err := s.UsersRepo.FindById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrUserNotExist
		}
		return nil, err
	}
	return &types.UserInfo{
		UserID:    user.ID,
		Username:  user.Username,
		Avatar:    user.Avatar,
		Signature: user.Signature,
		PostNum:   len(user.Posts),
		RecipeNum: len(user.PostRecipes),
	}, nil
}

// ModifyUsername 修改用户名
func (s *UserService) ModifyUsername(ctx context.Context, username, newUsername string) error {
	if username == "" || newUsername == "" {
		return response.ErrIllegalArgument
	}
	if username == newUsername {
		return response.ErrIllegalArgument
	}
	if s.UsersRepo.IsUsernameExist(ctx, newUsername) {
		return response.ErrUserAlreadyExist
	}

	user, err := s.UsersRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.ErrUserNotExist
		}
		return err
	}
	return s.UsersRepo.Update(ctx, user.ID, map[string]any{"username": newUsername})
}

// ModifyPassword 修改密码，需要校验原密码
func (s *UserService) ModifyPassword(ctx context.Context, username, password, newPassword string) error {
	user, err := s.UsersRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.ErrUserNotExist
		}
		return err
	}
	if !encrypt.VerifyPassword(password, user.Password) {
		return response.ErrPasswordError
	}

	hash, err := encrypt.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.UsersRepo.Update(ctx, user.ID, map[string]any{"password": hash})
}

// ModifyAvatar 修改头像
func (s *UserService) ModifyAvatar(ctx context.Context, userID uint64, avatar string) error {
	exist, err := s.UsersRepo.IsExist(ctx, "id = ?", userID)
	if err != nil {
		return err
	}
	if !exist {
		return response.ErrUserNotExist
	}
	return s.UsersRepo.Update(ctx, userID, map[string]any{"avatar": avatar})
}

// ModifySignature 修改个性签名
// 通过 MQ 异步更新，消费端落库
func (s *UserService) ModifySignature(ctx context.Context, userID uint64, signature string) error {
	body, err := json.Marshal(types.SignatureMessage{
		UserID:    userID,
		Signature: signature,
	})
	if err != nil {
		return err
	}
	return s.MQ.SendMsg(ctx, types.TopicUserSignatureModify, body)
}
