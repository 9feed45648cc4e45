package service

import (
	"context"
	"encoding/json"
	"testing"

	"seecooker/dao"
	"seecooker/pkg/response"
	"seecooker/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*UserService, *fakePublisher) {
	t.Helper()
	db := newTestDB(t)
	mq := &fakePublisher{}
	return &UserService{
		UsersRepo: dao.NewUsers(db),
		MQ:        mq,
	}, mq
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "小王", "pass1234", "")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "小王", user.Username)
	// 未传头像时使用默认头像
	assert.Equal(t, defaultAvatar, user.Avatar)
	// 密码只存哈希
	assert.NotEqual(t, "pass1234", user.Password)

	got, err := svc.Login(ctx, "小王", "pass1234")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "小王", "pass1234", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "小王", "other456", "")
	assert.ErrorIs(t, err, response.ErrUserAlreadyExist)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "小王", "pass1234", "")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "小王", "wrong")
	assert.ErrorIs(t, err, response.ErrPasswordError)

	_, err = svc.Login(ctx, "不存在", "pass1234")
	assert.ErrorIs(t, err, response.ErrUserNotExist)
}

func TestGetUserInfo(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "小王", "pass1234", "")
	require.NoError(t, err)

	info, err := svc.GetUserInfo(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, info.UserID)
	assert.Equal(t, "小王", info.Username)
	assert.Zero(t, info.PostNum)
	assert.Zero(t, info.RecipeNum)

	_, err = svc.GetUserInfo(ctx, 404)
	assert.ErrorIs(t, err, response.ErrUserNotExist)
}

func TestModifyUsername(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "小王", "pass1234", "")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "小李", "pass1234", "")
	require.NoError(t, err)

	// 新用户名已被占用
	err = svc.ModifyUsername(ctx, "小王", "小李")
	assert.ErrorIs(t, err, response.ErrUserAlreadyExist)

	// 新旧相同
	err = svc.ModifyUsername(ctx, "小王", "小王")
	assert.ErrorIs(t, err, response.ErrIllegalArgument)

	require.NoError(t, svc.ModifyUsername(ctx, "小王", "老王"))
	got, err := svc.UsersRepo.FindById(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "老王", got.Username)
}

func TestModifyPassword(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "小王", "pass1234", "")
	require.NoError(t, err)

	err = svc.ModifyPassword(ctx, "小王", "wrong", "newpass99")
	assert.ErrorIs(t, err, response.ErrPasswordError)

	require.NoError(t, svc.ModifyPassword(ctx, "小王", "pass1234", "newpass99"))

	_, err = svc.Login(ctx, "小王", "pass1234")
	assert.ErrorIs(t, err, response.ErrPasswordError)
	_, err = svc.Login(ctx, "小王", "newpass99")
	assert.NoError(t, err)
}

func TestModifySignaturePublishesMessage(t *testing.T) {
	svc, mq := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "小王", "pass1234", "")
	require.NoError(t, err)

	require.NoError(t, svc.ModifySignature(ctx, user.ID, "好好吃饭"))

	require.Len(t, mq.topics, 1)
	assert.Equal(t, types.TopicUserSignatureModify, mq.topics[0])

	var msg types.SignatureMessage
	require.NoError(t, json.Unmarshal(mq.bodies[0], &msg))
	assert.Equal(t, user.ID, msg.UserID)
	assert.Equal(t, "好好吃饭", msg.Signature)
}
