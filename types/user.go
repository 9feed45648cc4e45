package types

// TopicUserSignatureModify 个性签名异步更新的 MQ 主题
const TopicUserSignatureModify = "user-signature-modify"

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Avatar   string `json:"avatar"`
}

type RegisterResponse struct {
	UserID uint64 `json:"user_id"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	UserID uint64 `json:"user_id"`
	Token  string `json:"token"`
}

// UserInfo 用户信息
type UserInfo struct {
	UserID    uint64 `json:"user_id"`
	Username  string `json:"username"`
	Avatar    string `json:"avatar"`
	Signature string `json:"signature"`
	PostNum   int    `json:"post_num"`
	RecipeNum int    `json:"recipe_num"`
}

type ModifyUsernameRequest struct {
	Username    string `json:"username" binding:"required"`
	NewUsername string `json:"new_username" binding:"required"`
}

type ModifyPasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type ModifySignatureRequest struct {
	Signature string `json:"signature" binding:"max=255"`
}

// SignatureMessage 个性签名更新消息体
type SignatureMessage struct {
	UserID    uint64 `json:"user_id"`
	Signature string `json:"signature"`
}
