package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// 业务错误码，与原服务端保持一致
var (
	ErrUnauthorized        = NewError(401, "用户未登录")
	ErrUserNotExist        = NewError(1001, "用户不存在")
	ErrUserAlreadyExist    = NewError(1002, "用户已存在")
	ErrPasswordError       = NewError(1003, "密码错误")
	ErrRecipeNotExist      = NewError(2001, "菜谱不存在")
	ErrRecipeAlreadyScored = NewError(2002, "用户已对该菜谱评分")
	ErrPostNotExist        = NewError(3001, "帖子不存在")
	ErrCommentNotExist     = NewError(3002, "评论不存在")
	ErrIllegalArgument     = NewError(4001, "参数不合法")
)

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.JSON(http.StatusInternalServerError, Response{
					Code: 500,
					Msg:  "系统异常",
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if be, ok := err.(*BizError); ok {
				Fail(c, be.Code, be.Msg)
			} else {
				Fail(c, 500, err.Error())
			}
			c.Abort()
		}
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
