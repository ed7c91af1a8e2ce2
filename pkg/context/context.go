package context

import (
	"errors"
	"net/http"

	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/apperr"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

type HandlerFunc func(*gin.Context) error

// Wrap ハンドラの error をここで一括して HTTP へ変換する。
// コアが返す型付きエラー（apperr）とステータスコードの対応は境界層の責務。
func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 既にレスポンスを書いていれば何もしない
			if c.Writer.Written() {
				return
			}

			status := statusOf(err)

			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(http.StatusOK, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}

			c.JSON(status, response.Response{
				Code: status,
				Msg:  err.Error(),
			})
		}
	}
}

func statusOf(err error) int {
	var (
		notFound     *apperr.NotFoundError
		invalidState *apperr.InvalidStateError
		insufficient *apperr.InsufficientPointsError
		conflict     *apperr.ConflictError
		validation   *apperr.ValidationError
		unauthorized *apperr.UnauthorizedError
		denied       *apperr.PermissionDeniedError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &invalidState):
		return http.StatusBadRequest
	case errors.As(err, &insufficient):
		return http.StatusBadRequest
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &validation):
		return http.StatusUnprocessableEntity
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &denied):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, apperr.NewUnauthorized("user_id が存在しません")
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, apperr.NewUnauthorized("user_id の型が不正です")
	}

	return uid, nil
}

func GetRole(c *gin.Context) string {
	v, ok := c.Get(CtxRole)
	if !ok {
		return ""
	}
	role, _ := v.(string)
	return role
}
