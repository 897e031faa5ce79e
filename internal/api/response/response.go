package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool `json:"success"`
	Code    int  `json:"code"`
	Extras  any  `json:"extras"`
}

func NewResponse(success bool, code int, extras any) Response {
	return Response{
		Success: success,
		Code:    code,
		Extras:  extras,
	}
}

// SuccessResponseList returns a JSON response with a success message and a list of items
func SuccessResponseList[T []any | map[string]any](c *gin.Context, list T) {
	c.JSON(
		http.StatusOK,
		NewResponse(
			true,
			http.StatusOK,
			map[string]any{
				"list": list,
			},
		))
}

// SuccessResponse returns a JSON response with a success message with no type limitation
func SuccessResponse(c *gin.Context, extras any) {
	c.JSON(
		http.StatusOK,
		NewResponse(
			true,
			http.StatusOK,
			extras,
		))
}

func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, errorBody(code, message))
}

// AbortWithError stops the handler chain and writes an error envelope.
func AbortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, errorBody(code, message))
}

func errorBody(code int, message string) Response {
	return NewResponse(
		false,
		code,
		map[string]any{
			"message": message,
		},
	)
}
