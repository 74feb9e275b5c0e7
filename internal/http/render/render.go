// Package render is the JSON envelope for the API surface.
package render

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// OK writes a success envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code: http.StatusOK,
		Msg:  "success",
		Data: data,
	})
}

// Error writes a failure envelope with the given status.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, Response{
		Code: status,
		Msg:  msg,
	})
}
