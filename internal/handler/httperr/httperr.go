package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the public error envelope. Status steers the HTTP code but is
// not part of the payload.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

func NewResponse(status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	return resp
}

// Abort records the original error on the context for the logging middleware
// and writes the public payload.
func Abort(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("httperr.Abort: err cannot be nil")
	}

	resp := NewResponse(status, msg)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
