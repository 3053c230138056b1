package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON error envelope every handler returns. Status stays out
// of the body so the error middleware can replay the envelope with the right
// HTTP code.
type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
}

type Body struct {
	Message string `json:"message"`
}

func NewResponse(status int, msg string) Response {
	return Response{Status: status, Error: Body{Message: msg}}
}

// AbortWithError writes the envelope immediately and records the original
// error on the context for logging.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
