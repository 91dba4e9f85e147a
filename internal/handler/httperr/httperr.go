package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope every error body uses. Status rides along for
// middleware that inspects the attached gin.Error meta; it is never serialized.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func newResponse(status int, msg string, detail any) Response {
	var resp Response
	resp.Status = status
	resp.Error.Message = msg
	resp.Detail = detail
	return resp
}

// AbortWithError writes the envelope and records err on the context so the
// logging middleware can report the cause with its stack. msg is the
// client-facing text; err stays server-side.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: nil error")
	}

	resp := newResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
