package httperr

import (
	"github.com/gin-gonic/gin"

	"shopbot-checkout/internal/pkg/errs"
)

// Response is the error body every checkout endpoint writes.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError records the cause on the context for the error middleware
// and writes the public body. Parse-level failures may have no underlying
// error; msg stands in as the cause then.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
