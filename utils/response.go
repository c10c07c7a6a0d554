package utils

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Response is the envelope of every API answer
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    ErrorKind   `json:"code,omitempty"`
}

func SendSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SendError(c *gin.Context, statusCode int, code ErrorKind, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error:   message,
		Code:    code,
	})
}

// SendAppError maps err to its status and public message. Internal causes
// are logged, never sent.
func SendAppError(c *gin.Context, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		LogErrorWithUser(c.GetString("user_id"), err, "Request failed: "+c.FullPath())
	}
	SendError(c, status, PublicCode(err), PublicMessage(err))
}

// BindInput decodes a procedure input with gin's JSON binding. Queries
// carry it in the "input" query parameter, mutations as the request body.
// An absent input leaves obj untouched and is only validated.
func BindInput(c *gin.Context, obj interface{}) bool {
	var err error
	switch {
	case c.Request.Method == http.MethodGet:
		if raw := c.Query("input"); raw != "" {
			err = binding.JSON.BindBody([]byte(raw), obj)
		} else {
			err = binding.Validator.ValidateStruct(obj)
		}
	case c.Request.ContentLength == 0:
		err = binding.Validator.ValidateStruct(obj)
	default:
		if err = c.ShouldBindJSON(obj); errors.Is(err, io.EOF) {
			err = binding.Validator.ValidateStruct(obj)
		}
	}
	if err != nil {
		SendAppError(c, NewValidationError("Invalid input: "+err.Error(), err))
		return false
	}
	return true
}
