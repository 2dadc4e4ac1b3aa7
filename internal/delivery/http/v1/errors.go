package v1

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	errInvalidRequestBody = errors.New("corpo da requisição inválido")
	errInvalidID          = errors.New("id inválido")
)

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"error": err.Message})
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

func newInternalError(message string) apiError {
	return newAPIError(http.StatusInternalServerError, message)
}

// newValidationError names the first offending field when err comes from
// the binding validator.
func newValidationError(err error) apiError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return newBadRequestError(fmt.Sprintf("campo %q é obrigatório", fe.Field()))
		default:
			return newBadRequestError(fmt.Sprintf("campo %q é inválido", fe.Field()))
		}
	}
	return newBadRequestError(errInvalidRequestBody.Error())
}

var registerJSONFieldNamesOnce sync.Once

// registerJSONFieldNames makes validation errors report json names
// ("user_id") instead of Go field names ("UserID").
func registerJSONFieldNames() {
	registerJSONFieldNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}
