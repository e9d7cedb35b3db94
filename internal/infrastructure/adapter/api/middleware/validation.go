package middleware

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	errs "github.com/paywise/paywise-api/internal/domain/error"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/api/dto"
)

func init() {
	// Report json names in validation details instead of Go field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// ValidationErrors converts binding failures into field details.
// It returns nil when err is not a validator error.
func ValidationErrors(err error) []dto.ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	details := make([]dto.ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, dto.ValidationError{
			Field:   fe.Field(),
			Message: getErrorMsg(fe),
			Type:    fe.Tag(),
		})
	}
	return details
}

func getErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "required_without":
		return "This field is required unless " + fieldJSONName(fe.Param()) + " is set"
	case "contains":
		return "Value must contain " + fe.Param()
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	default:
		return "Invalid value"
	}
}

// RespondWithBindError answers a request whose body could not be bound
func RespondWithBindError(c *gin.Context, err error) {
	details := ValidationErrors(err)
	message := "invalid request data"
	if details == nil {
		message = "invalid request format"
	}
	c.AbortWithStatusJSON(errs.HTTPStatus(errs.ErrInvalidRequest), dto.ErrorResponse{
		Code:    errs.ErrorCode(errs.ErrInvalidRequest),
		Message: message,
		Details: details,
	})
}

// RespondWithError maps a domain error to its status, code and public message.
// Server errors are logged with whatever structured fields the error carries.
func RespondWithError(c *gin.Context, logger coreport.Logger, err error) {
	status := errs.HTTPStatus(err)

	fields := map[string]any{
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": coreport.RequestIDFrom(c.Request.Context()),
		"error":      err.Error(),
	}
	var structured interface{ LogFields() map[string]any }
	if errors.As(err, &structured) {
		for k, v := range structured.LogFields() {
			fields[k] = v
		}
	}
	if status >= 500 {
		logger.Error("Request failed", fields)
	} else {
		logger.Debug("Request rejected", fields)
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: errs.PublicMessage(err),
	})
}

// fieldJSONName turns a struct field named in a validation tag into its JSON spelling
func fieldJSONName(field string) string {
	switch field {
	case "UpiID":
		return "upiId"
	case "":
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
