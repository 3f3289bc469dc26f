package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "github.com/meetingbot-team/meetingbot/errors"
	"github.com/meetingbot-team/meetingbot/internal/adapter/dto/common"
)

// respondError maps an application error onto the HTTP response. CRUD
// endpoints surface underlying messages for unexpected failures; the
// stats and dashboard handlers deliberately bypass this and return a
// generic message instead.
func respondError(c echo.Context, err error) error {
	if appErr, ok := apperrors.As(err); ok {
		if len(appErr.Details) > 0 {
			return c.JSON(appErr.HTTPCode, common.ValidationErrorResponse{Errors: appErr.Details})
		}
		return c.JSON(appErr.HTTPCode, common.ErrorResponse{Message: appErr.Message})
	}

	return c.JSON(http.StatusInternalServerError, common.ErrorResponse{Message: err.Error()})
}

// bindAndValidate binds the request into req and runs struct
// validation, answering 400 with field-level messages on failure.
func bindAndValidate(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, common.ValidationErrorResponse{
			Errors: []string{err.Error()},
		})
	}

	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, common.ValidationErrorResponse{
			Errors: validationMessages(err),
		})
	}

	return true, nil
}

// validationMessages flattens validator errors into one message per field
func validationMessages(err error) []string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(ve))
	for _, fe := range ve {
		messages = append(messages, fmt.Sprintf("%q failed on the %q rule", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return messages
}
