package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mdouchement/checklist/internal/checkerror"
	"github.com/sirupsen/logrus"
)

// HTTPErrorHandler is a middleware that formats rendered errors.
func HTTPErrorHandler(err error, c echo.Context) {
	if !c.Response().Committed {
		switch err := err.(type) {
		case *echo.HTTPError:
			logrus.Errorf("Error [ECHO]: %v", err.Internal)
			_ = c.JSON(err.Code, echo.Map{
				"message": fmt.Sprintf("%v", err.Message),
			})
		case *checkerror.Error:
			status := checkerror.StatusCode(err)
			if status < 500 {
				_ = c.JSON(status, err)
				return
			}

			internal(err, c)
		default:
			internal(err, c)
		}
	}
}

// internal renders a 500 with a correlation id.
// The raw error stays in the logs, not in the payload.
func internal(err error, c echo.Context) {
	id := uuid.Must(uuid.NewV4()).String()
	logrus.Errorf("Error [%s]: %s", id, err.Error())

	_ = c.JSON(http.StatusInternalServerError, echo.Map{
		"message": "Internal Server Error",
		"error":   fmt.Sprintf("Unexpected error (id: %s)", id),
	})
}
