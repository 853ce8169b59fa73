package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"smartCampusReco/pkg/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler renders every unhandled error as {"error": message}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if he.Internal != nil {
			msg = he.Internal.Error()
		} else {
			msg = fmt.Sprint(he.Message)
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("request failed", err,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"trace_id", c.Response().Header().Get(echo.HeaderXRequestID),
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, errorResponse{Error: msg})
	}
	if err != nil {
		logger.Error("failed to write error response", err)
	}
}
