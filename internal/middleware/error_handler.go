package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// JSONErrorHandler renders every handler error as the JSON envelope
// {success:false, message:...}. Unmatched routes get the fixed 404 body.
// Outside production, 5xx responses carry the error and a stack trace.
func JSONErrorHandler(log zerolog.Logger, production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "Internal Server Error"
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if msg, ok := he.Message.(string); ok && msg != "" {
				message = msg
			}
		}
		if code == http.StatusNotFound {
			message = "Endpoint not found"
		}

		if code >= http.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("request failed")
		} else {
			log.Warn().Err(err).Str("path", c.Request().URL.Path).Int("status", code).Msg("request rejected")
		}

		body := map[string]interface{}{
			"success": false,
			"message": message,
		}
		if code >= http.StatusInternalServerError && !production {
			body["error"] = err.Error() + "\n" + string(debug.Stack())
		}

		if jerr := c.JSON(code, body); jerr != nil {
			log.Error().Err(jerr).Msg("failed to write error response")
		}
	}
}
