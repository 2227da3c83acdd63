package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nemsas/claims/internal/platform/api"
)

// RequestTimeout sets a context deadline on each incoming request. When the
// deadline passes before the handler completes, the request context is
// cancelled and a 504 envelope is written. Handlers that need more time,
// such as a large report export, can derive a longer deadline from the
// request context.
func RequestTimeout(timeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))

			done := make(chan error, 1)
			go func() {
				done <- next(c)
			}()

			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				if ctx.Err() == context.DeadlineExceeded {
					if !c.Response().Committed {
						return api.Fail(c, http.StatusGatewayTimeout, "Request timed out")
					}
					return nil
				}
				// Client disconnects and other cancellations pass through.
				return ctx.Err()
			}
		}
	}
}
