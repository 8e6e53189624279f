// Package fiberx holds the fiber glue shared by the HTTP packages.
package fiberx

import (
	"errors"
	"strconv"

	"github.com/Abraxas-365/medjobb/pkg/errx"
	"github.com/Abraxas-365/medjobb/pkg/logx"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler converts internal errors to standard HTTP responses
func ErrorHandler(c *fiber.Ctx, err error) error {
	// Fiber errors (e.g. 404 route not found)
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"error": fe.Message,
			"code":  fe.Code,
		})
	}

	if e, ok := errx.As(err); ok {
		if e.HTTPStatus >= fiber.StatusInternalServerError {
			logx.Error("request failed", "path", c.Path(), "code", string(e.Code), "err", err.Error())
		}
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}

// QueryInt parses an optional integer query parameter. ok is false when the
// parameter is absent; err is set when it is present but not an integer.
func QueryInt(c *fiber.Ctx, key string) (n int, ok bool, err error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false, nil
	}
	n, err = strconv.Atoi(raw)
	if err != nil {
		return 0, true, err
	}
	return n, true, nil
}
