package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/bioscizone/bioscizone-api/internal/middleware"
)

func parseUintParam(c *fiber.Ctx, key string) (uint, error) {
	value := strings.TrimSpace(c.Params(key))
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(parsed), nil
}

func parseQueryInt(c *fiber.Ctx, key string) (int, error) {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}

func usernameFromContext(c *fiber.Ctx) string {
	if v := c.Locals(middleware.LocalsUsername); v != nil {
		if username, ok := v.(string); ok {
			return username
		}
	}
	return ""
}

func roleFromContext(c *fiber.Ctx) string {
	if v := c.Locals(middleware.LocalsUserRole); v != nil {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}
