package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/vitalplan-api/logger"
	"github.com/krishkalaria12/vitalplan-api/repository"
	"go.uber.org/zap"
)

func respond(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// ErrorHandler renders every error returned by a handler in the response
// envelope. Errors that are not *fiber.Error become a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	} else {
		logger.Error("unhandled error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
	}

	return c.Status(code).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"data":    nil,
	})
}

func badRequest(message string) error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func invalidBody() error {
	return badRequest("Invalid request body")
}

// storeError maps a repository error to a response error.
func storeError(err error, notFound string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, notFound)
	}
	logger.Error("database error", zap.Error(err))
	return fiber.NewError(fiber.StatusInternalServerError, "Database error")
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, badRequest("Invalid id")
	}
	return uint(id), nil
}
