package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"idcard/directory"
	"idcard/models"
	"idcard/utils"
)

const invalidCredentialsMessage = "Invalid username or password. Please check your credentials and try again."

func (h *Handler) Login(c *fiber.Ctx) error {
	var input models.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if input.Username == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Username and password are required",
		})
	}

	employee, err := h.dir.Authenticate(c.UserContext(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, directory.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": invalidCredentialsMessage,
			})
		}
		h.logger.Error("authentication failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Authentication service is temporarily unavailable. Please try again later.",
		})
	}

	loginTime := h.now()
	token, err := utils.GenerateJWTToken(employee.Username, loginTime)
	if err != nil {
		h.logger.Error("token generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Token generation failed",
		})
	}
	utils.SetJWTCookie(c, token, loginTime.Add(utils.SessionTTL))

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Login successful",
		"employee": employee,
		"token":    token,
	})
}

// LoginInfo describes the login endpoint for anyone who GETs it.
func (h *Handler) LoginInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Authentication endpoint. Use POST method to login.",
		"endpoints": fiber.Map{
			"login": "POST /login",
		},
		"demoCredentials": directory.DemoCredentials(),
	})
}

func (h *Handler) GetEmployees(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if username := c.Query("username"); username != "" {
		employee, err := h.dir.Find(ctx, username)
		if err != nil {
			if errors.Is(err, directory.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"success": false,
					"message": "Employee not found",
				})
			}
			return h.employeesUnavailable(c, err)
		}
		return c.JSON(fiber.Map{"success": true, "data": employee})
	}

	employees, err := h.dir.List(ctx)
	if err != nil {
		return h.employeesUnavailable(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    employees,
		"message": fmt.Sprintf("Found %d employees", len(employees)),
	})
}

// HeadEmployees is a liveness probe; it never touches the directory.
func (h *Handler) HeadEmployees(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Status(fiber.StatusOK)
	return nil
}

func (h *Handler) employeesUnavailable(c *fiber.Ctx, err error) error {
	h.logger.Error("employee lookup failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   "Failed to fetch employee data",
		"message": "Employee service is temporarily unavailable. Please try again later.",
	})
}
