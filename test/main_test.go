package main

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestHealthRoute(t *testing.T) {
	app := fiber.New()
	app.Get("/api/v1/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/api/v1/health", nil)

	resp, _ := app.Test(req, 1)

	assert.Equal(t, 200, resp.StatusCode)
}
