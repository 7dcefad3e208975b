package main

import (
	"net/http/httptest"
	"testing"

	"app/middleware"

	"github.com/gofiber/fiber/v2"
)

// Helper to create an app with a pre-local middleware that sets userRole
func makeAppWithRole(role string, check func(*fiber.Ctx) error) *fiber.App {
	app := fiber.New()

	// Insert a middleware to set role before the requirement middleware
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userRole", role)
		return c.Next()
	})

	app.Use(check)

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.Status(200).SendString("ok")
	})

	return app
}

func TestMerchantRequired_AllowsMerchant(t *testing.T) {
	app := makeAppWithRole("merchant", middleware.MerchantRequired)
	req := httptest.NewRequest("GET", "/test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 for merchant role, got %d", resp.StatusCode)
	}
}

func TestMerchantRequired_DeniesNonMerchant(t *testing.T) {
	app := makeAppWithRole("staff", middleware.MerchantRequired)
	req := httptest.NewRequest("GET", "/test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 403 {
		t.Fatalf("expected 403 for non-merchant role, got %d", resp.StatusCode)
	}
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.JWTMiddleware)
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401 without Authorization header, got %d", resp.StatusCode)
	}
}

func TestJWTMiddleware_MalformedHeader(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.JWTMiddleware)
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Token abc123")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401 for malformed header, got %d", resp.StatusCode)
	}
}
