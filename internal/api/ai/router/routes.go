// Package router đăng ký các route trợ lý AI. Tất cả đều dành cho admin.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	aihdl "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/ai/handler"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/api/middleware"
	apirouter "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/router"
)

// Register đăng ký tất cả route AI lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	assistantHandler, err := aihdl.NewAssistantHandler()
	if err != nil {
		return fmt.Errorf("create assistant handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	admin := []fiber.Handler{authMiddleware}

	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "POST", "/generate-biography", admin, assistantHandler.GenerateBiography)
	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "POST", "/generate-social-post", admin, assistantHandler.GenerateSocialPost)
	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "POST", "/suggest-hashtags", admin, assistantHandler.SuggestHashtags)
	apirouter.RegisterRouteWithMiddleware(v1, "/ai", "POST", "/generate-logo", admin, assistantHandler.GenerateLogo)

	return nil
}
