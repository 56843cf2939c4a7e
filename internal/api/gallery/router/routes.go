// Package router đăng ký các route thuộc domain Gallery: ảnh và video của band và fan.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	galleryhdl "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/gallery/handler"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/api/middleware"
	apirouter "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/router"
)

// Register đăng ký tất cả route gallery lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	mediaItemHandler, err := galleryhdl.NewMediaItemHandler()
	if err != nil {
		return fmt.Errorf("create media item handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/gallery", mediaItemHandler, apirouter.ReadWriteConfig)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/gallery", "POST", "/upload", []fiber.Handler{authMiddleware}, mediaItemHandler.Upload)

	return nil
}
