// Package router đăng ký các route thuộc domain Music: bài hát, upload và sắp xếp.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/jokerslbmusica-svg/jokerswebpage/internal/api/middleware"
	musichdl "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/music/handler"
	apirouter "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/router"
)

// Register đăng ký tất cả route music lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	songHandler, err := musichdl.NewSongHandler()
	if err != nil {
		return fmt.Errorf("create song handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/music/songs", songHandler, apirouter.ReadWriteConfig)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/music/songs", "POST", "/upload", []fiber.Handler{authMiddleware}, songHandler.Upload)
	apirouter.RegisterRouteWithMiddleware(v1, "/music/songs", "POST", "/reorder", []fiber.Handler{authMiddleware}, songHandler.Reorder)

	return nil
}
