// Package router đăng ký các route thuộc domain Band: tiểu sử của ban nhạc.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	bandhdl "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/band/handler"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/api/middleware"
	apirouter "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/router"
)

// Register đăng ký tất cả route band lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	bandInfoHandler, err := bandhdl.NewBandInfoHandler()
	if err != nil {
		return fmt.Errorf("create band info handler: %w", err)
	}

	apirouter.RegisterRouteWithMiddleware(v1, "/band", "GET", "/biography", nil, bandInfoHandler.GetBiography)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/band", "PUT", "/biography", []fiber.Handler{authMiddleware}, bandInfoHandler.UpdateBiography)

	return nil
}
