// Package router đăng ký các route thuộc domain Tour: lịch diễn của ban nhạc.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/router"
	tourhdl "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/tour/handler"
)

// Register đăng ký tất cả route tour lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	tourDateHandler, err := tourhdl.NewTourDateHandler()
	if err != nil {
		return fmt.Errorf("create tour date handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/tour/dates", tourDateHandler, apirouter.ReadWriteConfig)
	return nil
}
