// Package router đăng ký các route thuộc domain Comment: bình luận của fan và duyệt bình luận.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	commenthdl "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/comment/handler"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/api/middleware"
	apirouter "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/router"
)

// Register đăng ký tất cả route comment lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	fanCommentHandler, err := commenthdl.NewFanCommentHandler()
	if err != nil {
		return fmt.Errorf("create fan comment handler: %w", err)
	}

	// Đọc public, xóa chỉ dành cho admin
	commentConfig := apirouter.CRUDConfig{
		Find: true, FindOne: true, FindById: true,
		Paginate: true,
		DelOne:   true, DelMany: true, DelById: true,
		Count: true, Exists: true,
		PublicRead: true,
	}
	r.RegisterCRUDRoutes(v1, "/comments", fanCommentHandler, commentConfig)

	// Fan gửi và đọc bình luận không cần đăng nhập
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "POST", "/submit", nil, fanCommentHandler.Submit)
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "POST", "/list-page", nil, fanCommentHandler.ListPage)

	// Duyệt và thao tác hàng loạt chỉ dành cho admin
	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "POST", "/approve/:id", []fiber.Handler{authMiddleware}, fanCommentHandler.Approve)
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "POST", "/bulk-approve", []fiber.Handler{authMiddleware}, fanCommentHandler.BulkApprove)
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "POST", "/bulk-delete", []fiber.Handler{authMiddleware}, fanCommentHandler.BulkDelete)

	return nil
}
