package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"github.com/jokerslbmusica-svg/jokerswebpage/internal/common"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/global"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/logger"
)

// AuthMiddleware middleware xác thực cho Fiber.
// Xác minh Firebase ID token từ header Authorization (Bearer) và lưu
// firebase_uid, firebase_email vào context để handler sử dụng.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("[AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		idToken := parts[1]

		if global.FirebaseAuth == nil {
			logger.GetErrorLogger().WithFields(logrus.Fields{
				"path": c.Path(),
			}).Error("[AUTH] Firebase Auth client not initialized")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuth,
				common.MsgServiceUnavailable,
				common.StatusServiceUnavailable,
				nil,
			))
			return nil
		}

		// Xác minh ID token với Firebase
		token, err := global.FirebaseAuth.VerifyIDToken(c.Context(), idToken)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("[AUTH] Firebase token verification failed")
			if strings.Contains(err.Error(), "expired") {
				HandleErrorResponse(c, common.ErrTokenExpired)
				return nil
			}
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("firebase_uid", token.UID)
		if email, ok := token.Claims["email"].(string); ok {
			c.Locals("firebase_email", email)
		}

		return c.Next()
	}
}
