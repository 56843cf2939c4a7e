package global

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("media_type", validateMediaType)
	_ = Validate.RegisterValidation("comment_status", validateCommentStatus)
}

// validateNoXSS kiểm tra XSS trên các field text do người dùng nhập
// (tên, bình luận của fan hiển thị lại trên trang public)
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"onmouseover=",
		"eval(",
		"document.cookie",
		"document.write",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateMediaType kiểm tra loại media hợp lệ cho gallery
func validateMediaType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "image", "video", "facebook":
		return true
	}
	return false
}

// validateCommentStatus kiểm tra trạng thái bình luận hợp lệ
func validateCommentStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pending", "approved":
		return true
	}
	return false
}
