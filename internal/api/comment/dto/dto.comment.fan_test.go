package commentdto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jokerslbmusica-svg/jokerswebpage/internal/global"
)

func TestFanCommentSubmitInputValidation(t *testing.T) {
	global.InitValidator()

	assert.NoError(t, global.Validate.Struct(FanCommentSubmitInput{
		Name:    "María",
		Comment: "Gran concierto, nos vemos en la próxima!",
	}))

	// Thiếu trường bắt buộc
	assert.Error(t, global.Validate.Struct(FanCommentSubmitInput{Name: "María"}))
	assert.Error(t, global.Validate.Struct(FanCommentSubmitInput{Comment: "Hola"}))

	// Vượt giới hạn độ dài
	assert.Error(t, global.Validate.Struct(FanCommentSubmitInput{
		Name:    strings.Repeat("a", 101),
		Comment: "Hola",
	}))
	assert.Error(t, global.Validate.Struct(FanCommentSubmitInput{
		Name:    "María",
		Comment: strings.Repeat("a", 1001),
	}))

	// XSS bị chặn từ validation
	assert.Error(t, global.Validate.Struct(FanCommentSubmitInput{
		Name:    "María",
		Comment: "<script>alert(1)</script>",
	}))
}

func TestFanCommentListPageInputValidation(t *testing.T) {
	global.InitValidator()

	assert.NoError(t, global.Validate.Struct(FanCommentListPageInput{}))
	assert.NoError(t, global.Validate.Struct(FanCommentListPageInput{Status: "approved", Limit: 10}))
	assert.Error(t, global.Validate.Struct(FanCommentListPageInput{Status: "spam"}))
	assert.Error(t, global.Validate.Struct(FanCommentListPageInput{Limit: 101}))
}

func TestFanCommentBulkInputValidation(t *testing.T) {
	global.InitValidator()

	assert.NoError(t, global.Validate.Struct(FanCommentBulkInput{
		IDs: []string{"507f1f77bcf86cd799439011"},
	}))

	// Danh sách rỗng hoặc ID sai độ dài
	assert.Error(t, global.Validate.Struct(FanCommentBulkInput{IDs: []string{}}))
	assert.Error(t, global.Validate.Struct(FanCommentBulkInput{IDs: []string{"abc"}}))
}
