package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type noXSSSample struct {
	Text string `validate:"no_xss"`
}

type mediaTypeSample struct {
	Type string `validate:"media_type"`
}

type commentStatusSample struct {
	Status string `validate:"comment_status"`
}

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	assert.NoError(t, Validate.Struct(noXSSSample{Text: "Hola, gran concierto!"}))
	assert.Error(t, Validate.Struct(noXSSSample{Text: "<script>alert(1)</script>"}))
	assert.Error(t, Validate.Struct(noXSSSample{Text: "a href=javascript:void(0)"}))
	assert.Error(t, Validate.Struct(noXSSSample{Text: "<img onerror=alert(1)>"}))

	// Kiểm tra không phân biệt hoa thường
	assert.Error(t, Validate.Struct(noXSSSample{Text: "<SCRIPT>alert(1)</SCRIPT>"}))
}

func TestValidateMediaType(t *testing.T) {
	InitValidator()

	for _, valid := range []string{"image", "video", "facebook"} {
		assert.NoError(t, Validate.Struct(mediaTypeSample{Type: valid}))
	}
	assert.Error(t, Validate.Struct(mediaTypeSample{Type: "audio"}))
	assert.Error(t, Validate.Struct(mediaTypeSample{Type: ""}))
}

func TestValidateCommentStatus(t *testing.T) {
	InitValidator()

	assert.NoError(t, Validate.Struct(commentStatusSample{Status: "pending"}))
	assert.NoError(t, Validate.Struct(commentStatusSample{Status: "approved"}))
	assert.Error(t, Validate.Struct(commentStatusSample{Status: "rejected"}))
}
