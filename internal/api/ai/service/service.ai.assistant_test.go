package aisvc

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHashtags(t *testing.T) {
	hashtags := ParseHashtags("#rock #envivo #JokersLB")
	assert.Equal(t, []string{"#rock", "#envivo", "#JokersLB"}, hashtags)
}

func TestParseHashtagsMixedSeparators(t *testing.T) {
	// Model có thể trả về hashtag phân cách bởi dấu phẩy hoặc xuống dòng
	hashtags := ParseHashtags("#rock, #envivo\n#concierto")
	assert.Equal(t, []string{"#rock", "#envivo", "#concierto"}, hashtags)
}

func TestParseHashtagsIgnoresNonHashtags(t *testing.T) {
	hashtags := ParseHashtags("Aquí tienes: #rock y también #envivo #")
	assert.Equal(t, []string{"#rock", "#envivo"}, hashtags)
}

func TestParseHashtagsDeduplicates(t *testing.T) {
	hashtags := ParseHashtags("#rock #rock #envivo")
	assert.Equal(t, []string{"#rock", "#envivo"}, hashtags)
}

func TestParseHashtagsEmpty(t *testing.T) {
	assert.Empty(t, ParseHashtags(""))
	assert.Empty(t, ParseHashtags("sin hashtags aquí"))
}

func TestDecodeDataURI(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	mimeType, data, err := decodeDataURI(uri)
	assert.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, raw, data)
}

func TestDecodeDataURIInvalid(t *testing.T) {
	// Không phải data URI
	_, _, err := decodeDataURI("https://example.com/flyer.png")
	assert.Error(t, err)

	// Thiếu phần base64
	_, _, err = decodeDataURI("data:image/png,raw-data")
	assert.Error(t, err)

	// Base64 hỏng
	_, _, err = decodeDataURI("data:image/png;base64,!!!not-base64!!!")
	assert.Error(t, err)
}
