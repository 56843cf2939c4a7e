package musicdto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jokerslbmusica-svg/jokerswebpage/internal/global"
)

func TestSongReorderInputValidation(t *testing.T) {
	global.InitValidator()

	assert.NoError(t, global.Validate.Struct(SongReorderInput{
		IDs: []string{"507f1f77bcf86cd799439011", "507f1f77bcf86cd799439012"},
	}))

	// Danh sách rỗng hoặc ID không phải hex 24 ký tự
	assert.Error(t, global.Validate.Struct(SongReorderInput{IDs: []string{}}))
	assert.Error(t, global.Validate.Struct(SongReorderInput{IDs: []string{"corto"}}))
}

func TestSongCreateInputValidation(t *testing.T) {
	global.InitValidator()

	valid := SongCreateInput{
		Title:    "Canción Nueva",
		Artist:   "Jokers LB",
		AudioURL: "https://storage.googleapis.com/bucket/audio/1-song.mp3",
		CoverURL: "https://storage.googleapis.com/bucket/covers/1-cover.jpg",
	}
	assert.NoError(t, global.Validate.Struct(valid))

	invalid := valid
	invalid.AudioURL = ""
	assert.Error(t, global.Validate.Struct(invalid))
}
