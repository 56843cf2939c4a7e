package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "song.mp3", sanitizeFilename("song.mp3"))
	assert.Equal(t, "a_b.mp3", sanitizeFilename("a/b.mp3"))
	assert.Equal(t, "a_b.mp3", sanitizeFilename("a\\b.mp3"))
	assert.Equal(t, "_secret", sanitizeFilename("..secret"))
	assert.Equal(t, "file", sanitizeFilename("   "))
}

func TestObjectPath(t *testing.T) {
	path := ObjectPath("audio", "song.mp3")
	assert.True(t, strings.HasPrefix(path, "audio/"))
	assert.True(t, strings.HasSuffix(path, "-song.mp3"))

	// Dấu / thừa ở dir được loại bỏ
	path = ObjectPath("/gallery/band/", "foto.jpg")
	assert.True(t, strings.HasPrefix(path, "gallery/band/"))
	assert.False(t, strings.HasPrefix(path, "/"))
}

func TestPublicURL(t *testing.T) {
	store := &BlobStore{bucketName: "my-bucket"}

	url := store.PublicURL("audio/123-song.mp3")
	assert.Equal(t, "https://storage.googleapis.com/my-bucket/audio/123-song.mp3", url)

	// Ký tự đặc biệt trong tên file được escape từng segment
	url = store.PublicURL("covers/123-mi canción.jpg")
	assert.Equal(t, "https://storage.googleapis.com/my-bucket/covers/123-mi%20canci%C3%B3n.jpg", url)
}

func TestObjectPathFromURL(t *testing.T) {
	store := &BlobStore{bucketName: "my-bucket"}

	// Round-trip: PublicURL rồi ObjectPathFromURL trả về đường dẫn gốc
	objectPath := "covers/123-mi canción.jpg"
	assert.Equal(t, objectPath, store.ObjectPathFromURL(store.PublicURL(objectPath)))

	// URL không thuộc bucket này trả về chuỗi rỗng
	assert.Equal(t, "", store.ObjectPathFromURL("https://storage.googleapis.com/other-bucket/audio/x.mp3"))
	assert.Equal(t, "", store.ObjectPathFromURL("https://example.com/audio/x.mp3"))
}
