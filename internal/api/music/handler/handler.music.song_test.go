package musichdl

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"

	basehdl "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/base/handler"
	musicdto "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/music/dto"
	musicmodels "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/music/models"
	musicsvc "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/music/service"
)

// newUploadTestApp tạo app với handler không có storage: nếu request thiếu
// field mà vẫn chạm tới blob store thì test sẽ thấy 500 thay vì 400
func newUploadTestApp() *fiber.App {
	hdl := &SongHandler{SongService: musicsvc.NewSongServiceWithDeps(nil, nil)}
	hdl.BaseHandler = basehdl.NewBaseHandler[musicmodels.Song, musicdto.SongCreateInput, musicdto.SongUpdateInput](nil)

	app := fiber.New()
	app.Post("/music/songs/upload", hdl.Upload)
	return app
}

type uploadForm struct {
	title     string
	artist    string
	withAudio bool
	withCover bool
}

func buildUploadRequest(t *testing.T, form uploadForm) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if form.title != "" {
		assert.NoError(t, writer.WriteField("title", form.title))
	}
	if form.artist != "" {
		assert.NoError(t, writer.WriteField("artist", form.artist))
	}
	if form.withAudio {
		part, err := writer.CreateFormFile("audioFile", "demo.mp3")
		assert.NoError(t, err)
		_, err = part.Write([]byte("audio-bytes"))
		assert.NoError(t, err)
	}
	if form.withCover {
		part, err := writer.CreateFormFile("coverFile", "cover.jpg")
		assert.NoError(t, err)
		_, err = part.Write([]byte("cover-bytes"))
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/music/songs/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// Thiếu ảnh bìa phải bị từ chối trước khi ghi bất cứ thứ gì lên storage
func TestUploadRejectsMissingCoverFile(t *testing.T) {
	app := newUploadTestApp()

	resp, err := app.Test(buildUploadRequest(t, uploadForm{
		title:     "Nueva canción",
		artist:    "Jokers LB",
		withAudio: true,
		withCover: false,
	}))
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadRejectsMissingAudioFile(t *testing.T) {
	app := newUploadTestApp()

	resp, err := app.Test(buildUploadRequest(t, uploadForm{
		title:     "Nueva canción",
		artist:    "Jokers LB",
		withAudio: false,
		withCover: true,
	}))
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadRejectsMissingTitle(t *testing.T) {
	app := newUploadTestApp()

	resp, err := app.Test(buildUploadRequest(t, uploadForm{
		artist:    "Jokers LB",
		withAudio: true,
		withCover: true,
	}))
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
