package musichdl

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/base/handler"
	musicdto "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/music/dto"
	musicmodels "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/music/models"
	musicsvc "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/music/service"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/common"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/storage"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/utility"
)

// SongHandler xử lý các request liên quan đến bài hát
type SongHandler struct {
	*basehdl.BaseHandler[musicmodels.Song, musicdto.SongCreateInput, musicdto.SongUpdateInput]
	SongService *musicsvc.SongService
}

// NewSongHandler tạo mới SongHandler
func NewSongHandler() (*SongHandler, error) {
	songService, err := musicsvc.NewSongService()
	if err != nil {
		return nil, fmt.Errorf("failed to create song service: %v", err)
	}
	hdl := &SongHandler{SongService: songService}
	hdl.BaseHandler = basehdl.NewBaseHandler[musicmodels.Song, musicdto.SongCreateInput, musicdto.SongUpdateInput](songService.BaseServiceMongoImpl)
	return hdl, nil
}

// Upload nhận multipart form với title, artist, file audio và ảnh bìa.
// Thiếu bất kỳ field nào sẽ trả lỗi trước khi ghi bất cứ thứ gì lên storage.
//
// Form fields:
// - title: Tên bài hát
// - artist: Nghệ sĩ
// - audioFile: File audio
// - coverFile: Ảnh bìa
func (h *SongHandler) Upload(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		title := strings.TrimSpace(c.FormValue("title"))
		artist := strings.TrimSpace(c.FormValue("artist"))

		audioHeader, audioErr := c.FormFile("audioFile")
		coverHeader, coverErr := c.FormFile("coverFile")

		if title == "" || artist == "" || audioErr != nil || coverErr != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				common.MsgRequiredFields,
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		audioFile, err := audioHeader.Open()
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
			return nil
		}
		defer audioFile.Close()

		coverFile, err := coverHeader.Open()
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
			return nil
		}
		defer coverFile.Close()

		song, err := h.SongService.Upload(c.Context(), title, artist,
			storage.FilePart{
				Filename:    audioHeader.Filename,
				ContentType: audioHeader.Header.Get("Content-Type"),
				Reader:      audioFile,
			},
			storage.FilePart{
				Filename:    coverHeader.Filename,
				ContentType: coverHeader.Header.Get("Content-Type"),
				Reader:      coverFile,
			},
		)
		h.HandleResponse(c, song, err)
		return nil
	})
}

// Reorder nhận danh sách ID đầy đủ theo thứ tự mới và gán lại order cho từng bài
func (h *SongHandler) Reorder(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input musicdto.SongReorderInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		ids := make([]primitive.ObjectID, len(input.IDs))
		for i, id := range input.IDs {
			if !primitive.IsValidObjectID(id) {
				h.HandleResponse(c, nil, common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("El ID '%s' en la posición %d no tiene un formato de ObjectID válido", id, i),
					common.StatusBadRequest,
					nil,
				))
				return nil
			}
			ids[i] = utility.String2ObjectID(id)
		}

		result, err := h.SongService.Reorder(c.Context(), ids)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// DeleteById xóa bài hát cùng file audio và ảnh bìa trên storage.
// Ghi đè handler mặc định của BaseHandler.
func (h *SongHandler) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" || !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("El ID '%s' no tiene un formato de ObjectID válido", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		err := h.SongService.DeleteWithBlobs(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, nil, err)
		return nil
	})
}
