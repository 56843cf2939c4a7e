package galleryhdl

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/base/handler"
	gallerydto "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/gallery/dto"
	gallerymodels "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/gallery/models"
	gallerysvc "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/gallery/service"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/common"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/storage"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/utility"
)

// MediaItemHandler xử lý các request liên quan đến gallery
type MediaItemHandler struct {
	*basehdl.BaseHandler[gallerymodels.MediaItem, gallerydto.MediaItemCreateInput, gallerydto.MediaItemUpdateInput]
	MediaItemService *gallerysvc.MediaItemService
}

// NewMediaItemHandler tạo mới MediaItemHandler
func NewMediaItemHandler() (*MediaItemHandler, error) {
	mediaItemService, err := gallerysvc.NewMediaItemService()
	if err != nil {
		return nil, fmt.Errorf("failed to create media item service: %v", err)
	}
	hdl := &MediaItemHandler{MediaItemService: mediaItemService}
	hdl.BaseHandler = basehdl.NewBaseHandler[gallerymodels.MediaItem, gallerydto.MediaItemCreateInput, gallerydto.MediaItemUpdateInput](mediaItemService.BaseServiceMongoImpl)
	return hdl, nil
}

// Upload nhận multipart form với name, gallery và file ảnh.
//
// Form fields:
// - name: Tên hiển thị
// - gallery: band hoặc fan
// - imageFile: File ảnh
func (h *MediaItemHandler) Upload(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		name := strings.TrimSpace(c.FormValue("name"))
		gallery := strings.TrimSpace(c.FormValue("gallery"))

		imageHeader, imageErr := c.FormFile("imageFile")

		if name == "" || gallery == "" || imageErr != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				common.MsgRequiredFields,
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		imageFile, err := imageHeader.Open()
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
			return nil
		}
		defer imageFile.Close()

		item, err := h.MediaItemService.UploadImage(c.Context(), gallery, name, storage.FilePart{
			Filename:    imageHeader.Filename,
			ContentType: imageHeader.Header.Get("Content-Type"),
			Reader:      imageFile,
		})
		h.HandleResponse(c, item, err)
		return nil
	})
}

// DeleteById xóa media cùng file trên storage (nếu có).
// Ghi đè handler mặc định của BaseHandler.
func (h *MediaItemHandler) DeleteById(c fiber.Ctx) error {
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

		err := h.MediaItemService.DeleteWithBlob(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, nil, err)
		return nil
	})
}
