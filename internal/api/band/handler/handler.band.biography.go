package bandhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	banddto "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/band/dto"
	bandmodels "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/band/models"
	bandsvc "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/band/service"
	basehdl "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/base/handler"
)

// BandInfoHandler xử lý các request liên quan đến thông tin ban nhạc
type BandInfoHandler struct {
	*basehdl.BaseHandler[bandmodels.Biography, banddto.BiographyUpdateInput, banddto.BiographyUpdateInput]
	BandInfoService *bandsvc.BandInfoService
}

// NewBandInfoHandler tạo mới BandInfoHandler
func NewBandInfoHandler() (*BandInfoHandler, error) {
	bandInfoService, err := bandsvc.NewBandInfoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create band info service: %v", err)
	}
	hdl := &BandInfoHandler{BandInfoService: bandInfoService}
	hdl.BaseHandler = basehdl.NewBaseHandler[bandmodels.Biography, banddto.BiographyUpdateInput, banddto.BiographyUpdateInput](bandInfoService.BaseServiceMongoImpl)
	return hdl, nil
}

// GetBiography trả về tiểu sử hiện tại (public)
func (h *BandInfoHandler) GetBiography(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		bio, err := h.BandInfoService.GetBiography(c.Context())
		h.HandleResponse(c, bio, err)
		return nil
	})
}

// UpdateBiography cập nhật tiểu sử (admin)
func (h *BandInfoHandler) UpdateBiography(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input banddto.BiographyUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		bio, err := h.BandInfoService.UpdateBiography(c.Context(), input.Text)
		h.HandleResponse(c, bio, err)
		return nil
	})
}
