package tourhdl

import (
	"fmt"

	basehdl "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/base/handler"
	tourdto "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/tour/dto"
	tourmodels "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/tour/models"
	toursvc "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/tour/service"
)

// TourDateHandler xử lý các request liên quan đến lịch diễn
type TourDateHandler struct {
	*basehdl.BaseHandler[tourmodels.TourDate, tourdto.TourDateCreateInput, tourdto.TourDateUpdateInput]
	TourDateService *toursvc.TourDateService
}

// NewTourDateHandler tạo mới TourDateHandler
func NewTourDateHandler() (*TourDateHandler, error) {
	tourDateService, err := toursvc.NewTourDateService()
	if err != nil {
		return nil, fmt.Errorf("failed to create tour date service: %v", err)
	}
	hdl := &TourDateHandler{TourDateService: tourDateService}
	hdl.BaseHandler = basehdl.NewBaseHandler[tourmodels.TourDate, tourdto.TourDateCreateInput, tourdto.TourDateUpdateInput](tourDateService.BaseServiceMongoImpl)
	return hdl, nil
}
