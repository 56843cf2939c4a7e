package toursvc

import (
	"fmt"

	basesvc "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/base/service"
	tourmodels "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/tour/models"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/common"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/global"
)

// TourDateService là service quản lý lịch diễn
type TourDateService struct {
	*basesvc.BaseServiceMongoImpl[tourmodels.TourDate]
}

// NewTourDateService tạo mới TourDateService
func NewTourDateService() (*TourDateService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.TourDates)
	if !exist {
		return nil, fmt.Errorf("failed to get tour_dates collection: %v", common.ErrNotFound)
	}

	return &TourDateService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[tourmodels.TourDate](collection),
	}, nil
}
