package bandsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	bandmodels "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/band/models"
	basesvc "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/base/service"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/common"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/global"
)

// BandInfoService là service quản lý thông tin ban nhạc (biography singleton)
type BandInfoService struct {
	*basesvc.BaseServiceMongoImpl[bandmodels.Biography]
}

// NewBandInfoService tạo mới BandInfoService
func NewBandInfoService() (*BandInfoService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.BandInfo)
	if !exist {
		return nil, fmt.Errorf("failed to get band_info collection: %v", common.ErrNotFound)
	}

	return &BandInfoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[bandmodels.Biography](collection),
	}, nil
}

// NewBandInfoServiceWithCollection tạo BandInfoService với collection được inject (dùng cho test)
func NewBandInfoServiceWithCollection(collection *mongo.Collection) *BandInfoService {
	return &BandInfoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[bandmodels.Biography](collection),
	}
}

// GetBiography trả về tiểu sử hiện tại. Chưa có document thì trả về text rỗng.
func (s *BandInfoService) GetBiography(ctx context.Context) (bandmodels.Biography, error) {
	bio, err := s.FindOne(ctx, bson.M{"_id": bandmodels.BiographyID}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return bandmodels.Biography{ID: bandmodels.BiographyID, Text: ""}, nil
		}
		return bandmodels.Biography{}, err
	}
	return bio, nil
}

// UpdateBiography upsert tiểu sử theo _id cố định
func (s *BandInfoService) UpdateBiography(ctx context.Context, text string) (bandmodels.Biography, error) {
	return s.Upsert(ctx, bson.M{"_id": bandmodels.BiographyID}, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"text": text,
		},
	})
}
