package gallerysvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/base/service"
	gallerymodels "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/gallery/models"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/common"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/global"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/logger"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/storage"
)

// Thư mục lưu ảnh gallery trên bucket theo gallery
var galleryDirs = map[string]string{
	gallerymodels.GalleryBand: "gallery/band",
	gallerymodels.GalleryFan:  "gallery/fan",
}

// MediaItemService là service quản lý media trong gallery
type MediaItemService struct {
	*basesvc.BaseServiceMongoImpl[gallerymodels.MediaItem]
	blobStore *storage.BlobStore
}

// NewMediaItemService tạo mới MediaItemService
func NewMediaItemService() (*MediaItemService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.MediaItems)
	if !exist {
		return nil, fmt.Errorf("failed to get media_items collection: %v", common.ErrNotFound)
	}

	blobStore, err := storage.NewBlobStore()
	if err != nil {
		return nil, fmt.Errorf("failed to create blob store: %v", err)
	}

	return &MediaItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[gallerymodels.MediaItem](collection),
		blobStore:            blobStore,
	}, nil
}

// NewMediaItemServiceWithDeps tạo MediaItemService với dependency được inject (dùng cho test)
func NewMediaItemServiceWithDeps(collection *mongo.Collection, blobStore *storage.BlobStore) *MediaItemService {
	return &MediaItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[gallerymodels.MediaItem](collection),
		blobStore:            blobStore,
	}
}

// UploadImage upload ảnh lên Blob Store và ghi MediaItem với type image
func (s *MediaItemService) UploadImage(ctx context.Context, gallery string, name string, file storage.FilePart) (gallerymodels.MediaItem, error) {
	var item gallerymodels.MediaItem

	dir, ok := galleryDirs[gallery]
	if !ok {
		return item, common.NewError(
			common.ErrCodeValidationInput,
			common.MsgValidationError,
			common.StatusBadRequest,
			nil,
		)
	}

	url, path, err := s.blobStore.Save(ctx, dir, file.Filename, file.ContentType, file.Reader)
	if err != nil {
		return item, err
	}

	item = gallerymodels.MediaItem{
		Name:    name,
		URL:     url,
		Type:    gallerymodels.MediaTypeImage,
		Path:    path,
		Gallery: gallery,
	}
	return s.InsertOne(ctx, item)
}

// DeleteWithBlob xóa document media và file trên storage (nếu có).
// Lỗi xóa file chỉ được log, không chặn việc xóa document.
func (s *MediaItemService) DeleteWithBlob(ctx context.Context, id primitive.ObjectID) error {
	item, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	if item.Path != "" {
		if err := s.blobStore.Delete(ctx, item.Path); err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"media_id": id.Hex(),
				"object":   item.Path,
			}).Warn("Không xóa được file media, bỏ qua")
		}
	}

	return s.DeleteById(ctx, id)
}
