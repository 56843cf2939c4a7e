package musicsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	basesvc "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/base/service"
	musicmodels "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/music/models"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/common"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/global"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/logger"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/storage"
)

// Thư mục lưu file trên bucket
const (
	audioDir = "audio"
	coverDir = "covers"
)

// SongService là service quản lý bài hát, bao gồm upload file lên Blob Store
type SongService struct {
	*basesvc.BaseServiceMongoImpl[musicmodels.Song]
	blobStore *storage.BlobStore
}

// NewSongService tạo mới SongService
func NewSongService() (*SongService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Songs)
	if !exist {
		return nil, fmt.Errorf("failed to get songs collection: %v", common.ErrNotFound)
	}

	blobStore, err := storage.NewBlobStore()
	if err != nil {
		return nil, fmt.Errorf("failed to create blob store: %v", err)
	}

	return &SongService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[musicmodels.Song](collection),
		blobStore:            blobStore,
	}, nil
}

// NewSongServiceWithDeps tạo SongService với collection và blob store được inject (dùng cho test)
func NewSongServiceWithDeps(collection *mongo.Collection, blobStore *storage.BlobStore) *SongService {
	return &SongService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[musicmodels.Song](collection),
		blobStore:            blobStore,
	}
}

// Upload upload đồng thời file audio và ảnh bìa lên Blob Store rồi ghi metadata.
// Document chỉ được ghi sau khi cả hai upload thành công. Nếu một nhánh thất bại,
// thao tác bị hủy nhưng file đã upload của nhánh kia không bị rollback.
func (s *SongService) Upload(ctx context.Context, title string, artist string, audio storage.FilePart, cover storage.FilePart) (musicmodels.Song, error) {
	var song musicmodels.Song

	var audioURL, audioPath, coverURL, coverPath string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		audioURL, audioPath, err = s.blobStore.Save(gctx, audioDir, audio.Filename, audio.ContentType, audio.Reader)
		return err
	})
	g.Go(func() error {
		var err error
		coverURL, coverPath, err = s.blobStore.Save(gctx, coverDir, cover.Filename, cover.ContentType, cover.Reader)
		return err
	})
	if err := g.Wait(); err != nil {
		return song, err
	}

	// Bài hát mới xếp cuối danh sách
	count, err := s.CountDocuments(ctx, bson.M{})
	if err != nil {
		return song, err
	}

	song = musicmodels.Song{
		Title:     title,
		Artist:    artist,
		AudioURL:  audioURL,
		CoverURL:  coverURL,
		AudioPath: audioPath,
		CoverPath: coverPath,
		Order:     int(count),
	}
	return s.InsertOne(ctx, song)
}

// Reorder gán lại order = vị trí trong danh sách cho toàn bộ ID gửi lên,
// commit bằng một BulkWrite duy nhất.
func (s *SongService) Reorder(ctx context.Context, ids []primitive.ObjectID) (*mongo.BulkWriteResult, error) {
	if len(ids) == 0 {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			common.MsgRequiredFields,
			common.StatusBadRequest,
			nil,
		)
	}

	return s.BulkWrite(ctx, reorderModels(ids, time.Now().UnixMilli()))
}

// reorderModels tạo update model gán order = vị trí trong danh sách cho từng ID
func reorderModels(ids []primitive.ObjectID, now int64) []mongo.WriteModel {
	writeModels := make([]mongo.WriteModel, 0, len(ids))
	for i, id := range ids {
		writeModels = append(writeModels, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$set": bson.M{"order": i, "updatedAt": now}}))
	}
	return writeModels
}

// DeleteWithBlobs xóa đồng thời file audio, ảnh bìa và document metadata.
// Lỗi xóa file chỉ được log; kết quả quyết định bởi việc xóa document.
func (s *SongService) DeleteWithBlobs(ctx context.Context, id primitive.ObjectID) error {
	song, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	var wg errgroup.Group
	wg.Go(func() error {
		if err := s.blobStore.Delete(ctx, song.AudioPath); err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"song_id": id.Hex(),
				"object":  song.AudioPath,
			}).Warn("Không xóa được file audio, bỏ qua")
		}
		return nil
	})
	wg.Go(func() error {
		if err := s.blobStore.Delete(ctx, song.CoverPath); err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"song_id": id.Hex(),
				"object":  song.CoverPath,
			}).Warn("Không xóa được ảnh bìa, bỏ qua")
		}
		return nil
	})
	wg.Go(func() error {
		return s.DeleteById(ctx, id)
	})
	return wg.Wait()
}
