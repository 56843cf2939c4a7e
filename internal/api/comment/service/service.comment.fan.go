package commentsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/base/models"
	basesvc "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/base/service"
	commentmodels "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/comment/models"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/common"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/global"
)

// defaultPageLimit là số bình luận mặc định trên một trang
const defaultPageLimit = 10

// FanCommentService là service quản lý bình luận của fan
type FanCommentService struct {
	*basesvc.BaseServiceMongoImpl[commentmodels.FanComment]
}

// NewFanCommentService tạo mới FanCommentService
func NewFanCommentService() (*FanCommentService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.FanComments)
	if !exist {
		return nil, fmt.Errorf("failed to get fan_comments collection: %v", common.ErrNotFound)
	}

	return &FanCommentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[commentmodels.FanComment](collection),
	}, nil
}

// NewFanCommentServiceWithCollection tạo FanCommentService với collection được inject (dùng cho test)
func NewFanCommentServiceWithCollection(collection *mongo.Collection) *FanCommentService {
	return &FanCommentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[commentmodels.FanComment](collection),
	}
}

// Submit tạo bình luận mới, luôn với status pending bất kể input
func (s *FanCommentService) Submit(ctx context.Context, name string, comment string) (commentmodels.FanComment, error) {
	return s.InsertOne(ctx, commentmodels.FanComment{
		Name:    name,
		Comment: comment,
		Status:  commentmodels.CommentStatusPending,
	})
}

// statusFilter tạo filter theo status. Với approved, document cũ không có
// status cũng được tính là approved.
func statusFilter(status string) bson.M {
	switch status {
	case commentmodels.CommentStatusApproved:
		return bson.M{"$or": []bson.M{
			{"status": commentmodels.CommentStatusApproved},
			{"status": bson.M{"$exists": false}},
			{"status": ""},
		}}
	case commentmodels.CommentStatusPending:
		return bson.M{"status": commentmodels.CommentStatusPending}
	default:
		return bson.M{}
	}
}

// cursorFilter ghép filter theo status với điều kiện cursor (_id < cursor).
// Cursor không parse được bị bỏ qua, truy vấn trả về trang đầu.
func cursorFilter(status string, cursor string) bson.M {
	filter := statusFilter(status)
	if cursor != "" {
		if cursorID, err := primitive.ObjectIDFromHex(cursor); err == nil {
			filter = bson.M{"$and": []bson.M{filter, {"_id": bson.M{"$lt": cursorID}}}}
		}
	}
	return filter
}

// slicePage cắt kết quả đọc limit+1 document thành một trang: document thứ
// limit+1 chỉ báo hiệu còn trang sau, không được trả về.
func slicePage(items []commentmodels.FanComment, limit int64) *basemodels.CursorPageResult[commentmodels.FanComment] {
	result := &basemodels.CursorPageResult[commentmodels.FanComment]{
		Items:   items,
		HasMore: false,
	}
	if int64(len(items)) > limit {
		result.Items = items[:limit]
		result.HasMore = true
	}
	if len(result.Items) > 0 && result.HasMore {
		result.NextCursor = result.Items[len(result.Items)-1].ID.Hex()
	}
	if result.Items == nil {
		result.Items = []commentmodels.FanComment{}
	}
	return result
}

// ListPage trả về một trang bình luận theo cursor, sắp xếp theo _id giảm dần.
// Đọc limit+1 document để biết còn trang sau hay không. Cursor không hợp lệ
// hoặc đã cũ sẽ trả về trang đầu.
func (s *FanCommentService) ListPage(ctx context.Context, status string, limit int64, cursor string) (*basemodels.CursorPageResult[commentmodels.FanComment], error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}

	opts := mongoopts.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(limit + 1)

	items, err := s.Find(ctx, cursorFilter(status, cursor), opts)
	if err != nil {
		return nil, err
	}

	return slicePage(items, limit), nil
}

// Approve chuyển bình luận sang approved. Idempotent: duyệt lại một bình
// luận đã approved vẫn thành công.
func (s *FanCommentService) Approve(ctx context.Context, id primitive.ObjectID) (commentmodels.FanComment, error) {
	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status": commentmodels.CommentStatusApproved,
		},
	})
}

// BulkApprove duyệt nhiều bình luận trong một BulkWrite duy nhất
func (s *FanCommentService) BulkApprove(ctx context.Context, ids []primitive.ObjectID) (*mongo.BulkWriteResult, error) {
	now := time.Now().UnixMilli()
	writeModels := make([]mongo.WriteModel, 0, len(ids))
	for _, id := range ids {
		writeModels = append(writeModels, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": id}).
			SetUpdate(bson.M{"$set": bson.M{"status": commentmodels.CommentStatusApproved, "updatedAt": now}}))
	}
	return s.BulkWrite(ctx, writeModels)
}

// BulkDelete xóa nhiều bình luận trong một BulkWrite duy nhất
func (s *FanCommentService) BulkDelete(ctx context.Context, ids []primitive.ObjectID) (*mongo.BulkWriteResult, error) {
	writeModels := make([]mongo.WriteModel, 0, len(ids))
	for _, id := range ids {
		writeModels = append(writeModels, mongo.NewDeleteOneModel().
			SetFilter(bson.M{"_id": id}))
	}
	return s.BulkWrite(ctx, writeModels)
}
