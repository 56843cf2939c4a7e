package commentsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	commentmodels "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/comment/models"
)

func TestStatusFilterApproved(t *testing.T) {
	filter := statusFilter(commentmodels.CommentStatusApproved)

	// Document cũ không có status hoặc status rỗng cũng được tính là approved
	expected := bson.M{"$or": []bson.M{
		{"status": commentmodels.CommentStatusApproved},
		{"status": bson.M{"$exists": false}},
		{"status": ""},
	}}
	assert.Equal(t, expected, filter)
}

func TestStatusFilterPending(t *testing.T) {
	filter := statusFilter(commentmodels.CommentStatusPending)
	assert.Equal(t, bson.M{"status": commentmodels.CommentStatusPending}, filter)
}

func TestStatusFilterEmpty(t *testing.T) {
	// Không có status: lấy tất cả
	assert.Equal(t, bson.M{}, statusFilter(""))
	assert.Equal(t, bson.M{}, statusFilter("unknown"))
}

func TestCursorFilterValidCursor(t *testing.T) {
	cursorID := primitive.NewObjectID()
	filter := cursorFilter(commentmodels.CommentStatusPending, cursorID.Hex())

	expected := bson.M{"$and": []bson.M{
		{"status": commentmodels.CommentStatusPending},
		{"_id": bson.M{"$lt": cursorID}},
	}}
	assert.Equal(t, expected, filter)
}

func TestCursorFilterInvalidCursor(t *testing.T) {
	// Cursor không parse được bị bỏ qua, truy vấn trả về trang đầu
	filter := cursorFilter(commentmodels.CommentStatusPending, "not-a-cursor")
	assert.Equal(t, bson.M{"status": commentmodels.CommentStatusPending}, filter)
}

func TestCursorFilterEmptyCursor(t *testing.T) {
	filter := cursorFilter("", "")
	assert.Equal(t, bson.M{}, filter)
}

func makeComments(n int) []commentmodels.FanComment {
	items := make([]commentmodels.FanComment, n)
	for i := range items {
		items[i] = commentmodels.FanComment{ID: primitive.NewObjectID()}
	}
	return items
}

func TestSlicePageHasMore(t *testing.T) {
	// Đọc limit+1 document: document thừa chỉ báo hiệu còn trang sau
	items := makeComments(11)
	page := slicePage(items, 10)

	assert.Len(t, page.Items, 10)
	assert.True(t, page.HasMore)
	assert.Equal(t, items[9].ID.Hex(), page.NextCursor)
	assert.NotContains(t, page.Items, items[10])
}

func TestSlicePageLastPage(t *testing.T) {
	items := makeComments(3)
	page := slicePage(items, 10)

	assert.Len(t, page.Items, 3)
	assert.False(t, page.HasMore)
	assert.Empty(t, page.NextCursor)
}

func TestSlicePageEmpty(t *testing.T) {
	page := slicePage(nil, 10)

	assert.NotNil(t, page.Items)
	assert.Len(t, page.Items, 0)
	assert.False(t, page.HasMore)
	assert.Empty(t, page.NextCursor)
}
