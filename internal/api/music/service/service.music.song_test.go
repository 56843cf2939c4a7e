package musicsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Danh sách gửi lên theo thứ tự mới: mỗi bài nhận order = vị trí của nó
func TestReorderModelsAssignOrderByPosition(t *testing.T) {
	songA := primitive.NewObjectID()
	songB := primitive.NewObjectID()
	songC := primitive.NewObjectID()

	// Thứ tự cũ A, B, C; admin kéo C lên đầu
	now := int64(1756400000000)
	writeModels := reorderModels([]primitive.ObjectID{songC, songA, songB}, now)
	assert.Len(t, writeModels, 3)

	expected := []struct {
		id    primitive.ObjectID
		order int
	}{
		{songC, 0},
		{songA, 1},
		{songB, 2},
	}
	for i, want := range expected {
		model, ok := writeModels[i].(*mongo.UpdateOneModel)
		assert.True(t, ok)
		assert.Equal(t, bson.M{"_id": want.id}, model.Filter)
		assert.Equal(t, bson.M{"$set": bson.M{"order": want.order, "updatedAt": now}}, model.Update)
	}
}

func TestReorderModelsEmpty(t *testing.T) {
	assert.Empty(t, reorderModels(nil, 0))
}
