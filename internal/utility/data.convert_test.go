package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, id, String2ObjectID(id.Hex()))

	// Chuỗi không hợp lệ trả về NilObjectID
	assert.Equal(t, primitive.NilObjectID, String2ObjectID("not-an-object-id"))
	assert.Equal(t, primitive.NilObjectID, String2ObjectID(""))
}

func TestObjectID2String(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, id.Hex(), ObjectID2String(id))
}

func TestP2Int64(t *testing.T) {
	assert.Equal(t, int64(42), P2Int64("42"))
	assert.Equal(t, int64(0), P2Int64("abc"))
	assert.Equal(t, int64(0), P2Int64(""))
	assert.Equal(t, int64(-7), P2Int64("-7"))
}

func TestContains(t *testing.T) {
	list := []string{"password", "token", "secret"}
	assert.True(t, Contains(list, "token"))
	assert.False(t, Contains(list, "Token"))
	assert.False(t, Contains(nil, "token"))
}
