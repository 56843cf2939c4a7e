package basehdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testModel struct {
	Title  string
	Artist string
	Order  int
}

type testCreateInput struct {
	Title  string
	Artist string
}

type testUpdateInput struct {
	Title  *string
	Artist *string
}

func newTestHandler() *BaseHandler[testModel, testCreateInput, testUpdateInput] {
	return NewBaseHandler[testModel, testCreateInput, testUpdateInput](nil)
}

func TestTransformCreateInputToModel(t *testing.T) {
	h := newTestHandler()

	model, err := h.TransformCreateInputToModel(&testCreateInput{Title: "Canción", Artist: "Jokers LB"})
	assert.NoError(t, err)
	assert.Equal(t, "Canción", model.Title)
	assert.Equal(t, "Jokers LB", model.Artist)
	assert.Equal(t, 0, model.Order)
}

func TestTransformUpdateInputToModel(t *testing.T) {
	h := newTestHandler()
	title := "Nuevo título"

	// Field nil trong input partial update không được copy
	model, err := h.TransformUpdateInputToModel(&testUpdateInput{Title: &title})
	assert.NoError(t, err)
	assert.Equal(t, "Nuevo título", model.Title)
	assert.Equal(t, "", model.Artist)
}

func TestParseSortMap(t *testing.T) {
	sortBson := parseSortMap(map[string]interface{}{"date": float64(1)})
	assert.Equal(t, bson.D{{Key: "date", Value: 1}}, sortBson)

	// Giá trị khác 1/-1 bị bỏ qua
	sortBson = parseSortMap(map[string]interface{}{"date": float64(5)})
	assert.Empty(t, sortBson)

	sortBson = parseSortMap(map[string]interface{}{"date": "asc"})
	assert.Empty(t, sortBson)
}

func TestNormalizeFilterConvertsIDFields(t *testing.T) {
	h := newTestHandler()
	id := primitive.NewObjectID()

	normalized := h.normalizeFilter(map[string]interface{}{
		"songId": id.Hex(),
		"title":  id.Hex(),
	})

	// Trường kết thúc bằng Id được chuyển thành ObjectID, trường khác giữ nguyên
	assert.Equal(t, id, normalized["songId"])
	assert.Equal(t, id.Hex(), normalized["title"])
}

func TestNormalizeFilterExtendedJSON(t *testing.T) {
	h := newTestHandler()
	id := primitive.NewObjectID()

	normalized := h.normalizeFilter(map[string]interface{}{
		"_id": map[string]interface{}{"$oid": id.Hex()},
	})
	assert.Equal(t, id, normalized["_id"])
}

func TestValidateFilterDeniedField(t *testing.T) {
	h := newTestHandler()

	err := h.validateFilter(map[string]interface{}{"password": "x"})
	assert.Error(t, err)
}

func TestValidateFilterDeniedOperator(t *testing.T) {
	h := newTestHandler()

	err := h.validateFilter(map[string]interface{}{
		"title": map[string]interface{}{"$where": "1"},
	})
	assert.Error(t, err)

	err = h.validateFilter(map[string]interface{}{
		"title": map[string]interface{}{"$eq": "Canción"},
	})
	assert.NoError(t, err)
}

func TestValidateFilterMaxFields(t *testing.T) {
	h := newTestHandler()
	h.SetFilterOptions(FilterOptions{MaxFields: 2})

	err := h.validateFilter(map[string]interface{}{"a": 1, "b": 2, "c": 3})
	assert.Error(t, err)

	err = h.validateFilter(map[string]interface{}{"a": 1, "b": 2})
	assert.NoError(t, err)
}
