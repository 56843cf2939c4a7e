package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type toMapSample struct {
	Name  string `bson:"name"`
	Email string `bson:"email,omitempty"`
}

func TestToMap(t *testing.T) {
	m, err := ToMap(toMapSample{Name: "Joker", Email: "joker@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, "Joker", m["name"])
	assert.Equal(t, "joker@example.com", m["email"])
}

func TestToMapOmitEmpty(t *testing.T) {
	m, err := ToMap(toMapSample{Name: "Joker"})
	assert.NoError(t, err)
	assert.Equal(t, "Joker", m["name"])

	// Trường omitempty rỗng không xuất hiện trong map
	_, exists := m["email"]
	assert.False(t, exists)
}

func TestCustomBsonSet(t *testing.T) {
	customBson := &CustomBson{}
	m, err := customBson.Set(toMapSample{Name: "Joker"})
	assert.NoError(t, err)

	// Document lồng nhau được decode thành map khi đích là map[string]interface{}
	setDoc, ok := m["$set"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, map[string]interface{}{"name": "Joker"}, setDoc)
}
