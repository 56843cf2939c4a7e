package tourdto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jokerslbmusica-svg/jokerswebpage/internal/global"
)

func TestTourDateCreateInputValidation(t *testing.T) {
	global.InitValidator()

	valid := TourDateCreateInput{
		EventName: "Noche de Rock",
		Venue:     "Teatro Principal",
		City:      "Long Beach",
		Date:      "2026-09-15",
		Time:      "20:00",
		VenueURL:  "https://teatro.example.com",
	}
	assert.NoError(t, global.Validate.Struct(valid))

	// Date phải có định dạng YYYY-MM-DD
	invalid := valid
	invalid.Date = "15/09/2026"
	assert.Error(t, global.Validate.Struct(invalid))

	invalid = valid
	invalid.Date = ""
	assert.Error(t, global.Validate.Struct(invalid))

	// VenueURL phải là URL hợp lệ nếu có
	invalid = valid
	invalid.VenueURL = "no-es-url"
	assert.Error(t, global.Validate.Struct(invalid))
}

func TestTourDateUpdateInputValidation(t *testing.T) {
	global.InitValidator()

	// Update từng phần: struct rỗng hợp lệ
	assert.NoError(t, global.Validate.Struct(TourDateUpdateInput{}))
	assert.NoError(t, global.Validate.Struct(TourDateUpdateInput{City: "San Diego"}))
	assert.Error(t, global.Validate.Struct(TourDateUpdateInput{Date: "mañana"}))
}
