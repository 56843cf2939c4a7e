package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TourDate đại diện cho một buổi diễn trong lịch lưu diễn của ban nhạc
type TourDate struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của buổi diễn

	EventName string `json:"eventName" bson:"eventName"`                   // Tên sự kiện
	Venue     string `json:"venue" bson:"venue"`                           // Địa điểm tổ chức
	City      string `json:"city" bson:"city"`                             // Thành phố
	Date      string `json:"date" bson:"date" index:"single:1"`            // Ngày diễn (YYYY-MM-DD)
	Time      string `json:"time,omitempty" bson:"time,omitempty"`         // Giờ diễn
	VenueURL  string `json:"venueUrl,omitempty" bson:"venueUrl,omitempty"` // Link địa điểm hoặc bán vé

	// PostURL là field cũ (một link bài đăng duy nhất), chỉ giữ để đọc
	// các document cũ. Các bản ghi mới dùng các field có cấu trúc ở trên.
	PostURL string `json:"postUrl,omitempty" bson:"postUrl,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
