package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loại media được hỗ trợ
const (
	MediaTypeImage    = "image"    // Ảnh upload hoặc link trực tiếp
	MediaTypeVideo    = "video"    // Link video (youtube, etc.)
	MediaTypeFacebook = "facebook" // Link bài đăng facebook
)

// Gallery mà media thuộc về
const (
	GalleryBand = "band" // Gallery chính thức của ban nhạc
	GalleryFan  = "fan"  // Gallery do fan đóng góp
)

// MediaItem đại diện cho một mục trong gallery (ảnh, video hoặc link facebook)
type MediaItem struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của media

	Name    string `json:"name" bson:"name"`                        // Tên hiển thị
	URL     string `json:"url" bson:"url"`                          // URL public của media
	Type    string `json:"type" bson:"type"`                        // image, video hoặc facebook
	Path    string `json:"path,omitempty" bson:"path,omitempty"`    // Đường dẫn object trong bucket (chỉ khi upload)
	Gallery string `json:"gallery" bson:"gallery" index:"single:1"` // band hoặc fan

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
