package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Song đại diện cho một bài hát trong thư viện nhạc của ban nhạc
type Song struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của bài hát

	Title  string `json:"title" bson:"title"`   // Tên bài hát
	Artist string `json:"artist" bson:"artist"` // Nghệ sĩ trình bày

	AudioURL  string `json:"audioUrl" bson:"audioUrl"`                       // URL public của file audio
	CoverURL  string `json:"coverUrl" bson:"coverUrl"`                       // URL public của ảnh bìa
	AudioPath string `json:"audioPath,omitempty" bson:"audioPath,omitempty"` // Đường dẫn object của audio trong bucket
	CoverPath string `json:"coverPath,omitempty" bson:"coverPath,omitempty"` // Đường dẫn object của ảnh bìa trong bucket

	// Order là vị trí hiển thị. Thêm mới gán bằng số lượng hiện có,
	// reorder gán lại dày đặc theo thứ tự danh sách gửi lên.
	Order int `json:"order" bson:"order" index:"single:1"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
