package models

// BiographyID là _id cố định của document biography (singleton)
const BiographyID = "biography"

// Biography là tiểu sử của ban nhạc, lưu dưới dạng singleton với _id cố định
type Biography struct {
	ID   string `json:"id" bson:"_id"`    // Luôn là "biography"
	Text string `json:"text" bson:"text"` // Nội dung tiểu sử

	CreatedAt int64 `json:"createdAt,omitempty" bson:"createdAt,omitempty"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"` // Thời gian cập nhật
}
