package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái duyệt của bình luận
const (
	CommentStatusPending  = "pending"  // Chờ admin duyệt
	CommentStatusApproved = "approved" // Đã duyệt, hiển thị công khai
)

// FanComment đại diện cho một bình luận của fan.
// Bình luận mới luôn được tạo với status pending; document cũ không có
// status được xem là approved khi đọc.
type FanComment struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"` // ID của bình luận

	Name    string `json:"name" bson:"name"`       // Tên người bình luận
	Comment string `json:"comment" bson:"comment"` // Nội dung bình luận

	Status string `json:"status,omitempty" bson:"status,omitempty" index:"single:1"` // pending hoặc approved

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

// EffectiveStatus trả về status thực tế: document cũ không có status được xem là approved
func (c FanComment) EffectiveStatus() string {
	if c.Status == "" {
		return CommentStatusApproved
	}
	return c.Status
}
