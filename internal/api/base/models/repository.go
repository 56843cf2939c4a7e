// Package models chứa các kiểu dùng chung cho layer repository/base (kết quả phân trang, đếm).
package models

// PaginateResult đại diện cho kết quả phân trang theo page/limit
type PaginateResult[T any] struct {
	// Trang hiện tại
	Page int64 `json:"page" bson:"page"`
	// Số lượng mục trên mỗi trang
	Limit int64 `json:"limit" bson:"limit"`
	// Số lượng mục trong trang hiện tại
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	// Danh sách các mục
	Items []T `json:"items" bson:"items"`
	// Tổng số mục
	Total int64 `json:"total" bson:"total"`
	// Tổng số trang
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}

// CursorPageResult đại diện cho kết quả phân trang theo cursor.
// NextCursor là id của item cuối cùng trong trang, dùng để lấy trang kế.
type CursorPageResult[T any] struct {
	// Danh sách các mục trong trang
	Items []T `json:"items"`
	// Còn trang tiếp theo hay không
	HasMore bool `json:"hasMore"`
	// Cursor cho trang kế (rỗng nếu HasMore = false)
	NextCursor string `json:"nextCursor,omitempty"`
}
