package commentdto

// FanCommentSubmitInput dữ liệu đầu vào khi fan gửi bình luận.
// Status không nhận từ client: bình luận mới luôn là pending.
type FanCommentSubmitInput struct {
	Name    string `json:"name" validate:"required,no_xss,max=100"`
	Comment string `json:"comment" validate:"required,no_xss,max=1000"`
}

// FanCommentUpdateInput dữ liệu đầu vào khi admin cập nhật bình luận
type FanCommentUpdateInput struct {
	Status string `json:"status,omitempty" validate:"omitempty,comment_status"`
}

// FanCommentListPageInput tham số phân trang theo cursor
type FanCommentListPageInput struct {
	Status string `json:"status,omitempty" validate:"omitempty,comment_status"`
	Limit  int64  `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	Cursor string `json:"cursor,omitempty"`
}

// FanCommentBulkInput danh sách ID cho các thao tác hàng loạt
type FanCommentBulkInput struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required,len=24"`
}
