package musicdto

// SongCreateInput dữ liệu đầu vào khi tạo bài hát với URL có sẵn (không upload file)
type SongCreateInput struct {
	Title    string `json:"title" validate:"required,no_xss,max=200"`
	Artist   string `json:"artist" validate:"required,no_xss,max=200"`
	AudioURL string `json:"audioUrl" validate:"required,url"`
	CoverURL string `json:"coverUrl" validate:"required,url"`
}

// SongUpdateInput dữ liệu đầu vào khi cập nhật metadata bài hát
type SongUpdateInput struct {
	Title  string `json:"title,omitempty" validate:"omitempty,no_xss,max=200"`
	Artist string `json:"artist,omitempty" validate:"omitempty,no_xss,max=200"`
}

// SongReorderInput danh sách ID đầy đủ theo thứ tự hiển thị mới
type SongReorderInput struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required,len=24"`
}
