package gallerydto

// MediaItemCreateInput dữ liệu đầu vào khi thêm media bằng URL có sẵn (video, facebook)
type MediaItemCreateInput struct {
	Name    string `json:"name" validate:"required,no_xss,max=200"`
	URL     string `json:"url" validate:"required,url"`
	Type    string `json:"type" validate:"required,media_type"`
	Gallery string `json:"gallery" validate:"required,oneof=band fan"`
}

// MediaItemUpdateInput dữ liệu đầu vào khi cập nhật media
type MediaItemUpdateInput struct {
	Name string `json:"name,omitempty" validate:"omitempty,no_xss,max=200"`
	URL  string `json:"url,omitempty" validate:"omitempty,url"`
	Type string `json:"type,omitempty" validate:"omitempty,media_type"`
}
