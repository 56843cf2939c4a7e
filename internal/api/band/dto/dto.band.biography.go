package banddto

// BiographyUpdateInput dữ liệu đầu vào khi cập nhật tiểu sử
type BiographyUpdateInput struct {
	Text string `json:"text" validate:"max=10000"`
}
