package tourdto

// TourDateCreateInput dữ liệu đầu vào khi tạo buổi diễn
type TourDateCreateInput struct {
	EventName string `json:"eventName" validate:"required,no_xss,max=200"`
	Venue     string `json:"venue" validate:"required,no_xss,max=200"`
	City      string `json:"city" validate:"required,no_xss,max=100"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time,omitempty" validate:"omitempty,max=20"`
	VenueURL  string `json:"venueUrl,omitempty" validate:"omitempty,url"`
	PostURL   string `json:"postUrl,omitempty" validate:"omitempty,url"`
}

// TourDateUpdateInput dữ liệu đầu vào khi cập nhật buổi diễn
type TourDateUpdateInput struct {
	EventName string `json:"eventName,omitempty" validate:"omitempty,no_xss,max=200"`
	Venue     string `json:"venue,omitempty" validate:"omitempty,no_xss,max=200"`
	City      string `json:"city,omitempty" validate:"omitempty,no_xss,max=100"`
	Date      string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time      string `json:"time,omitempty" validate:"omitempty,max=20"`
	VenueURL  string `json:"venueUrl,omitempty" validate:"omitempty,url"`
	PostURL   string `json:"postUrl,omitempty" validate:"omitempty,url"`
}
