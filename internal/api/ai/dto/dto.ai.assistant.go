// Package aidto chứa các DTO cho trợ lý AI (sinh văn bản và logo).
package aidto

// BiographyGenerateInput là input cho việc sinh tiểu sử ban nhạc
type BiographyGenerateInput struct {
	BandName  string `json:"bandName" validate:"required,min=1,max=200,no_xss"`
	KeyPoints string `json:"keyPoints" validate:"required,min=1,max=2000,no_xss"`
	Tone      string `json:"tone" validate:"required,min=1,max=100,no_xss"`
}

// SocialPostGenerateInput là input cho việc sinh bài đăng mạng xã hội.
// FlyerDataUri là ảnh flyer inline (data URI) nếu có.
type SocialPostGenerateInput struct {
	Topic        string `json:"topic" validate:"required,min=1,max=500,no_xss"`
	Platform     string `json:"platform" validate:"required,min=1,max=50,no_xss"`
	FlyerDataUri string `json:"flyerDataUri,omitempty" validate:"omitempty,startswith=data:"`
}

// HashtagSuggestInput là input cho việc gợi ý hashtag
type HashtagSuggestInput struct {
	Topic string `json:"topic" validate:"required,min=1,max=500,no_xss"`
}

// LogoGenerateInput là input cho việc sinh logo
type LogoGenerateInput struct {
	Prompt string `json:"prompt" validate:"required,min=1,max=1000,no_xss"`
}
