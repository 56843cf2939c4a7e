// Package aisvc gọi Google GenAI để sinh nội dung quảng bá cho ban nhạc.
// Mọi lỗi từ GenAI đều quy về common.ErrAIUnavailable, chi tiết chỉ ghi vào log.
package aisvc

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/jokerslbmusica-svg/jokerswebpage/internal/common"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/global"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/logger"
)

// AssistantService bọc client GenAI cùng tên model văn bản và model ảnh
type AssistantService struct {
	client     *genai.Client
	textModel  string
	imageModel string
}

// NewAssistantService tạo AssistantService từ cấu hình server.
// Nếu GEMINI_API_KEY trống thì service vẫn được tạo nhưng mọi lời gọi
// sẽ trả về ErrAIUnavailable (tính năng AI bị tắt).
func NewAssistantService() (*AssistantService, error) {
	svc := &AssistantService{
		textModel:  global.ServerConfig.GeminiTextModel,
		imageModel: global.ServerConfig.GeminiImageModel,
	}

	apiKey := global.ServerConfig.GeminiAPIKey
	if apiKey == "" {
		logger.GetAppLogger().Warn("GEMINI_API_KEY trống, tính năng AI bị tắt")
		return svc, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	svc.client = client
	return svc, nil
}

// NewAssistantServiceWithClient tạo service với client có sẵn (dùng cho test)
func NewAssistantServiceWithClient(client *genai.Client, textModel, imageModel string) *AssistantService {
	return &AssistantService{client: client, textModel: textModel, imageModel: imageModel}
}

// generateText gọi model văn bản với danh sách contents và trả về text thuần
func (s *AssistantService) generateText(ctx context.Context, contents []*genai.Content) (string, error) {
	if s.client == nil {
		return "", common.ErrAIUnavailable
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.textModel, contents, nil)
	if err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"model": s.textModel,
			"error": err.Error(),
		}).Error("GenAI generate content failed")
		return "", common.ErrAIUnavailable
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		logger.GetErrorLogger().WithField("model", s.textModel).Error("GenAI returned empty response")
		return "", common.ErrAIUnavailable
	}
	return text, nil
}

// GenerateBiography sinh tiểu sử ban nhạc từ tên, các ý chính và giọng văn mong muốn
func (s *AssistantService) GenerateBiography(ctx context.Context, bandName, keyPoints, tone string) (string, error) {
	prompt := fmt.Sprintf(
		"Eres el redactor oficial de la banda %s. Escribe una biografía para la página web de la banda, en español, con un tono %s. Datos clave que debes incluir:\n%s\nResponde únicamente con el texto de la biografía, sin títulos ni comentarios adicionales.",
		bandName, tone, keyPoints,
	)
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	return s.generateText(ctx, contents)
}

// GenerateSocialPost sinh bài đăng mạng xã hội cho một chủ đề.
// Nếu flyerDataUri không trống thì ảnh flyer được gửi kèm prompt để model mô tả sự kiện.
func (s *AssistantService) GenerateSocialPost(ctx context.Context, topic, platform, flyerDataUri string) (string, error) {
	prompt := fmt.Sprintf(
		"Escribe una publicación para %s promocionando lo siguiente: %s. La publicación es para la banda Jokers LB, debe estar en español, ser breve, entusiasta e incluir emojis y hashtags relevantes. Responde únicamente con el texto de la publicación.",
		platform, topic,
	)

	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	if flyerDataUri != "" {
		mimeType, data, err := decodeDataURI(flyerDataUri)
		if err != nil {
			return "", err
		}
		parts = append(parts, genai.NewPartFromBytes(data, mimeType))
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}
	return s.generateText(ctx, contents)
}

// SuggestHashtags gợi ý hashtag cho một chủ đề
func (s *AssistantService) SuggestHashtags(ctx context.Context, topic string) ([]string, error) {
	prompt := fmt.Sprintf(
		"Sugiere 10 hashtags en español para una publicación de la banda Jokers LB sobre: %s. Responde únicamente con los hashtags separados por espacios, cada uno comenzando con #.",
		topic,
	)
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	text, err := s.generateText(ctx, contents)
	if err != nil {
		return nil, err
	}
	return ParseHashtags(text), nil
}

// GenerateLogo sinh logo tỷ lệ 1:1 và trả về dưới dạng data URI
func (s *AssistantService) GenerateLogo(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", common.ErrAIUnavailable
	}

	resp, err := s.client.Models.GenerateImages(ctx, s.imageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    "1:1",
	})
	if err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"model": s.imageModel,
			"error": err.Error(),
		}).Error("GenAI generate images failed")
		return "", common.ErrAIUnavailable
	}

	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil || len(resp.GeneratedImages[0].Image.ImageBytes) == 0 {
		logger.GetErrorLogger().WithField("model", s.imageModel).Error("GenAI returned no images")
		return "", common.ErrAIUnavailable
	}

	image := resp.GeneratedImages[0].Image
	mimeType := image.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image.ImageBytes)), nil
}

// ParseHashtags tách các hashtag (#...) từ text trả về của model
func ParseHashtags(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\n' || r == '\t' || r == ','
	})

	hashtags := make([]string, 0, len(fields))
	seen := make(map[string]bool)
	for _, field := range fields {
		tag := strings.TrimSpace(field)
		if !strings.HasPrefix(tag, "#") || len(tag) < 2 {
			continue
		}
		if seen[tag] {
			continue
		}
		seen[tag] = true
		hashtags = append(hashtags, tag)
	}
	return hashtags
}

// decodeDataURI tách mime type và dữ liệu từ một data URI dạng data:<mime>;base64,<data>
func decodeDataURI(uri string) (string, []byte, error) {
	const prefix = "data:"
	if !strings.HasPrefix(uri, prefix) {
		return "", nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, nil)
	}

	rest := uri[len(prefix):]
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, nil)
	}

	mimeType := rest[:sep]
	data, err := base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil {
		return "", nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, nil)
	}
	return mimeType, data, nil
}
