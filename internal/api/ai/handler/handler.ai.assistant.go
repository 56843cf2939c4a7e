// Package aihdl xử lý các request trợ lý AI dành cho trang quản trị.
package aihdl

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	aidto "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/ai/dto"
	aisvc "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/ai/service"
	basehdl "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/base/handler"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/common"
)

// AssistantHandler xử lý các route sinh nội dung bằng AI
type AssistantHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	AssistantService *aisvc.AssistantService
}

// NewAssistantHandler tạo mới AssistantHandler
func NewAssistantHandler() (*AssistantHandler, error) {
	assistantService, err := aisvc.NewAssistantService()
	if err != nil {
		return nil, fmt.Errorf("failed to create assistant service: %v", err)
	}
	return &AssistantHandler{
		BaseHandler:      &basehdl.BaseHandler[interface{}, interface{}, interface{}]{},
		AssistantService: assistantService,
	}, nil
}

// respond trả kết quả AI về client. Lỗi từ GenAI luôn trả HTTP 200 với
// success=false và message cố định để trang quản trị không bao giờ vỡ.
// Các lỗi khác (validate, format) đi qua HandleResponse như bình thường.
func (h *AssistantHandler) respond(c fiber.Ctx, payload fiber.Map, err error) {
	if err == nil {
		payload["success"] = true
		_ = basehdl.JSONResponse(c, common.StatusOK, payload)
		return
	}
	if errors.Is(err, common.ErrAIUnavailable) {
		_ = basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
			"success": false,
			"error":   common.ErrAIUnavailable.Error(),
		})
		return
	}
	h.HandleResponse(c, nil, err)
}

// GenerateBiography sinh tiểu sử ban nhạc.
// Body: {bandName, keyPoints, tone}
func (h *AssistantHandler) GenerateBiography(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input aidto.BiographyGenerateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		biography, err := h.AssistantService.GenerateBiography(c.Context(), input.BandName, input.KeyPoints, input.Tone)
		h.respond(c, fiber.Map{"biography": biography}, err)
		return nil
	})
}

// GenerateSocialPost sinh bài đăng mạng xã hội.
// Body: {topic, platform, flyerDataUri?}
func (h *AssistantHandler) GenerateSocialPost(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input aidto.SocialPostGenerateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		post, err := h.AssistantService.GenerateSocialPost(c.Context(), input.Topic, input.Platform, input.FlyerDataUri)
		h.respond(c, fiber.Map{"post": post}, err)
		return nil
	})
}

// SuggestHashtags gợi ý hashtag cho một chủ đề.
// Body: {topic}
func (h *AssistantHandler) SuggestHashtags(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input aidto.HashtagSuggestInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		hashtags, err := h.AssistantService.SuggestHashtags(c.Context(), input.Topic)
		h.respond(c, fiber.Map{"hashtags": hashtags}, err)
		return nil
	})
}

// GenerateLogo sinh logo 1:1 trả về dưới dạng data URI.
// Body: {prompt}
func (h *AssistantHandler) GenerateLogo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input aidto.LogoGenerateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		imageUri, err := h.AssistantService.GenerateLogo(c.Context(), input.Prompt)
		h.respond(c, fiber.Map{"imageUri": imageUri}, err)
		return nil
	})
}
