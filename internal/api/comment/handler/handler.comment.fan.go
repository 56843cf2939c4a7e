package commenthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/base/handler"
	commentdto "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/comment/dto"
	commentmodels "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/comment/models"
	commentsvc "github.com/jokerslbmusica-svg/jokerswebpage/internal/api/comment/service"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/common"
	"github.com/jokerslbmusica-svg/jokerswebpage/internal/utility"
)

// FanCommentHandler xử lý các request liên quan đến bình luận của fan
type FanCommentHandler struct {
	*basehdl.BaseHandler[commentmodels.FanComment, commentdto.FanCommentSubmitInput, commentdto.FanCommentUpdateInput]
	FanCommentService *commentsvc.FanCommentService
}

// NewFanCommentHandler tạo mới FanCommentHandler
func NewFanCommentHandler() (*FanCommentHandler, error) {
	fanCommentService, err := commentsvc.NewFanCommentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create fan comment service: %v", err)
	}
	hdl := &FanCommentHandler{FanCommentService: fanCommentService}
	hdl.BaseHandler = basehdl.NewBaseHandler[commentmodels.FanComment, commentdto.FanCommentSubmitInput, commentdto.FanCommentUpdateInput](fanCommentService.BaseServiceMongoImpl)
	return hdl, nil
}

// Submit nhận bình luận mới từ fan (public). Status luôn là pending.
func (h *FanCommentHandler) Submit(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input commentdto.FanCommentSubmitInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		comment, err := h.FanCommentService.Submit(c.Context(), input.Name, input.Comment)
		h.HandleResponse(c, comment, err)
		return nil
	})
}

// ListPage trả về một trang bình luận theo cursor.
// Body: {status?, limit?, cursor?}
func (h *FanCommentHandler) ListPage(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input commentdto.FanCommentListPageInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, err := h.FanCommentService.ListPage(c.Context(), input.Status, input.Limit, input.Cursor)
		h.HandleResponse(c, page, err)
		return nil
	})
}

// Approve duyệt một bình luận theo ID. Idempotent.
func (h *FanCommentHandler) Approve(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" || !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("El ID '%s' no tiene un formato de ObjectID válido", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		comment, err := h.FanCommentService.Approve(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, comment, err)
		return nil
	})
}

// parseBulkIDs parse và validate body {ids: [...]} thành danh sách ObjectID
func (h *FanCommentHandler) parseBulkIDs(c fiber.Ctx) ([]primitive.ObjectID, error) {
	var input commentdto.FanCommentBulkInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return nil, err
	}
	if err := h.ValidateInput(&input); err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, len(input.IDs))
	for i, id := range input.IDs {
		if !primitive.IsValidObjectID(id) {
			return nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("El ID '%s' en la posición %d no tiene un formato de ObjectID válido", id, i),
				common.StatusBadRequest,
				nil,
			)
		}
		ids[i] = utility.String2ObjectID(id)
	}
	return ids, nil
}

// BulkApprove duyệt nhiều bình luận trong một thao tác
func (h *FanCommentHandler) BulkApprove(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ids, err := h.parseBulkIDs(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.FanCommentService.BulkApprove(c.Context(), ids)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// BulkDelete xóa nhiều bình luận trong một thao tác
func (h *FanCommentHandler) BulkDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ids, err := h.parseBulkIDs(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.FanCommentService.BulkDelete(c.Context(), ids)
		h.HandleResponse(c, result, err)
		return nil
	})
}
