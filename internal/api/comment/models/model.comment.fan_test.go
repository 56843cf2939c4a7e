package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveStatus(t *testing.T) {
	assert.Equal(t, CommentStatusPending, FanComment{Status: CommentStatusPending}.EffectiveStatus())
	assert.Equal(t, CommentStatusApproved, FanComment{Status: CommentStatusApproved}.EffectiveStatus())

	// Document cũ không có status được xem là approved
	assert.Equal(t, CommentStatusApproved, FanComment{}.EffectiveStatus())
}
