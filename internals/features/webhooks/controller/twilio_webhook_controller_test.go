package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOptOutMessage(t *testing.T) {
	assert.True(t, IsOptOutMessage("STOP"))
	assert.True(t, IsOptOutMessage("stop"))
	assert.True(t, IsOptOutMessage("  Stop  "))
	assert.True(t, IsOptOutMessage("UNSUBSCRIBE"))
	assert.True(t, IsOptOutMessage("إيقاف"))
	assert.True(t, IsOptOutMessage("ايقاف"))
	assert.True(t, IsOptOutMessage("إلغاء"))

	assert.False(t, IsOptOutMessage(""))
	assert.False(t, IsOptOutMessage("الخدمة ممتازة"))
	assert.False(t, IsOptOutMessage("please stop sending bad products"))
	assert.False(t, IsOptOutMessage("stopwatch"))
}
