package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "*********6319", MaskPhone("+573002596319"))
	assert.Equal(t, "123", MaskPhone("123"))
	assert.Equal(t, "", MaskPhone(""))
}

func TestTodayRange(t *testing.T) {
	start, end := TodayRange()

	now := time.Now()
	assert.True(t, start.Before(now) || start.Equal(now))
	assert.True(t, end.After(now))
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, start.Day(), end.Day())
}
