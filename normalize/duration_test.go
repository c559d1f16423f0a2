package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	assert.Equal(t, 225, Duration("3:45"))
	assert.Equal(t, 3723, Duration("1:02:03"))
	assert.Equal(t, 260, Duration(" 4:20 "))
	assert.Equal(t, 0, Duration(""))
	assert.Equal(t, 0, Duration("00:00"))
	assert.Equal(t, 0, Duration("garbage"))
	assert.Equal(t, 0, Duration("12:-5"))
	assert.Equal(t, 0, Duration("1:2:3:4"))
	assert.Equal(t, 0, Duration("42"))
}
