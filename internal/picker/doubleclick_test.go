package picker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClickTracker(t *testing.T) {
	t0 := time.Unix(0, 0)
	ms := func(n int) time.Time { return t0.Add(time.Duration(n) * time.Millisecond) }

	t.Run("two quick presses", func(t *testing.T) {
		c := ClickTracker{Window: 400 * time.Millisecond, Slop: 4}
		assert.False(t, c.Press(10, 10, ms(0)))
		assert.True(t, c.Press(12, 9, ms(250)))
	})

	t.Run("too slow", func(t *testing.T) {
		c := ClickTracker{Window: 400 * time.Millisecond, Slop: 4}
		assert.False(t, c.Press(10, 10, ms(0)))
		assert.False(t, c.Press(10, 10, ms(401)))
		// the slow press arms a new pair
		assert.True(t, c.Press(10, 10, ms(600)))
	})

	t.Run("moved too far", func(t *testing.T) {
		c := ClickTracker{Window: 400 * time.Millisecond, Slop: 4}
		assert.False(t, c.Press(10, 10, ms(0)))
		assert.False(t, c.Press(15, 10, ms(100)))
	})

	t.Run("triple press fires once", func(t *testing.T) {
		c := ClickTracker{Window: 400 * time.Millisecond, Slop: 4}
		assert.False(t, c.Press(1, 1, ms(0)))
		assert.True(t, c.Press(1, 1, ms(100)))
		assert.False(t, c.Press(1, 1, ms(200)))
		assert.True(t, c.Press(1, 1, ms(300)))
	})
}
