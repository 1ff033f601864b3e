package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFrame(t *testing.T) {
	f, err := NewFrame(
		Column{Name: "a", Values: []interface{}{1, 2}},
		Column{Name: "b", Values: []interface{}{"x", nil}},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Height())
	assert.Equal(t, 2, f.Width())
	assert.Equal(t, []string{"a", "b"}, f.Names())
	assert.Equal(t, [][]interface{}{{1, "x"}, {2, nil}}, f.Records())

	_, err = NewFrame(Column{Name: "a"}, Column{Name: "a"})
	assert.ErrorIs(t, err, ErrDuplicateOutput)

	_, err = NewFrame(
		Column{Name: "a", Values: []interface{}{1}},
		Column{Name: "b", Values: []interface{}{1, 2}},
	)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestFrameCopiesValues(t *testing.T) {
	values := []interface{}{1, 2}
	f, err := NewFrame(Column{Name: "a", Values: values})
	require.NoError(t, err)

	values[0] = 100
	c, ok := f.Column("a")
	require.True(t, ok)
	assert.Equal(t, []interface{}{1, 2}, c.Values)

	c.Values[1] = 200
	again, _ := f.Column("a")
	assert.Equal(t, []interface{}{1, 2}, again.Values)

	_, ok = f.Column("missing")
	assert.False(t, ok)
}

func TestFrameFromRows(t *testing.T) {
	rows := []map[string]interface{}{
		{"temp": 35, "device": "a"},
		{"temp": 21, "humidity": 40},
	}

	t.Run("显式列顺序", func(t *testing.T) {
		f, err := FrameFromRows([]string{"temp", "device"}, rows)
		require.NoError(t, err)
		assert.Equal(t, []string{"temp", "device"}, f.Names())
		assert.Equal(t, [][]interface{}{{35, "a"}, {21, nil}}, f.Records())
	})

	t.Run("自动收集列名", func(t *testing.T) {
		f, err := FrameFromRows(nil, rows)
		require.NoError(t, err)
		assert.Equal(t, []string{"device", "temp", "humidity"}, f.Names())
		assert.Equal(t, map[string]interface{}{"device": nil, "temp": 21, "humidity": 40}, f.Rows()[1])
	})

	t.Run("空输入", func(t *testing.T) {
		f, err := FrameFromRows(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, f.Height())
		assert.Equal(t, 0, f.Width())
	})
}
