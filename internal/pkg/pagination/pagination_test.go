package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	params := Normalize(2, 50)
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 50, params.Limit)
	assert.Equal(t, 50, params.Offset)

	// Out-of-range values fall back to defaults and caps
	params = Normalize(0, 0)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, DefaultLimit, params.Limit)
	assert.Equal(t, 0, params.Offset)

	params = Normalize(-5, 9999)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, MaxLimit, params.Limit)
}

func TestGetMeta(t *testing.T) {
	meta := GetMeta(Normalize(2, 10), 25)

	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	first := GetMeta(Normalize(1, 10), 25)
	assert.False(t, first.HasPrev)
	assert.True(t, first.HasNext)

	last := GetMeta(Normalize(3, 10), 25)
	assert.True(t, last.HasPrev)
	assert.False(t, last.HasNext)
}

func TestGetMetaExactPages(t *testing.T) {
	meta := GetMeta(Normalize(1, 10), 30)
	assert.Equal(t, 3, meta.TotalPages)

	empty := GetMeta(Normalize(1, 10), 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
}

func TestNewResponse(t *testing.T) {
	data := []string{"a", "b"}
	resp := NewResponse(data, Normalize(1, 10), 2)

	assert.Equal(t, data, resp.Data)
	assert.Equal(t, int64(2), resp.Meta.Total)
	assert.Equal(t, 1, resp.Meta.TotalPages)
}
