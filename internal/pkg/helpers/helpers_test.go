package helpers

import (
	"math"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("soon", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("-5m", time.Hour))
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 20)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, int64(45), info.TotalItems)

	info = NewPaginationInfo(45, 10, 20)
	assert.Equal(t, 3, info.CurrentPage)

	info = NewPaginationInfo(0, 0, 0)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, DefaultPageSize, info.PageSize)
}

func TestCalculateSliceIndices(t *testing.T) {
	tests := []struct {
		name               string
		page, size, n      int
		wantStart, wantEnd int
	}{
		{name: "first page", page: 1, size: 2, n: 5, wantStart: 0, wantEnd: 2},
		{name: "last partial page", page: 3, size: 2, n: 5, wantStart: 4, wantEnd: 5},
		{name: "past the end", page: 9, size: 2, n: 5, wantStart: 5, wantEnd: 5},
		{name: "defaults", page: 0, size: 0, n: 3, wantStart: 0, wantEnd: 3},
		{name: "overflowing page", page: 2305843009213693953, size: 5, n: 3, wantStart: 3, wantEnd: 3},
		{name: "max page", page: math.MaxInt, size: 2, n: 5, wantStart: 5, wantEnd: 5},
		{name: "max size", page: 1, size: math.MaxInt, n: 5, wantStart: 0, wantEnd: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := CalculateSliceIndices(tt.page, tt.size, tt.n)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query              string
		wantPage, wantSize int
	}{
		{query: "", wantPage: 1, wantSize: DefaultPageSize},
		{query: "?page=3&size=5", wantPage: 3, wantSize: 5},
		{query: "?page=-1&size=1000", wantPage: 1, wantSize: DefaultPageSize},
		{query: "?page=x&size=y", wantPage: 1, wantSize: DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/students"+tt.query, nil)

			page, size := ParsePaginationParams(c)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}
