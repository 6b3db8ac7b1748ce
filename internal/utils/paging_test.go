package utils

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestIsValidPage(t *testing.T) {
	assert.False(t, IsValidPage(0, 25, 12))
	assert.True(t, IsValidPage(1, 25, 12))
	assert.True(t, IsValidPage(2, 25, 12))
	assert.True(t, IsValidPage(3, 25, 12))
	assert.False(t, IsValidPage(4, 25, 12))
	assert.False(t, IsValidPage(-1, 25, 12))
	assert.False(t, IsValidPage(1, 0, 12))
}

func TestIsValidProjectRoute(t *testing.T) {
	exists := func(id uint) bool { return id == 7 }

	tests := []struct {
		path string
		want bool
	}{
		{"/projects", true},
		{"/projects/page/1", true},
		{"/projects/page/3", true},
		{"/projects/page/4", false},
		{"/projects/page/0", false},
		{"/projects/7", true},
		{"/projects/8", false},
		{"/projects/abc", false},
		{"/projects/", false},
		{"/career", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidProjectRoute(tt.path, 25, 12, exists))
		})
	}
}

func TestIsValidProjectRouteNilLookup(t *testing.T) {
	assert.False(t, IsValidProjectRoute("/projects/1", 25, 12, nil))
}

func TestPageBoundProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every item falls on a valid page", prop.ForAll(
		func(total, perPage int) bool {
			for item := 0; item < total; item++ {
				if !IsValidPage(item/perPage+1, total, perPage) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 200),
		gen.IntRange(1, 30),
	))

	properties.Property("page after the last is invalid", prop.ForAll(
		func(total, perPage int) bool {
			return !IsValidPage(PageCount(total, perPage)+1, total, perPage)
		},
		gen.IntRange(0, 200),
		gen.IntRange(1, 30),
	))

	properties.Property("paged routes agree with IsValidPage", prop.ForAll(
		func(page, total int) bool {
			path := fmt.Sprintf("/projects/page/%d", page)
			return IsValidProjectRoute(path, total, 12, nil) == IsValidPage(page, total, 12)
		},
		gen.IntRange(0, 20),
		gen.IntRange(0, 200),
	))

	properties.TestingRun(t)
}
