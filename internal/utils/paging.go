package utils

import (
	"regexp"
	"strconv"
)

var (
	projectPageRoute = regexp.MustCompile(`^/projects(?:/page/(\d+))?$`)
	projectItemRoute = regexp.MustCompile(`^/projects/(\d+)$`)
)

// PageCount is ceil(total/perPage).
func PageCount(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// IsValidPage reports whether the 1-based page exists for total items split
// into pages of perPage.
func IsValidPage(page, total, perPage int) bool {
	if page <= 0 {
		return false
	}
	return page <= PageCount(total, perPage)
}

// IsValidProjectRoute reports whether path points at an existing projects
// listing page or project detail page. exists is consulted for detail paths.
func IsValidProjectRoute(path string, total, perPage int, exists func(id uint) bool) bool {
	if m := projectPageRoute.FindStringSubmatch(path); m != nil {
		if m[1] == "" {
			return true
		}
		page, err := strconv.Atoi(m[1])
		if err != nil {
			return false
		}
		return IsValidPage(page, total, perPage)
	}

	if m := projectItemRoute.FindStringSubmatch(path); m != nil {
		id, err := strconv.ParseUint(m[1], 10, 64)
		if err != nil || exists == nil {
			return false
		}
		return exists(uint(id))
	}

	return false
}
