package trivia

import "strconv"

// Paginate returns the page-th window of size items. Pages below 1 are treated as 1;
// a window past the end is empty.
func Paginate[T any](page, size int, items []T) []T {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		return []T{}
	}
	// compare page counts first; (page-1)*size overflows for huge pages
	pages := (len(items) + size - 1) / size
	if page-1 >= pages {
		return []T{}
	}
	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// ParsePage reads a raw page query value. explicit reports whether the client
// supplied a non-empty value at all, even one that failed to parse.
func ParsePage(raw string) (page int, explicit bool) {
	if raw == "" {
		return 1, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1, true
	}
	return n, true
}
