package stringutil

import "strings"

const byteOrderMark = "\ufeff"

// Empty returns true if any of the values are empty.
func Empty(vals ...string) bool {
	for _, val := range vals {
		if val == "" {
			return true
		}
	}

	return false
}

// StripByteOrderMark removes a leading UTF-8 byte order mark, spreadsheet exports tend to add one.
func StripByteOrderMark(val string) string {
	return strings.TrimPrefix(val, byteOrderMark)
}
