// Package i18n holds the user-facing string table. The tool ships a
// single English locale; keys keep rendering code free of literals and
// leave room for more tables later.
package i18n

import "fmt"

// T returns the string for the given key.
// If the key is not found, the key itself is returned.
func T(key string) string {
	if v, ok := en[key]; ok {
		return v
	}
	return key
}

// Tf returns a formatted string for the given key.
func Tf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}
