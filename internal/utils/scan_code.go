package utils

import "strings"

// Code 39 barcodes carry their payload between '*' start/stop characters.
// Printed labels repeat that text in human-readable form, e.g. "*ABC123*".
const Code39Delimiter = "*"

// CleanScanCode strips Code 39 delimiters from both ends and trims whitespace
func CleanScanCode(raw string) string {
	code := strings.Trim(strings.TrimSpace(raw), Code39Delimiter)
	return strings.TrimSpace(code)
}

// WrapCode39 adds start/stop delimiters to a payload
func WrapCode39(code string) string {
	return Code39Delimiter + CleanScanCode(code) + Code39Delimiter
}

// IsScanToken reports whether s consists only of uppercase letters and digits
func IsScanToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
