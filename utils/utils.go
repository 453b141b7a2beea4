package utils

import (
	"net/http"
	"strings"
)

// DetectContentType sniffs the MIME type of the data.
// Only the first 512 bytes are used to sniff the content type.
func DetectContentType(data []byte) string {
	if len(data) > 512 {
		data = data[:512]
	}
	// Always returns a valid content-type and "application/octet-stream" if no others seemed to match.
	return http.DetectContentType(data)
}

// IsFontData reports whether data looks like a scalable font file.
// Some TrueType files are not recognized by the sniffer and come out as octet-stream.
func IsFontData(data []byte) bool {
	ctype := DetectContentType(data)
	return strings.HasPrefix(ctype, "font/") || ctype == "application/octet-stream"
}

// Contains returns true if a value is available in the collection.
func Contains[T comparable](slice []T, value T) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}
	return false
}
