package response

import (
	"net/http"
	"strconv"
)

// ImagePNG sends a PNG image response to the client. Every image is a fresh
// randomization, so clients and proxies must not cache it.
func ImagePNG(w http.ResponseWriter, statusCode int, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	// If the write fails the client went away, nothing to do about it here
	_, _ = w.Write(data)
}
