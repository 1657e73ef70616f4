// Package web serves the EPUB speed-read converter over HTTP.
//
// HTTP API
//
//	GET /
//	    Upload form, plus any flashed messages from the previous request.
//
//	POST /convert
//	    multipart/form-data with the book in field "epub" and an optional
//	    "mode" (syllable | bionic, default syllable). On success the
//	    converted book is returned as an application/epub+zip attachment
//	    named "<name>-speedread.epub". Validation failures flash a message
//	    and redirect to "/".
//
// Behaviour
//
//   - Request bodies are capped (100 MB by default); larger uploads get 413.
//   - Flash messages live in a cookie sealed with XChaCha20-Poly1305 under a
//     key derived from the configured secret.
//   - An access log records method, path, remote, status, bytes, duration and
//     a request id for each request.
package web
