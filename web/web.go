// Package web holds the static chat page served at the site root.
package web

import _ "embed"

// IndexHTML is the chat page. Replies are inserted as HTML because they carry
// anchors and line breaks.
//
//go:embed index.html
var IndexHTML []byte
