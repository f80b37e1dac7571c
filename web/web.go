// Package web holds the static status page served at /.
package web

import _ "embed"

//go:embed index.html
var Index []byte
