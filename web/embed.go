// Package web holds the browser front-end served under /static.
package web

import "embed"

//go:embed static
var Static embed.FS
