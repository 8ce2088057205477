// Package web holds the embedded browser front-end. The page is fully
// self-contained: the ticking display recomputes the breakdown locally every
// second instead of polling the API.
package web

import (
	_ "embed"
)

//go:embed index.html
var indexPage []byte

// Index returns the embedded HTML page served at the root route.
func Index() []byte {
	return indexPage
}
