//go:build js && wasm

package client

import "syscall/js"

// pageHost reads the browser's location.host, e.g. "app.onrender.com" or
// "localhost:5173".
func pageHost() string {
	location := js.Global().Get("location")
	if !location.Truthy() {
		return ""
	}
	return location.Get("host").String()
}
