//go:build !js || !wasm

package client

// pageHost has no browser location outside wasm builds; resolution then
// relies on the override or the development branch.
func pageHost() string {
	return ""
}
