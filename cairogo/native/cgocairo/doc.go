// Package cgocairo implements native.Library on libcairo through cgo.
//
// The implementation is compiled only with the build tag "cairo" and needs
// the cairo development files, located with pkg-config:
//
//	go build -tags cairo ./...
//
// Handles are the C pointers themselves. Go values stored as surface user
// data cross into C as runtime/cgo handles, and the pixel buffers of
// surfaces created over Go memory stay pinned until cairo releases them.
package cgocairo
