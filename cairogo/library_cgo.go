//go:build cairo

package cairo

import (
	"github.com/cairomm/cairomm/cairogo/native"
	"github.com/cairomm/cairomm/cairogo/native/cgocairo"
)

var builtinLibrary native.Library = cgocairo.New()
