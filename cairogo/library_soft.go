//go:build !cairo

package cairo

import (
	"github.com/cairomm/cairomm/cairogo/native"
	"github.com/cairomm/cairomm/cairogo/native/softcairo"
)

var builtinLibrary native.Library = softcairo.New()
