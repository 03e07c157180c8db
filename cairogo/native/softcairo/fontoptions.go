package softcairo

import "github.com/cairomm/cairomm/cairogo/native"

type fontOptions struct {
	status native.Status
	static bool

	antialias     native.Antialias
	subpixelOrder native.SubpixelOrder
	hintStyle     native.HintStyle
	hintMetrics   native.HintMetrics
}

// fontOptionsDefault holds every option at its default value.
var fontOptionsDefault = fontOptions{}

func (o *fontOptions) copyFrom(src *fontOptions) {
	o.antialias = src.antialias
	o.subpixelOrder = src.subpixelOrder
	o.hintStyle = src.hintStyle
	o.hintMetrics = src.hintMetrics
}

// lookupFontOptions returns nil for the null handle and for handles that are
// not live in l.
func (l *Library) lookupFontOptions(h native.FontOptionsHandle) *fontOptions {
	if h == 0 {
		return nil
	}
	return l.fontOptions[h]
}

func (l *Library) fontOptionsStatusLocked(h native.FontOptionsHandle) native.Status {
	o := l.lookupFontOptions(h)
	if o == nil {
		return native.StatusNullPointer
	}
	return o.status
}

// mutableFontOptions returns the object behind h if setters may change it.
func (l *Library) mutableFontOptions(h native.FontOptionsHandle) *fontOptions {
	o := l.lookupFontOptions(h)
	if o == nil || o.status != native.StatusSuccess {
		return nil
	}
	return o
}

// readableFontOptions returns the object behind h, or the defaults when h is
// null or in error.
func (l *Library) readableFontOptions(h native.FontOptionsHandle) *fontOptions {
	if o := l.mutableFontOptions(h); o != nil {
		return o
	}
	return &fontOptionsDefault
}

func (l *Library) allocFontOptionsLocked() (native.FontOptionsHandle, *fontOptions) {
	if l.allocFailsLocked() {
		return l.nilFontOptions, nil
	}
	h := native.FontOptionsHandle(l.newHandle())
	o := &fontOptions{}
	l.fontOptions[h] = o
	return h, o
}

// FontOptionsCreate implements native.Library.
func (l *Library) FontOptionsCreate() native.FontOptionsHandle {
	l.mu.Lock()
	defer l.mu.Unlock()

	h, _ := l.allocFontOptionsLocked()
	return h
}

// FontOptionsCopy implements native.Library. Copying an object in error
// yields the static out-of-memory object.
func (l *Library) FontOptionsCopy(original native.FontOptionsHandle) native.FontOptionsHandle {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fontOptionsStatusLocked(original) != native.StatusSuccess {
		return l.nilFontOptions
	}
	h, o := l.allocFontOptionsLocked()
	if o != nil {
		o.copyFrom(l.fontOptions[original])
	}
	return h
}

// FontOptionsDestroy implements native.Library.
func (l *Library) FontOptionsDestroy(options native.FontOptionsHandle) {
	l.mu.Lock()
	defer l.mu.Unlock()

	o := l.lookupFontOptions(options)
	if o == nil || o.static {
		return
	}
	delete(l.fontOptions, options)
}

// FontOptionsStatus implements native.Library.
func (l *Library) FontOptionsStatus(options native.FontOptionsHandle) native.Status {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.fontOptionsStatusLocked(options)
}

// FontOptionsMerge implements native.Library. Options of other that are not
// at their default value replace those of options.
func (l *Library) FontOptionsMerge(options, other native.FontOptionsHandle) {
	l.mu.Lock()
	defer l.mu.Unlock()

	dst := l.mutableFontOptions(options)
	src := l.mutableFontOptions(other)
	if dst == nil || src == nil {
		return
	}
	if src.antialias != native.AntialiasDefault {
		dst.antialias = src.antialias
	}
	if src.subpixelOrder != native.SubpixelOrderDefault {
		dst.subpixelOrder = src.subpixelOrder
	}
	if src.hintStyle != native.HintStyleDefault {
		dst.hintStyle = src.hintStyle
	}
	if src.hintMetrics != native.HintMetricsDefault {
		dst.hintMetrics = src.hintMetrics
	}
}

// FontOptionsEqual implements native.Library. Objects in error are equal to
// nothing, themselves included.
func (l *Library) FontOptionsEqual(options, other native.FontOptionsHandle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	a := l.mutableFontOptions(options)
	b := l.mutableFontOptions(other)
	if a == nil || b == nil {
		return false
	}
	if a == b {
		return true
	}
	return a.antialias == b.antialias &&
		a.subpixelOrder == b.subpixelOrder &&
		a.hintStyle == b.hintStyle &&
		a.hintMetrics == b.hintMetrics
}

// FontOptionsHash implements native.Library using cairo's bit layout. The
// LCD filter and variations cairo mixes in are always at their defaults here.
func (l *Library) FontOptionsHash(options native.FontOptionsHandle) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	o := l.readableFontOptions(options)
	return uint64(o.antialias) |
		uint64(o.subpixelOrder)<<4 |
		uint64(o.hintStyle)<<12 |
		uint64(o.hintMetrics)<<16
}

// FontOptionsSetAntialias implements native.Library.
func (l *Library) FontOptionsSetAntialias(options native.FontOptionsHandle, antialias native.Antialias) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if o := l.mutableFontOptions(options); o != nil {
		o.antialias = antialias
	}
}

// FontOptionsGetAntialias implements native.Library.
func (l *Library) FontOptionsGetAntialias(options native.FontOptionsHandle) native.Antialias {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.readableFontOptions(options).antialias
}

// FontOptionsSetSubpixelOrder implements native.Library.
func (l *Library) FontOptionsSetSubpixelOrder(options native.FontOptionsHandle, order native.SubpixelOrder) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if o := l.mutableFontOptions(options); o != nil {
		o.subpixelOrder = order
	}
}

// FontOptionsGetSubpixelOrder implements native.Library.
func (l *Library) FontOptionsGetSubpixelOrder(options native.FontOptionsHandle) native.SubpixelOrder {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.readableFontOptions(options).subpixelOrder
}

// FontOptionsSetHintStyle implements native.Library.
func (l *Library) FontOptionsSetHintStyle(options native.FontOptionsHandle, style native.HintStyle) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if o := l.mutableFontOptions(options); o != nil {
		o.hintStyle = style
	}
}

// FontOptionsGetHintStyle implements native.Library.
func (l *Library) FontOptionsGetHintStyle(options native.FontOptionsHandle) native.HintStyle {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.readableFontOptions(options).hintStyle
}

// FontOptionsSetHintMetrics implements native.Library.
func (l *Library) FontOptionsSetHintMetrics(options native.FontOptionsHandle, metrics native.HintMetrics) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if o := l.mutableFontOptions(options); o != nil {
		o.hintMetrics = metrics
	}
}

// FontOptionsGetHintMetrics implements native.Library.
func (l *Library) FontOptionsGetHintMetrics(options native.FontOptionsHandle) native.HintMetrics {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.readableFontOptions(options).hintMetrics
}
