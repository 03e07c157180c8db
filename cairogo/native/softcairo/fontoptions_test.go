package softcairo

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cairomm/cairomm/cairogo/native"
)

type optionValues struct {
	Antialias     native.Antialias
	SubpixelOrder native.SubpixelOrder
	HintStyle     native.HintStyle
	HintMetrics   native.HintMetrics
}

func readOptions(l *Library, h native.FontOptionsHandle) optionValues {
	return optionValues{
		Antialias:     l.FontOptionsGetAntialias(h),
		SubpixelOrder: l.FontOptionsGetSubpixelOrder(h),
		HintStyle:     l.FontOptionsGetHintStyle(h),
		HintMetrics:   l.FontOptionsGetHintMetrics(h),
	}
}

func writeOptions(l *Library, h native.FontOptionsHandle, v optionValues) {
	l.FontOptionsSetAntialias(h, v.Antialias)
	l.FontOptionsSetSubpixelOrder(h, v.SubpixelOrder)
	l.FontOptionsSetHintStyle(h, v.HintStyle)
	l.FontOptionsSetHintMetrics(h, v.HintMetrics)
}

func TestFontOptionsSetGet(t *testing.T) {
	l := New()
	h := l.FontOptionsCreate()
	if diff := cmp.Diff(optionValues{}, readOptions(l, h)); diff != "" {
		t.Errorf("new options not default (-want +got):\n%s", diff)
	}

	want := optionValues{
		Antialias:     native.AntialiasSubpixel,
		SubpixelOrder: native.SubpixelOrderBGR,
		HintStyle:     native.HintStyleSlight,
		HintMetrics:   native.HintMetricsOff,
	}
	writeOptions(l, h, want)
	if diff := cmp.Diff(want, readOptions(l, h)); diff != "" {
		t.Errorf("after set (-want +got):\n%s", diff)
	}
	if st := l.FontOptionsStatus(h); st != native.StatusSuccess {
		t.Errorf("status = %v", st)
	}
}

func TestFontOptionsCopyIsIndependent(t *testing.T) {
	l := New()
	a := l.FontOptionsCreate()
	l.FontOptionsSetHintStyle(a, native.HintStyleFull)

	b := l.FontOptionsCopy(a)
	if a == b {
		t.Fatal("copy returned the same handle")
	}
	if !l.FontOptionsEqual(a, b) {
		t.Error("copy not equal to original")
	}
	l.FontOptionsSetHintStyle(b, native.HintStyleNone)
	if got := l.FontOptionsGetHintStyle(a); got != native.HintStyleFull {
		t.Errorf("original hint style = %v after changing the copy", got)
	}
	l.FontOptionsDestroy(a)
	if got := l.FontOptionsGetHintStyle(b); got != native.HintStyleNone {
		t.Errorf("copy hint style = %v after destroying the original", got)
	}
}

func TestFontOptionsMerge(t *testing.T) {
	l := New()
	dst := l.FontOptionsCreate()
	writeOptions(l, dst, optionValues{
		Antialias:   native.AntialiasGray,
		HintStyle:   native.HintStyleMedium,
		HintMetrics: native.HintMetricsOn,
	})
	src := l.FontOptionsCreate()
	l.FontOptionsSetHintStyle(src, native.HintStyleNone)
	l.FontOptionsSetSubpixelOrder(src, native.SubpixelOrderVRGB)

	l.FontOptionsMerge(dst, src)
	want := optionValues{
		Antialias:     native.AntialiasGray,
		SubpixelOrder: native.SubpixelOrderVRGB,
		HintStyle:     native.HintStyleNone,
		HintMetrics:   native.HintMetricsOn,
	}
	if diff := cmp.Diff(want, readOptions(l, dst)); diff != "" {
		t.Errorf("after merge (-want +got):\n%s", diff)
	}

	l.FontOptionsMerge(dst, src)
	if diff := cmp.Diff(want, readOptions(l, dst)); diff != "" {
		t.Errorf("second merge changed options (-want +got):\n%s", diff)
	}
}

func TestFontOptionsHash(t *testing.T) {
	l := New()
	h := l.FontOptionsCreate()
	if got := l.FontOptionsHash(h); got != 0 {
		t.Errorf("hash of defaults = %#x, want 0", got)
	}
	writeOptions(l, h, optionValues{
		Antialias:   native.AntialiasGray,
		HintStyle:   native.HintStyleFull,
		HintMetrics: native.HintMetricsOn,
	})
	if got, want := l.FontOptionsHash(h), uint64(2|4<<12|2<<16); got != want {
		t.Errorf("hash = %#x, want %#x", got, want)
	}
}

func TestFontOptionsNull(t *testing.T) {
	l := New()
	if st := l.FontOptionsStatus(0); st != native.StatusNullPointer {
		t.Errorf("status of null = %v", st)
	}
	// None of these may panic.
	l.FontOptionsSetAntialias(0, native.AntialiasBest)
	l.FontOptionsMerge(0, 0)
	l.FontOptionsDestroy(0)
	if got := l.FontOptionsGetAntialias(0); got != native.AntialiasDefault {
		t.Errorf("antialias of null = %v", got)
	}
	if l.FontOptionsEqual(0, 0) {
		t.Error("null equal to itself")
	}
	if got := l.FontOptionsCopy(0); got != l.nilFontOptions {
		t.Errorf("copy of null = %d, want the nil object", got)
	}
}

func TestFontOptionsAllocationFailure(t *testing.T) {
	l := New()
	l.FailAllocations(1)
	h := l.FontOptionsCreate()
	if st := l.FontOptionsStatus(h); st != native.StatusNoMemory {
		t.Fatalf("status = %v, want %v", st, native.StatusNoMemory)
	}

	// The nil object is immutable and survives destroy.
	l.FontOptionsSetHintStyle(h, native.HintStyleFull)
	if got := l.FontOptionsGetHintStyle(h); got != native.HintStyleDefault {
		t.Errorf("hint style = %v, want default", got)
	}
	l.FontOptionsDestroy(h)
	if st := l.FontOptionsStatus(h); st != native.StatusNoMemory {
		t.Errorf("status after destroy = %v", st)
	}
	if l.FontOptionsEqual(h, h) {
		t.Error("object in error equal to itself")
	}

	ok := l.FontOptionsCreate()
	if st := l.FontOptionsStatus(ok); st != native.StatusSuccess {
		t.Errorf("only one allocation should fail, got %v", st)
	}
}

func TestFontOptionsUseAfterDestroy(t *testing.T) {
	l := New()
	h := l.FontOptionsCreate()
	l.FontOptionsDestroy(h)
	if st := l.FontOptionsStatus(h); st != native.StatusNullPointer {
		t.Errorf("status of destroyed handle = %v", st)
	}
	l.FontOptionsDestroy(h)
}
