package cairo

import (
	"errors"
	"testing"
)

func TestImageSurfaceNew(t *testing.T) {
	useSoftLibrary(t)
	s := ImageSurfaceNew(FormatARGB32, 7, 5)
	defer s.Destroy()

	if err := s.Status(); err != nil {
		t.Fatal(err)
	}
	checkInt := func(name string, get func() (int, error), want int) {
		t.Helper()
		got, err := get()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got != want {
			t.Errorf("%s = %d, want %d", name, got, want)
		}
	}
	checkInt("width", s.GetWidth, 7)
	checkInt("height", s.GetHeight, 5)
	checkInt("stride", s.GetStride, FormatStrideForWidth(FormatARGB32, 7))

	if f, err := s.GetFormat(); err != nil || f != FormatARGB32 {
		t.Errorf("GetFormat() = %v, %v", f, err)
	}
	if c, err := s.GetContent(); err != nil || c != ContentColorAlpha {
		t.Errorf("GetContent() = %v, %v", c, err)
	}
	if typ := s.GetType(); typ != SurfaceTypeImage {
		t.Errorf("GetType() = %v", typ)
	}
}

func TestImageSurfaceNewInvalid(t *testing.T) {
	useSoftLibrary(t)
	s := ImageSurfaceNew(FormatInvalid, 1, 1)
	defer s.Destroy()
	err := s.Status()
	if !errors.Is(err, StatusInvalidFormat) {
		t.Fatalf("status = %v, want %v", err, StatusInvalidFormat)
	}
	if _, err := s.GetWidth(); !errors.Is(err, StatusInvalidFormat) {
		t.Errorf("GetWidth error = %v", err)
	}
}

func TestSurfaceReferenceCount(t *testing.T) {
	useSoftLibrary(t)
	s := ImageSurfaceNew(FormatA8, 2, 2)
	defer s.Destroy()
	if got := s.GetReferenceCount(); got != 1 {
		t.Fatalf("reference count = %d, want 1", got)
	}

	r := s.Reference()
	if r.Handle() != s.Handle() {
		t.Error("reference holds another surface")
	}
	if got := s.GetReferenceCount(); got != 2 {
		t.Errorf("reference count = %d, want 2", got)
	}

	var a Surface
	a.Assign(r)
	if got := s.GetReferenceCount(); got != 3 {
		t.Errorf("reference count after assign = %d, want 3", got)
	}
	a.Assign(&a)
	a.Assign(s)
	if got := s.GetReferenceCount(); got != 3 {
		t.Errorf("reference count after assigning the same surface = %d, want 3", got)
	}

	a.Destroy()
	r.Destroy()
	r.Destroy()
	if got := s.GetReferenceCount(); got != 1 {
		t.Errorf("reference count after destroy = %d, want 1", got)
	}
}

func TestSurfaceAssignReleasesPrevious(t *testing.T) {
	l := useSoftLibrary(t)
	a := ImageSurfaceNew(FormatA8, 1, 1)
	b := ImageSurfaceNew(FormatA8, 1, 1)
	defer b.Destroy()

	a.Assign(b)
	if a.Handle() != b.Handle() {
		t.Error("assign did not share the surface")
	}
	if got := l.Stats().Surfaces; got != 1 {
		t.Errorf("%d surfaces alive, want 1", got)
	}
	a.Destroy()
}

func TestSurfaceWrap(t *testing.T) {
	l := useSoftLibrary(t)
	h := l.ImageSurfaceCreate(FormatA8, 1, 1)

	borrowed := SurfaceWrap(h, false)
	if got := l.SurfaceGetReferenceCount(h); got != 2 {
		t.Errorf("reference count = %d, want 2", got)
	}
	borrowed.Destroy()

	adopted := SurfaceWrap(h, true)
	if got := l.SurfaceGetReferenceCount(h); got != 1 {
		t.Errorf("reference count = %d, want 1", got)
	}
	adopted.Destroy()
	if got := l.Stats().Surfaces; got != 0 {
		t.Errorf("%d surfaces alive", got)
	}
}

func TestSurfaceFinish(t *testing.T) {
	useSoftLibrary(t)
	s := ImageSurfaceNew(FormatRGB24, 4, 4)
	defer s.Destroy()

	if err := s.Finish(); err != nil {
		t.Fatal(err)
	}
	if err := s.Finish(); err != nil {
		t.Errorf("second finish: %v", err)
	}
	if data, err := s.GetData(); err != nil || data != nil {
		t.Errorf("GetData() after finish = %d bytes, %v", len(data), err)
	}
	if got := s.GetReferenceCount(); got != 1 {
		t.Errorf("finish dropped the reference: count %d", got)
	}

	tests := []struct {
		name string
		call func() error
	}{
		{"Flush", s.Flush},
		{"MarkDirty", s.MarkDirty},
		{"MarkDirtyRectangle", func() error { return s.MarkDirtyRectangle(Rectangle{0, 0, 1, 1}) }},
		{"SetDeviceOffset", func() error { return s.SetDeviceOffset(1, 2) }},
	}
	for _, tt := range tests {
		err := tt.call()
		if !errors.Is(err, StatusSurfaceFinished) {
			t.Errorf("%s error = %v, want %v", tt.name, err, StatusSurfaceFinished)
		}
		var e *Error
		if !errors.As(err, &e) || e.Status != StatusSurfaceFinished {
			t.Errorf("%s error is not an *Error with the status", tt.name)
		}
	}
}

func TestImageSurfaceNewForData(t *testing.T) {
	useSoftLibrary(t)
	const width, height = 9, 3
	stride := FormatStrideForWidth(FormatA8, width)
	buf := make([]byte, stride*height)

	s := ImageSurfaceNewForData(buf, FormatA8, width, height, stride)
	defer s.Destroy()
	if err := s.Status(); err != nil {
		t.Fatal(err)
	}
	if w, _ := s.GetWidth(); w != width {
		t.Errorf("width = %d, want %d", w, width)
	}
	if h, _ := s.GetHeight(); h != height {
		t.Errorf("height = %d, want %d", h, height)
	}
	if st, _ := s.GetStride(); st != stride {
		t.Errorf("stride = %d, want %d", st, stride)
	}

	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	buf[stride+1] = 0x80
	if err := s.MarkDirtyRectangle(Rectangle{X: 1, Y: 1, Width: 1, Height: 1}); err != nil {
		t.Fatal(err)
	}
	data, err := s.GetData()
	if err != nil {
		t.Fatal(err)
	}
	if data[stride+1] != 0x80 {
		t.Error("surface data does not alias the caller's buffer")
	}
}

func TestImageSurfaceNewForDataInvalidStride(t *testing.T) {
	useSoftLibrary(t)
	tests := []struct {
		name   string
		size   int
		stride int
	}{
		{"misaligned", 64, 13},
		{"too small", 64, 4},
		{"short buffer", 10, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ImageSurfaceNewForData(make([]byte, tt.size), FormatA8, 9, 2, tt.stride)
			defer s.Destroy()
			if err := s.Status(); !errors.Is(err, StatusInvalidStride) {
				t.Errorf("status = %v, want %v", err, StatusInvalidStride)
			}
		})
	}
}

func TestSurfaceNewSimilar(t *testing.T) {
	useSoftLibrary(t)
	other := ImageSurfaceNew(FormatARGB32, 10, 10)
	defer other.Destroy()

	s := SurfaceNewSimilar(other, ContentAlpha, 3, 2)
	defer s.Destroy()
	if err := s.Status(); err != nil {
		t.Fatal(err)
	}
	if c, _ := s.GetContent(); c != ContentAlpha {
		t.Errorf("content = %v, want %v", c, ContentAlpha)
	}
	if w, _ := s.GetWidth(); w != 3 {
		t.Errorf("width = %d, want 3", w)
	}

	// The similar surface follows other's library, not the default.
	useSoftLibrary(t)
	s2 := SurfaceNewSimilar(other, ContentColor, 1, 1)
	defer s2.Destroy()
	if err := s2.Status(); err != nil {
		t.Errorf("similar surface in another library: %v", err)
	}
}

func TestSurfaceDeviceOffset(t *testing.T) {
	useSoftLibrary(t)
	s := ImageSurfaceNew(FormatARGB32, 1, 1)
	defer s.Destroy()
	if err := s.SetDeviceOffset(-4, 8.5); err != nil {
		t.Fatal(err)
	}
	x, y, err := s.GetDeviceOffset()
	if err != nil {
		t.Fatal(err)
	}
	if x != -4 || y != 8.5 {
		t.Errorf("device offset = (%v, %v), want (-4, 8.5)", x, y)
	}
}

func TestSurfaceGetFontOptions(t *testing.T) {
	l := useSoftLibrary(t)
	s := ImageSurfaceNew(FormatARGB32, 1, 1)
	defer s.Destroy()

	o := FontOptionsNew()
	defer o.Destroy()
	if err := s.GetFontOptions(o); err != nil {
		t.Fatal(err)
	}
	if hm, _ := o.GetHintMetrics(); hm != HintMetricsOn {
		t.Errorf("hint metrics = %v, want %v", hm, HintMetricsOn)
	}

	before := l.Stats()
	for i := 0; i < 10; i++ {
		if err := s.GetFontOptions(o); err != nil {
			t.Fatal(err)
		}
	}
	if after := l.Stats(); after != before {
		t.Errorf("GetFontOptions leaks native objects: %+v, then %+v", before, after)
	}

	if err := s.GetFontOptions(nil); !errors.Is(err, StatusNullPointer) {
		t.Errorf("GetFontOptions(nil) error = %v", err)
	}
}

func TestSurfaceGetFontOptionsIntoZero(t *testing.T) {
	l := useSoftLibrary(t)
	s := ImageSurfaceNew(FormatARGB32, 1, 1)
	defer s.Destroy()

	var o FontOptions
	if err := s.GetFontOptions(&o); err != nil {
		t.Fatal(err)
	}
	if err := o.Status(); err != nil {
		t.Fatal(err)
	}
	o.Destroy()
	if got := l.Stats().FontOptions; got != 0 {
		t.Errorf("%d font options alive", got)
	}
}

func TestSurfaceUserData(t *testing.T) {
	useSoftLibrary(t)
	s := ImageSurfaceNew(FormatA8, 1, 1)
	var key UserDataKey
	var released []any

	if err := s.SetUserData(&key, "first", func(data any) { released = append(released, data) }); err != nil {
		t.Fatal(err)
	}
	got, err := s.GetUserData(&key)
	if err != nil {
		t.Fatal(err)
	}
	if got != "first" {
		t.Errorf("user data = %v", got)
	}

	// Another reference keeps the data alive.
	r := s.Reference()
	s.Destroy()
	if len(released) != 0 {
		t.Fatalf("user data released with a reference left: %v", released)
	}
	r.Destroy()
	if len(released) != 1 || released[0] != "first" {
		t.Errorf("released = %v, want [first]", released)
	}
}

func TestSurfaceUserDataNoMemory(t *testing.T) {
	l := useSoftLibrary(t)
	s := ImageSurfaceNew(FormatA8, 1, 1)
	defer s.Destroy()
	var key UserDataKey
	l.FailAllocations(1)
	if err := s.SetUserData(&key, 1, nil); !errors.Is(err, StatusNoMemory) {
		t.Errorf("error = %v, want %v", err, StatusNoMemory)
	}
	if err := s.Status(); err != nil {
		t.Errorf("failed SetUserData put surface in error: %v", err)
	}
}

func TestSurfaceNull(t *testing.T) {
	useSoftLibrary(t)
	var s Surface
	if err := s.Flush(); !errors.Is(err, StatusNullPointer) {
		t.Errorf("Flush error = %v", err)
	}
	if got := s.GetReferenceCount(); got != 0 {
		t.Errorf("reference count = %d", got)
	}
	s.Destroy()
}

func TestSurfaceGetFontOptionsInErrorReleasesScratch(t *testing.T) {
	l := useSoftLibrary(t)
	o := FontOptionsNew()
	defer o.Destroy()
	broken := ImageSurfaceNew(FormatInvalid, 1, 1)
	defer broken.Destroy()
	finished := ImageSurfaceNew(FormatA8, 1, 1)
	defer finished.Destroy()
	finished.Finish()
	finished.MarkDirty()

	before := l.Stats()
	tests := []struct {
		name string
		s    *Surface
		want Status
	}{
		{"invalid format", broken, StatusInvalidFormat},
		{"finished", finished, StatusSurfaceFinished},
	}
	for _, tt := range tests {
		if err := tt.s.GetFontOptions(o); !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
		if after := l.Stats(); after != before {
			t.Errorf("%s: GetFontOptions leaks native objects: %+v, then %+v", tt.name, before, after)
		}
	}
}

func TestSurfaceNilArgument(t *testing.T) {
	l := useSoftLibrary(t)
	similar := SurfaceNewSimilar(nil, ContentColor, 1, 1)
	if err := similar.Status(); !errors.Is(err, StatusNullPointer) {
		t.Errorf("SurfaceNewSimilar(nil) status = %v, want %v", err, StatusNullPointer)
	}

	s := ImageSurfaceNew(FormatA8, 1, 1)
	s.Assign(nil)
	if s.Handle() != 0 {
		t.Errorf("Assign(nil) kept handle %d", s.Handle())
	}
	if got := l.Stats().Surfaces; got != 0 {
		t.Errorf("%d surfaces alive after Assign(nil)", got)
	}
}
