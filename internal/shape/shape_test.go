package shape

import (
	"image/color"
	"math"
	"testing"

	"github.com/example/shineydraw/internal/geom"
)

func nearPt(p, q geom.Point) bool {
	return math.Abs(p.X-q.X) < 1e-9 && math.Abs(p.Y-q.Y) < 1e-9
}

func TestCapabilities(t *testing.T) {
	tests := []struct {
		name                   string
		s                      Shape
		two, three, stroke, fl bool
	}{
		{"line", NewLine(), true, false, true, false},
		{"arrow", NewArrow(), true, false, true, false},
		{"rect", NewRect(), true, false, true, true},
		{"ellipse", NewEllipse(), true, false, true, true},
		{"angle", NewAngle(), false, true, true, false},
		{"pen", NewPen(), false, false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := AsTwoPoint(tt.s); ok != tt.two {
				t.Errorf("AsTwoPoint = %v", ok)
			}
			if _, ok := AsThreePoint(tt.s); ok != tt.three {
				t.Errorf("AsThreePoint = %v", ok)
			}
			if _, ok := AsStrokeStyled(tt.s); ok != tt.stroke {
				t.Errorf("AsStrokeStyled = %v", ok)
			}
			if _, ok := AsFillStyled(tt.s); ok != tt.fl {
				t.Errorf("AsFillStyled = %v", ok)
			}
			if tt.s.Name() != tt.name {
				t.Errorf("Name = %q", tt.s.Name())
			}
		})
	}
}

func TestCapabilityOnNil(t *testing.T) {
	if _, ok := AsTwoPoint(nil); ok {
		t.Fatal("nil shape reported as two-point")
	}
	if _, ok := AnchorPoints(nil); ok {
		t.Fatal("nil shape reported anchor points")
	}
}

func TestSetAnchorPointsRejectsWrongCount(t *testing.T) {
	l := NewLine()
	if SetAnchorPoints(l, []geom.Point{{X: 1}}) {
		t.Fatal("accepted one point for a line")
	}
	a := NewAngle()
	if !SetAnchorPoints(a, []geom.Point{{X: 1}, {X: 2}, {X: 3}}) {
		t.Fatal("rejected three points for an angle")
	}
	if a.C() != geom.Pt(3, 0) {
		t.Fatalf("C = %+v", a.C())
	}
	if SetAnchorPoints(NewPen(), []geom.Point{{}, {}}) {
		t.Fatal("pen accepted anchor points")
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tr := Transform{Translation: geom.Pt(7, -3), Rotation: 0.6, Scale: 2}
	ref := geom.Pt(10, 10)
	p := geom.Pt(13, 4)
	if got := tr.Invert(tr.Apply(p, ref), ref); !nearPt(got, p) {
		t.Fatalf("Invert(Apply(p)) = %+v, want %+v", got, p)
	}
	w := tr.Matrix(ref).TransformPoint(p)
	if want := tr.Apply(p, ref); !nearPt(w, want) {
		t.Fatalf("Matrix disagrees with Apply: %+v vs %+v", w, want)
	}
}

func TestTransformZeroValueIsUnitScale(t *testing.T) {
	var tr Transform
	p := geom.Pt(3, 4)
	if got := tr.Apply(p, geom.Pt(1, 1)); got != p {
		t.Fatalf("zero transform moved point to %+v", got)
	}
	if !tr.IsIdentity() || !Identity.IsIdentity() {
		t.Fatal("expected identity")
	}
}

func TestTranslated(t *testing.T) {
	tr := Transform{Translation: geom.Pt(1, 1), Rotation: 1, Scale: 3}
	got := tr.Translated(geom.Pt(2, -1))
	if got.Translation != geom.Pt(3, 0) || got.Rotation != 1 || got.Scale != 3 {
		t.Fatalf("Translated = %+v", got)
	}
}

func TestHitTestHonoursTransform(t *testing.T) {
	r := NewRect()
	r.SetA(geom.Pt(0, 0))
	r.SetB(geom.Pt(20, 20))
	if !r.HitTest(geom.Pt(10, 10)) {
		t.Fatal("expected hit inside rect")
	}
	r.SetTransform(Identity.Translated(geom.Pt(100, 0)))
	if r.HitTest(geom.Pt(10, 10)) {
		t.Fatal("hit at the untransformed position")
	}
	if !r.HitTest(geom.Pt(110, 10)) {
		t.Fatal("missed at the translated position")
	}
}

func TestLineAndAngleHitTest(t *testing.T) {
	l := NewLine()
	l.SetB(geom.Pt(100, 0))
	if !l.HitTest(geom.Pt(50, 3)) || l.HitTest(geom.Pt(50, 30)) {
		t.Fatal("line hit test mismatch")
	}
	a := NewAngle()
	a.SetA(geom.Pt(0, 0))
	a.SetB(geom.Pt(50, 50))
	a.SetC(geom.Pt(100, 0))
	if !a.HitTest(geom.Pt(75, 25)) || a.HitTest(geom.Pt(50, 0)) {
		t.Fatal("angle hit test mismatch")
	}
	if math.Abs(a.Degrees()-90) > 1e-9 {
		t.Fatalf("Degrees = %v", a.Degrees())
	}
}

func TestEllipseHitTest(t *testing.T) {
	e := NewEllipse()
	e.SetB(geom.Pt(100, 50))
	if !e.HitTest(geom.Pt(50, 25)) {
		t.Fatal("centre missed")
	}
	if e.HitTest(geom.Pt(0, 0)) {
		t.Fatal("bounding-box corner hit")
	}
}

func TestPenPoints(t *testing.T) {
	p := NewPen()
	p.AddPoint(geom.Pt(0, 0))
	p.AddPoint(geom.Pt(0, 0))
	p.AddPoint(geom.Pt(10, 0))
	if got := len(p.Points()); got != 2 {
		t.Fatalf("len(Points) = %d, want 2", got)
	}
	if !p.HitTest(geom.Pt(5, 1)) {
		t.Fatal("pen stroke missed")
	}
}

func TestStyleHelpers(t *testing.T) {
	settings := Settings{StrokeColor: color.RGBA{1, 2, 3, 255}, FillColor: color.RGBA{4, 5, 6, 255}, StrokeWidth: 9}
	r := NewRect()
	ApplySettings(r, settings)
	if r.StrokeColor() != settings.StrokeColor || r.FillColor() != settings.FillColor || r.StrokeWidth() != 9 {
		t.Fatalf("rect style = %+v", StyleOf(r))
	}
	l := NewLine()
	ApplySettings(l, settings)
	if got := StyleOf(l); got.FillColor != (color.RGBA{}) {
		t.Fatalf("line picked up a fill: %+v", got)
	}
	adopted := AdoptStyle(DefaultSettings(), r)
	if adopted != settings {
		t.Fatalf("AdoptStyle = %+v", adopted)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		err  bool
	}{
		{"red", color.RGBA{255, 0, 0, 255}, false},
		{"Navy", color.RGBA{0, 0, 128, 255}, false},
		{"cornflowerblue", color.RGBA{100, 149, 237, 255}, false},
		{"#102030", color.RGBA{0x10, 0x20, 0x30, 255}, false},
		{"#10203040", color.RGBA{0x10, 0x20, 0x30, 0x40}, false},
		{"none", color.RGBA{}, false},
		{"#12", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseColor(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
	if FormatColor(color.RGBA{0x10, 0x20, 0x30, 255}) != "#102030" {
		t.Error("FormatColor opaque mismatch")
	}
}
