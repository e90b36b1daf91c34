package path

import (
	"testing"

	"github.com/inkwell/vgfx"
)

func TestVacantAndEmpty(t *testing.T) {
	p := New()
	if !p.Vacant() || !p.Empty() {
		t.Fatal("new path should be vacant and empty")
	}
	p.MoveTo(vgfx.Pt(1, 1))
	if p.Vacant() {
		t.Error("path with one point should not be vacant")
	}
	if !p.Empty() {
		t.Error("path with one point should still be empty (no segment yet)")
	}
	p.LineTo(vgfx.Pt(2, 2), false)
	if p.Empty() {
		t.Error("path with two points should not be empty")
	}
}

func TestTriangleAreaAndWinding(t *testing.T) {
	p := New()
	p.MoveTo(vgfx.Pt(0, 0))
	p.LineTo(vgfx.Pt(100, 0), false)
	p.LineTo(vgfx.Pt(50, 100), false)
	p.Close()

	if w := p.Winding(vgfx.Pt(50, 30)); w == 0 {
		t.Errorf("expected non-zero winding inside triangle, got %d", w)
	}
	if w := p.Winding(vgfx.Pt(-10, -10)); w != 0 {
		t.Errorf("expected zero winding outside triangle, got %d", w)
	}
	if !p.ContainsFill(vgfx.Pt(50, 30), vgfx.FillRuleNonZero) {
		t.Error("expected point inside triangle to be contained")
	}
}

func TestBoundingRect(t *testing.T) {
	p := New()
	p.MoveTo(vgfx.Pt(0, 0))
	p.LineTo(vgfx.Pt(10, 0), false)
	p.LineTo(vgfx.Pt(10, 10), false)
	p.Close()

	r := p.BoundingRect(nil)
	if r.Min.X != 0 || r.Min.Y != 0 || r.Max.X != 10 || r.Max.Y != 10 {
		t.Errorf("BoundingRect = %+v, want (0,0)-(10,10)", r)
	}
}

func TestSegmentsSkipLeadingMove(t *testing.T) {
	p := New()
	p.MoveTo(vgfx.Pt(0, 0))
	p.LineTo(vgfx.Pt(5, 0), false)
	segs := p.Segments()
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].Verb != Line || segs[0].Start != vgfx.Pt(0, 0) || segs[0].End != vgfx.Pt(5, 0) {
		t.Errorf("unexpected segment: %+v", segs[0])
	}
}

func TestSplitLine(t *testing.T) {
	p := New()
	p.MoveTo(vgfx.Pt(0, 0))
	p.LineTo(vgfx.Pt(10, 0), false)

	idx := p.Split(0, 0.5)
	if idx != 1 {
		t.Fatalf("Split returned index %d, want 1", idx)
	}
	pts := p.Points()
	if len(pts) != 3 {
		t.Fatalf("expected 3 points after split, got %d", len(pts))
	}
	if pts[1] != vgfx.Pt(5, 0) {
		t.Errorf("midpoint = %+v, want (5,0)", pts[1])
	}
}

func TestToCubicAndToLine(t *testing.T) {
	p := New()
	p.MoveTo(vgfx.Pt(0, 0))
	p.LineTo(vgfx.Pt(10, 0), false)

	p.ToCubic(1, -1)
	if p.Verbs()[1] != Cubic {
		t.Fatalf("expected Cubic verb after ToCubic, got %v", p.Verbs()[1])
	}
	if len(p.Points()) != 4 {
		t.Fatalf("expected 4 points after ToCubic, got %d", len(p.Points()))
	}

	p.ToLine(1)
	if p.Verbs()[1] != Line {
		t.Fatalf("expected Line verb after ToLine, got %v", p.Verbs()[1])
	}
	if len(p.Points()) != 2 {
		t.Fatalf("expected 2 points after ToLine, got %d", len(p.Points()))
	}
}

func TestIntersects(t *testing.T) {
	p := New()
	p.MoveTo(vgfx.Pt(0, 0))
	p.LineTo(vgfx.Pt(10, 0), false)
	p.LineTo(vgfx.Pt(10, 10), false)
	p.Close()

	hit, _ := p.Intersects(vgfx.NewRect(vgfx.Pt(5, 5), vgfx.Pt(20, 20)), nil, false)
	if !hit {
		t.Error("expected intersection with overlapping rect")
	}

	miss, _ := p.Intersects(vgfx.NewRect(vgfx.Pt(100, 100), vgfx.Pt(200, 200)), nil, false)
	if miss {
		t.Error("expected no intersection with distant rect")
	}
}

func TestCloseWithHandles(t *testing.T) {
	p := New()
	p.MoveTo(vgfx.Pt(0, 0))
	p.LineTo(vgfx.Pt(10, 0), false)
	p.SetHandles(1, -1, 0) // point 1's out handle references point 0
	p.Close()
	if !p.Closed() {
		t.Fatal("expected path to be closed")
	}
	verbs := p.Verbs()
	if verbs[len(verbs)-1] != Cubic {
		t.Errorf("expected a closing cubic when a handle is set, got %v", verbs[len(verbs)-1])
	}
}
