package vgfx

import "testing"

func TestPaintConstructors(t *testing.T) {
	sp := SolidPaint(Red)
	if sp.Kind != PaintSolid || !sp.IsSolid() {
		t.Errorf("SolidPaint: got %+v", sp)
	}

	sw := SwatchPaint(42)
	if sw.Kind != PaintSwatch || sw.ID != 42 || sw.IsSolid() {
		t.Errorf("SwatchPaint: got %+v", sw)
	}

	gr := GradientPaint(7)
	if gr.Kind != PaintGradient || gr.ID != 7 {
		t.Errorf("GradientPaint: got %+v", gr)
	}

	tx := TexturePaint(9)
	if tx.Kind != PaintTexture || tx.ID != 9 {
		t.Errorf("TexturePaint: got %+v", tx)
	}
}

func TestDefaultFill(t *testing.T) {
	f := DefaultFill()
	if f.Rule != FillRuleNonZero {
		t.Errorf("DefaultFill().Rule = %v, want FillRuleNonZero", f.Rule)
	}
	if !f.Paint.IsSolid() || f.Paint.Color != Black {
		t.Errorf("DefaultFill().Paint = %+v, want solid black", f.Paint)
	}
}

func TestOutlineSelection(t *testing.T) {
	o := Outline{Color: Red, DrawVertices: true}
	if o.IsSelected(0) {
		t.Error("empty Outline should have no selected vertices")
	}

	o.SelectedIndex = map[int]struct{}{1: {}, 3: {}}
	if !o.IsSelected(1) || !o.IsSelected(3) {
		t.Error("expected indices 1 and 3 to be selected")
	}
	if o.IsSelected(2) {
		t.Error("index 2 should not be selected")
	}
}
