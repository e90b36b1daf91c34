package vgfx

import (
	"testing"
)

func TestDefaultStroke(t *testing.T) {
	s := DefaultStroke()

	if s.Width != 1.0 {
		t.Errorf("DefaultStroke().Width = %v, want 1.0", s.Width)
	}
	if s.Cap != LineCapButt {
		t.Errorf("DefaultStroke().Cap = %v, want LineCapButt", s.Cap)
	}
	if s.Join != LineJoinMiter {
		t.Errorf("DefaultStroke().Join = %v, want LineJoinMiter", s.Join)
	}
	if s.MiterLimit != 4.0 {
		t.Errorf("DefaultStroke().MiterLimit = %v, want 4.0", s.MiterLimit)
	}
	if !s.Paint.IsSolid() {
		t.Errorf("DefaultStroke().Paint should be solid")
	}
}

func TestStroke_WithWidth(t *testing.T) {
	tests := []struct {
		name  string
		width float64
	}{
		{"thin", 0.5},
		{"normal", 1.0},
		{"thick", 5.0},
		{"zero", 0.0},
		{"negative", -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultStroke().WithWidth(tt.width)
			if s.Width != tt.width {
				t.Errorf("WithWidth(%v).Width = %v", tt.width, s.Width)
			}
		})
	}
}

func TestStroke_WithCap(t *testing.T) {
	tests := []struct {
		name string
		cap  LineCap
	}{
		{"butt", LineCapButt},
		{"round", LineCapRound},
		{"square", LineCapSquare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultStroke().WithCap(tt.cap)
			if s.Cap != tt.cap {
				t.Errorf("WithCap(%v).Cap = %v", tt.cap, s.Cap)
			}
		})
	}
}

func TestStroke_WithJoin(t *testing.T) {
	tests := []struct {
		name string
		join LineJoin
	}{
		{"miter", LineJoinMiter},
		{"round", LineJoinRound},
		{"bevel", LineJoinBevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultStroke().WithJoin(tt.join)
			if s.Join != tt.join {
				t.Errorf("WithJoin(%v).Join = %v", tt.join, s.Join)
			}
		})
	}
}

func TestStroke_WithMiterLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit float64
	}{
		{"one", 1.0},
		{"default", 4.0},
		{"high", 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultStroke().WithMiterLimit(tt.limit)
			if s.MiterLimit != tt.limit {
				t.Errorf("WithMiterLimit(%v).MiterLimit = %v", tt.limit, s.MiterLimit)
			}
		})
	}
}

func TestStroke_WithPaint(t *testing.T) {
	s := DefaultStroke().WithPaint(SolidPaint(Red))
	if s.Paint.Color != Red {
		t.Errorf("WithPaint().Paint.Color = %v, want Red", s.Paint.Color)
	}
}

func TestPresetStrokes(t *testing.T) {
	t.Run("Thin", func(t *testing.T) {
		s := Thin()
		if s.Width != 0.5 {
			t.Errorf("Thin().Width = %v, want 0.5", s.Width)
		}
	})

	t.Run("Thick", func(t *testing.T) {
		s := Thick()
		if s.Width != 3.0 {
			t.Errorf("Thick().Width = %v, want 3.0", s.Width)
		}
	})

	t.Run("Bold", func(t *testing.T) {
		s := Bold()
		if s.Width != 5.0 {
			t.Errorf("Bold().Width = %v, want 5.0", s.Width)
		}
	})

	t.Run("RoundStroke", func(t *testing.T) {
		s := RoundStroke()
		if s.Cap != LineCapRound {
			t.Errorf("RoundStroke().Cap = %v, want LineCapRound", s.Cap)
		}
		if s.Join != LineJoinRound {
			t.Errorf("RoundStroke().Join = %v, want LineJoinRound", s.Join)
		}
	})

	t.Run("SquareStroke", func(t *testing.T) {
		s := SquareStroke()
		if s.Cap != LineCapSquare {
			t.Errorf("SquareStroke().Cap = %v, want LineCapSquare", s.Cap)
		}
	})
}

func TestStroke_ValueSemantics(t *testing.T) {
	// Stroke uses value receivers and returns copies.
	// Verify that modifications to one instance don't affect another.

	t.Run("WithWidth returns copy", func(t *testing.T) {
		s1 := DefaultStroke()
		s2 := s1.WithWidth(10)

		if s1.Width == s2.Width {
			t.Error("WithWidth modified original")
		}
	})

	t.Run("chained calls preserve independence", func(t *testing.T) {
		base := DefaultStroke()
		thin := base.WithWidth(0.5)
		thick := base.WithWidth(5.0)

		if base.Width != 1.0 {
			t.Errorf("base.Width = %v, want 1.0", base.Width)
		}
		if thin.Width != 0.5 {
			t.Errorf("thin.Width = %v, want 0.5", thin.Width)
		}
		if thick.Width != 5.0 {
			t.Errorf("thick.Width = %v, want 5.0", thick.Width)
		}
	})
}

func TestStroke_FluentChaining(t *testing.T) {
	s := DefaultStroke().
		WithWidth(2).
		WithCap(LineCapRound).
		WithJoin(LineJoinRound).
		WithMiterLimit(10)

	if s.Width != 2 {
		t.Errorf("Width = %v, want 2", s.Width)
	}
	if s.Cap != LineCapRound {
		t.Errorf("Cap = %v, want LineCapRound", s.Cap)
	}
	if s.Join != LineJoinRound {
		t.Errorf("Join = %v, want LineJoinRound", s.Join)
	}
	if s.MiterLimit != 10 {
		t.Errorf("MiterLimit = %v, want 10", s.MiterLimit)
	}
}
