package linalg

import (
	"math"
	"testing"
)

func TestMatrixMultiplication(t *testing.T) {
	a := NewMatrix([4][4]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 8, 7, 6},
		{5, 4, 3, 2},
	})
	b := NewMatrix([4][4]float64{
		{-2, 1, 2, 3},
		{3, 2, 1, -1},
		{4, 3, 6, 5},
		{1, 2, 7, 8},
	})
	want := NewMatrix([4][4]float64{
		{20, 22, 50, 48},
		{44, 54, 114, 108},
		{40, 58, 110, 102},
		{16, 26, 46, 42},
	})
	if got := a.Mul(b); !got.ApproxEqual(want) {
		t.Errorf("unexpected product: %v", got)
	}
}

func TestMatrixTupleMultiplication(t *testing.T) {
	m := NewMatrix([4][4]float64{
		{1, 2, 3, 4},
		{2, 4, 4, 2},
		{8, 6, 4, 1},
		{0, 0, 0, 1},
	})
	got := m.MulTuple(Tuple{1, 2, 3, 1})
	want := Tuple{18, 24, 33, 1}
	if !got.ApproxEqual(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestIdentityAndTranspose(t *testing.T) {
	m := NewMatrix([4][4]float64{
		{0, 9, 3, 0},
		{9, 8, 0, 8},
		{1, 8, 5, 3},
		{0, 0, 5, 8},
	})
	if got := m.Mul(Identity()); !got.ApproxEqual(m) {
		t.Errorf("identity product changed the matrix: %v", got)
	}
	want := NewMatrix([4][4]float64{
		{0, 9, 1, 0},
		{9, 8, 8, 0},
		{3, 0, 8, 5},
		{0, 8, 3, 5},
	})
	if got := m.Transpose(); !got.ApproxEqual(want) {
		t.Errorf("unexpected transpose: %v", got)
	}
}

func TestInverse(t *testing.T) {
	a := NewMatrix([4][4]float64{
		{3, -9, 7, 3},
		{3, -8, 2, -9},
		{-4, 4, 4, 1},
		{-6, 5, -1, 1},
	})
	b := NewMatrix([4][4]float64{
		{8, 2, 2, 2},
		{3, -1, 7, 0},
		{7, 0, 5, 4},
		{6, -2, 0, 5},
	})
	c := a.Mul(b)
	if got := c.Mul(b.Inverse()); !got.ApproxEqual(a) {
		t.Errorf("multiplying by the inverse did not undo the product: %v", got)
	}
}

func TestInversePanicsOnSingular(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for singular matrix")
		}
	}()
	Scaling(1, 0, 1).Inverse()
}

func TestTransforms(t *testing.T) {
	t.Run("translation moves a point", func(t *testing.T) {
		got := Translation(5, -3, 2).MulTuple(NewPoint(-3, 4, 5))
		if !got.ApproxEqual(NewPoint(2, 1, 7)) {
			t.Errorf("unexpected point %v", got)
		}
	})

	t.Run("translation does not affect vectors", func(t *testing.T) {
		v := NewVector(-3, 4, 5)
		if got := Translation(5, -3, 2).MulTuple(v); !got.ApproxEqual(v) {
			t.Errorf("unexpected vector %v", got)
		}
	})

	t.Run("scaling", func(t *testing.T) {
		got := Scaling(2, 3, 4).MulTuple(NewPoint(-4, 6, 8))
		if !got.ApproxEqual(NewPoint(-8, 18, 32)) {
			t.Errorf("unexpected point %v", got)
		}
	})

	t.Run("rotation around x", func(t *testing.T) {
		p := NewPoint(0, 1, 0)
		halfQuarter := RotationX(math.Pi / 4).MulTuple(p)
		if !halfQuarter.ApproxEqual(NewPoint(0, math.Sqrt2/2, math.Sqrt2/2)) {
			t.Errorf("unexpected point %v", halfQuarter)
		}
		fullQuarter := RotationX(math.Pi / 2).MulTuple(p)
		if !fullQuarter.ApproxEqual(NewPoint(0, 0, 1)) {
			t.Errorf("unexpected point %v", fullQuarter)
		}
	})

	t.Run("rotation around y", func(t *testing.T) {
		got := RotationY(math.Pi / 2).MulTuple(NewPoint(0, 0, 1))
		if !got.ApproxEqual(NewPoint(1, 0, 0)) {
			t.Errorf("unexpected point %v", got)
		}
	})

	t.Run("rotation around z", func(t *testing.T) {
		got := RotationZ(math.Pi / 2).MulTuple(NewPoint(0, 1, 0))
		if !got.ApproxEqual(NewPoint(-1, 0, 0)) {
			t.Errorf("unexpected point %v", got)
		}
	})

	t.Run("shearing x in proportion to y", func(t *testing.T) {
		got := Shearing(1, 0, 0, 0, 0, 0).MulTuple(NewPoint(2, 3, 4))
		if !got.ApproxEqual(NewPoint(5, 3, 4)) {
			t.Errorf("unexpected point %v", got)
		}
	})

	t.Run("chained transforms apply in reverse order", func(t *testing.T) {
		p := NewPoint(1, 0, 1)
		chain := Translation(10, 5, 7).Mul(Scaling(5, 5, 5)).Mul(RotationX(math.Pi / 2))
		if got := chain.MulTuple(p); !got.ApproxEqual(NewPoint(15, 0, 7)) {
			t.Errorf("unexpected point %v", got)
		}
	})
}

func TestViewTransform(t *testing.T) {
	t.Run("default orientation is the identity", func(t *testing.T) {
		got := ViewTransform(NewPoint(0, 0, 0), NewPoint(0, 0, -1), NewVector(0, 1, 0))
		if !got.ApproxEqual(Identity()) {
			t.Errorf("unexpected matrix %v", got)
		}
	})

	t.Run("looking in the +z direction mirrors the scene", func(t *testing.T) {
		got := ViewTransform(NewPoint(0, 0, 0), NewPoint(0, 0, 1), NewVector(0, 1, 0))
		if !got.ApproxEqual(Scaling(-1, 1, -1)) {
			t.Errorf("unexpected matrix %v", got)
		}
	})

	t.Run("the view transform moves the world", func(t *testing.T) {
		got := ViewTransform(NewPoint(0, 0, 8), NewPoint(0, 0, 0), NewVector(0, 1, 0))
		if !got.ApproxEqual(Translation(0, 0, -8)) {
			t.Errorf("unexpected matrix %v", got)
		}
	})

	t.Run("an arbitrary view transform", func(t *testing.T) {
		got := ViewTransform(NewPoint(1, 3, 2), NewPoint(4, -2, 8), NewVector(1, 1, 0))
		want := NewMatrix([4][4]float64{
			{-0.50709, 0.50709, 0.67612, -2.36643},
			{0.76772, 0.60609, 0.12122, -2.82843},
			{-0.35857, 0.59761, -0.71714, 0.00000},
			{0.00000, 0.00000, 0.00000, 1.00000},
		})
		if !got.ApproxEqual(want) {
			t.Errorf("unexpected matrix %v", got)
		}
	})
}
