package pack

import "testing"

func box(w, h float64) Box {
	return Box{Width: w, Height: h, Area: w * h}
}

func TestPackBinExactTiling(t *testing.T) {
	// pieces that exactly tile a 4x5 bin shelf-wise
	boxes := []Box{box(2, 2), box(4, 3), box(2, 2)}

	res := NewShelfPacker().PackBin(4, 5, ByAreaDesc, boxes)

	if len(res.Unpositioned) != 0 {
		t.Fatalf("Unpositioned = %d, want 0", len(res.Unpositioned))
	}
	if len(res.Positioned) != 3 {
		t.Fatalf("Positioned = %d, want 3", len(res.Positioned))
	}

	// largest first on the bottom shelf, the two squares side by side above
	want := []Placed{
		{Box: box(4, 3), X: 0, Y: 0},
		{Box: box(2, 2), X: 0, Y: 3},
		{Box: box(2, 2), X: 2, Y: 3},
	}
	for i, w := range want {
		got := res.Positioned[i]
		if got.X != w.X || got.Y != w.Y || got.Width != w.Width || got.Height != w.Height {
			t.Errorf("Positioned[%d] = %+v, want %+v", i, got, w)
		}
	}
}

func TestPackBinOversizedBox(t *testing.T) {
	res := NewShelfPacker().PackBin(4, 5, ByAreaDesc, []Box{box(6, 7)})
	if len(res.Positioned) != 0 {
		t.Errorf("Positioned = %d, want 0", len(res.Positioned))
	}
	if len(res.Unpositioned) != 1 {
		t.Errorf("Unpositioned = %d, want 1", len(res.Unpositioned))
	}
}

func TestPackBinStableForEqualAreas(t *testing.T) {
	a := Box{Width: 2, Height: 2, Area: 4, Datum: "a"}
	b := Box{Width: 1, Height: 4, Area: 4, Datum: "b"}
	c := Box{Width: 4, Height: 1, Area: 4, Datum: "c"}

	res := NewShelfPacker().PackBin(10, 10, ByAreaDesc, []Box{a, b, c})
	if len(res.Positioned) != 3 {
		t.Fatalf("Positioned = %d, want 3", len(res.Positioned))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := res.Positioned[i].Datum.(string); got != want {
			t.Errorf("Positioned[%d].Datum = %q, want %q (stable sort)", i, got, want)
		}
	}
}

func TestPackBinNilLessKeepsOrder(t *testing.T) {
	small := Box{Width: 1, Height: 1, Area: 1, Datum: "small"}
	big := Box{Width: 3, Height: 3, Area: 9, Datum: "big"}

	res := NewShelfPacker().PackBin(10, 10, nil, []Box{small, big})
	if len(res.Positioned) != 2 {
		t.Fatalf("Positioned = %d, want 2", len(res.Positioned))
	}
	if res.Positioned[0].Datum.(string) != "small" {
		t.Errorf("first placed = %v, want small (input order)", res.Positioned[0].Datum)
	}
}

func TestPackBinOverflowSequence(t *testing.T) {
	// regression fixture: these eight boxes on a 4x5 bin spread across
	// exactly three bins with 3, 3 and 2 placements
	boxes := []Box{
		box(2, 2), box(1, 3), box(4, 1), box(3, 4),
		box(4, 2), box(3, 3), box(4, 1), box(1, 4),
	}

	packer := NewShelfPacker()
	var pageCounts []int
	remaining := boxes
	for len(remaining) > 0 {
		res := packer.PackBin(4, 5, ByAreaDesc, remaining)
		if len(res.Positioned) == 0 {
			t.Fatal("packer made no progress")
		}
		pageCounts = append(pageCounts, len(res.Positioned))
		remaining = res.Unpositioned
	}

	want := []int{3, 3, 2}
	if len(pageCounts) != len(want) {
		t.Fatalf("page count = %v, want %v", pageCounts, want)
	}
	for i := range want {
		if pageCounts[i] != want[i] {
			t.Errorf("page %d holds %d pieces, want %d", i+1, pageCounts[i], want[i])
		}
	}
}

func TestPackBinPlacementsInsideBin(t *testing.T) {
	boxes := []Box{
		box(2, 2), box(1, 3), box(4, 1), box(3, 4),
		box(4, 2), box(3, 3), box(4, 1), box(1, 4),
	}
	res := NewShelfPacker().PackBin(4, 5, ByAreaDesc, boxes)
	for _, p := range res.Positioned {
		if p.X < 0 || p.Y < 0 || p.X+p.Width > 4 || p.Y+p.Height > 5 {
			t.Errorf("placement %+v exceeds the bin", p)
		}
	}
}

func TestPackBinNoOverlap(t *testing.T) {
	boxes := []Box{
		box(2, 2), box(1, 3), box(4, 1), box(3, 4),
		box(4, 2), box(3, 3), box(4, 1), box(1, 4),
	}
	res := NewShelfPacker().PackBin(4, 5, ByAreaDesc, boxes)
	for i := 0; i < len(res.Positioned); i++ {
		for j := i + 1; j < len(res.Positioned); j++ {
			a, b := res.Positioned[i], res.Positioned[j]
			if a.X < b.X+b.Width && b.X < a.X+a.Width &&
				a.Y < b.Y+b.Height && b.Y < a.Y+a.Height {
				t.Errorf("placements %+v and %+v overlap", a, b)
			}
		}
	}
}
