package demo

import (
	"testing"

	"github.com/kitplan/kitplan/pkg/kit"
)

func TestComponents(t *testing.T) {
	parts, err := Components()
	if err != nil {
		t.Fatalf("Components failed: %v", err)
	}
	if len(parts) != 6 {
		t.Fatalf("got %d components, want 6", len(parts))
	}

	names := map[string]bool{}
	for _, c := range parts {
		if names[c.Name()] {
			t.Errorf("duplicate component name %q", c.Name())
		}
		names[c.Name()] = true
	}
	for _, want := range []string{"wall-front", "wall-back", "gable-left", "gable-right", "roof-left", "roof-right"} {
		if !names[want] {
			t.Errorf("missing component %q", want)
		}
	}
}

func TestHouseGenerates(t *testing.T) {
	parts, err := Components()
	if err != nil {
		t.Fatalf("Components failed: %v", err)
	}

	k, err := kit.New(kit.Options{Name: "house", Scale: "1:24", Formats: []string{kit.FormatJSON}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, c := range parts {
		if err := k.Add(c); err != nil {
			t.Fatalf("Add(%q) failed: %v", c.Name(), err)
		}
	}

	result, err := k.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result.Stats.Pieces != 6 {
		t.Errorf("pieces = %d, want 6", result.Stats.Pieces)
	}

	placed := 0
	for _, page := range result.Layout.Pages {
		placed += len(page.Pieces)
	}
	if placed != 6 {
		t.Errorf("placed %d pieces across pages, want 6", placed)
	}
}

func TestSlopeLength(t *testing.T) {
	slope, err := slopeLength()
	if err != nil {
		t.Fatalf("slopeLength failed: %v", err)
	}
	// hypot(1.5, 1.2) for a 3 m wide house rising 1.2 m to the ridge
	want := 1.9209372712298545
	if got := slope.Meters(); got < want-1e-9 || got > want+1e-9 {
		t.Errorf("slope = %v m, want %v m", got, want)
	}
}
