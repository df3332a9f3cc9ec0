package level

import (
	"errors"
	"testing"
)

func TestFindObjectsByType(t *testing.T) {
	objects := []Object{
		{ID: 1, Type: "start"},
		{ID: 2, Type: "landmark"},
		{ID: 3, Type: "Start"},
		{ID: 4, Type: ""},
		{ID: 5, Type: "START"},
	}

	tests := []struct {
		name string
		typ  string
		want []int
	}{
		{"exact and case-insensitive", "start", []int{1, 3, 5}},
		{"single match", "landmark", []int{2}},
		{"no match", "gate", nil},
		{"empty type returns all", "", []int{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindObjectsByType(tt.typ, objects)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d objects, want %d", len(got), len(tt.want))
			}
			for i, o := range got {
				if o.ID != tt.want[i] {
					t.Errorf("got[%d].ID = %d, want %d", i, o.ID, tt.want[i])
				}
			}
		})
	}
}

func TestFindObjectsByTypeEmptyInput(t *testing.T) {
	if got := FindObjectsByType("start", nil); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestSpawnSelection(t *testing.T) {
	starts := []Object{
		{ID: 1, X: 40, Y: 40},
		{ID: 2, X: 8, Y: 16},
		{ID: 3, X: 100, Y: 0},
	}

	got, err := SpawnFirst.Select(starts)
	if err != nil || got.ID != 1 {
		t.Errorf("SpawnFirst = (%d, %v), want (1, nil)", got.ID, err)
	}

	got, err = SpawnNearestOrigin.Select(starts)
	if err != nil || got.ID != 2 {
		t.Errorf("SpawnNearestOrigin = (%d, %v), want (2, nil)", got.ID, err)
	}

	if _, err = SpawnErrorOnMultiple.Select(starts); !errors.Is(err, ErrMultipleSpawnPoints) {
		t.Errorf("SpawnErrorOnMultiple err = %v, want ErrMultipleSpawnPoints", err)
	}
	got, err = SpawnErrorOnMultiple.Select(starts[2:])
	if err != nil || got.ID != 3 {
		t.Errorf("SpawnErrorOnMultiple single = (%d, %v), want (3, nil)", got.ID, err)
	}

	for _, s := range []SpawnSelection{SpawnFirst, SpawnNearestOrigin, SpawnErrorOnMultiple} {
		if _, err := s.Select(nil); !errors.Is(err, ErrNoSpawnPoint) {
			t.Errorf("%s.Select(nil) err = %v, want ErrNoSpawnPoint", s, err)
		}
	}
}

func TestParseSpawnSelection(t *testing.T) {
	for _, s := range []SpawnSelection{SpawnFirst, SpawnNearestOrigin, SpawnErrorOnMultiple} {
		got, err := ParseSpawnSelection(s.String())
		if err != nil || got != s {
			t.Errorf("ParseSpawnSelection(%q) = (%v, %v)", s.String(), got, err)
		}
	}
	if _, err := ParseSpawnSelection("random"); err == nil {
		t.Error("expected an error for an unknown policy")
	}
}
