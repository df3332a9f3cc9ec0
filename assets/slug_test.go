package assets

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"levels/area/1.json", "levels-area-1"},
		{"map", "map"},
		{"Map.JSON", "map"},
		{"Levels/Cave.tmx", "levels-cave"},
		{`levels\area\2.json`, "levels-area-2"},
		{"a.json/b", "a.json-b"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"levels/area/1.json",
		"LEVELS/Area/boss.tmx",
		"map",
		"a/b/c/d",
		"mixed\\Separators/x.json",
	}

	for _, in := range inputs {
		once := Slugify(in)
		if twice := Slugify(once); twice != once {
			t.Errorf("Slugify not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
