package fonts

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Debug, Loading} {
		if !Loaded(name) {
			t.Errorf("font %s not loaded", name)
		}
		if name.Get() == nil {
			t.Errorf("font %s has no face", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Error("expected an error for invalid font data")
	}
	if Loaded("broken") {
		t.Error("invalid font must not be registered")
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unknown font")
		}
	}()
	FontName("missing").Get()
}
