package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestApplyOverrides(t *testing.T) {
	savedC, savedGame, savedPlayer, savedCamera, savedLog, savedDebug := *C, Game, Player, Camera, Log, Debug
	t.Cleanup(func() {
		*C, Game, Player, Camera, Log, Debug = savedC, savedGame, savedPlayer, savedCamera, savedLog, savedDebug
	})

	data := []byte(`
window:
  width: 320
game:
  startMap: levels/area/1
  background: "#102030"
player:
  friction: 0.9
camera:
  deadZoneX: 5
  clampToWorld: false
log:
  level: debug
debug: true
`)
	if err := ApplyOverrides(data); err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}

	if C.Width != 320 {
		t.Errorf("Width = %d, want 320", C.Width)
	}
	if C.Height != savedC.Height {
		t.Errorf("Height changed to %d, want %d", C.Height, savedC.Height)
	}
	if Game.StartMap != "levels/area/1" {
		t.Errorf("StartMap = %q", Game.StartMap)
	}
	if Game.BackgroundColor != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}) {
		t.Errorf("BackgroundColor = %v", Game.BackgroundColor)
	}
	if Player.Friction != 0.9 {
		t.Errorf("Friction = %v, want 0.9", Player.Friction)
	}
	if Player.Speed != savedPlayer.Speed {
		t.Errorf("Speed changed to %v", Player.Speed)
	}
	if Camera.DeadZoneX != 5 || Camera.DeadZoneY != savedCamera.DeadZoneY {
		t.Errorf("dead zone = (%v, %v)", Camera.DeadZoneX, Camera.DeadZoneY)
	}
	if Camera.ClampToWorld {
		t.Error("ClampToWorld should be false")
	}
	if Log.Level != "debug" {
		t.Errorf("Log.Level = %q", Log.Level)
	}
	if !Debug.Enabled {
		t.Error("Debug.Enabled should be true")
	}
}

func TestApplyOverridesRejectsBadColor(t *testing.T) {
	saved := Game
	t.Cleanup(func() { Game = saved })

	if err := ApplyOverrides([]byte("game:\n  background: red\n")); err == nil {
		t.Fatal("expected an error for a non-hex color")
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	if err := LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
		t.Fatalf("missing file should be ignored, got %v", err)
	}
}

func TestLoadOverridesFromDisk(t *testing.T) {
	saved := *C
	t.Cleanup(func() { *C = saved })

	path := filepath.Join(t.TempDir(), "tilewalk.yaml")
	if err := os.WriteFile(path, []byte("window:\n  tps: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadOverrides(path); err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	if C.TPS != 30 {
		t.Errorf("TPS = %d, want 30", C.TPS)
	}
}

func TestStateIDString(t *testing.T) {
	tests := map[StateID]string{
		StateBoot:      "boot",
		StateLoad:      "load",
		StateLoadWorld: "load-world",
		StateWorld:     "world",
		StateNone:      "unknown",
	}
	for id, want := range tests {
		if got := id.String(); got != want {
			t.Errorf("StateID(%d).String() = %q, want %q", id, got, want)
		}
	}
}
