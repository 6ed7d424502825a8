package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze3d.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettings_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 800
map:
  block_size: 35
render:
  win_distance: 25
  workers: 2
`)
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Window.Width != 800 || s.Window.Height != 640 {
		t.Errorf("window = %dx%d, want 800x640", s.Window.Width, s.Window.Height)
	}
	if s.Map.BlockSize != 35 {
		t.Errorf("block size = %d, want 35", s.Map.BlockSize)
	}
	if s.Render.FOVDegrees != 60 {
		t.Errorf("fov = %v, want default 60", s.Render.FOVDegrees)
	}
}

func TestLoadSettings_EnvOverride(t *testing.T) {
	t.Setenv("MAZE3D_RENDER_FOV_DEGREES", "75")
	path := writeConfig(t, "window:\n  title: env\n")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Render.FOVDegrees != 75 {
		t.Fatalf("fov = %v, want 75 from the environment", s.Render.FOVDegrees)
	}
	if s.Window.Title != "env" {
		t.Fatalf("title = %q", s.Window.Title)
	}
}

func TestLoadSettings_MissingExplicitFile(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing explicit config file accepted")
	}
}

func TestLoadSettings_Invalid(t *testing.T) {
	path := writeConfig(t, "render:\n  fov_degrees: 190\n")
	if _, err := LoadSettings(path); !errors.Is(err, errSettings) {
		t.Fatalf("err = %v, want errSettings", err)
	}
}

func TestSettings_EngineConfigs(t *testing.T) {
	path := writeConfig(t, `
render:
  step_fraction: 0.02
  win_distance: 25
  workers: 3
`)
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}

	pc, err := s.ProjectorConfig()
	if err != nil {
		t.Fatalf("ProjectorConfig: %v", err)
	}
	if pc.WinDistance != 25 || pc.Workers != 3 || pc.NearClamp != 10 {
		t.Errorf("projector config = %+v", pc)
	}
	if pc.Background.A != 0xff {
		t.Errorf("background default lost: %v", pc.Background)
	}

	cc, err := s.CasterConfig()
	if err != nil {
		t.Fatalf("CasterConfig: %v", err)
	}
	if cc.StepFraction != 0.02 || cc.RefineIterations != 8 {
		t.Errorf("caster config = %+v", cc)
	}
	if cc.TrailColor.A != 0xff {
		t.Errorf("trail color default lost: %v", cc.TrailColor)
	}
}

func TestSettings_RefineIterationsZeroDisables(t *testing.T) {
	path := writeConfig(t, `
render:
  refine_iterations: 0
`)
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	cc, err := s.CasterConfig()
	if err != nil {
		t.Fatalf("CasterConfig: %v", err)
	}
	if cc.RefineIterations != 0 {
		t.Fatalf("RefineIterations = %d, want 0", cc.RefineIterations)
	}
	if cc.StepFraction != 0.01 {
		t.Errorf("StepFraction = %v, default lost", cc.StepFraction)
	}
}

func TestLoadSettings_RejectsNegativeRefineIterations(t *testing.T) {
	path := writeConfig(t, `
render:
  refine_iterations: -1
`)
	if _, err := LoadSettings(path); !errors.Is(err, errSettings) {
		t.Fatalf("err = %v, want errSettings", err)
	}
}
