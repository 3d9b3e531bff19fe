package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ContaminantColumn != "ethylbenzene_ugl" || c.DistanceColumn != "distance_miles" {
		t.Fatalf("column defaults = %q/%q", c.ContaminantColumn, c.DistanceColumn)
	}
	if c.NonDetectMarker != "<LOD" || c.NonDetectPolicy != "zero" {
		t.Fatalf("non-detect defaults = %q/%q", c.NonDetectMarker, c.NonDetectPolicy)
	}
	if c.ScreeningLevel != 700 {
		t.Fatalf("screening level = %v", c.ScreeningLevel)
	}
	if !strings.HasSuffix(c.DataPath, filepath.Join("processed", "water_samples_2023.csv")) {
		t.Fatalf("data path = %q", c.DataPath)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c.NonDetectPolicy = "half-lod"
	c.LOD = 0.5
	c.ContaminantColumn = "toluene_ugl"
	if err := Save(c, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.NonDetectPolicy != "half-lod" || got.LOD != 0.5 || got.ContaminantColumn != "toluene_ugl" {
		t.Fatalf("reloaded = %+v", got)
	}
	co, err := got.Coercer()
	if err != nil {
		t.Fatalf("Coercer: %v", err)
	}
	if v, _ := co.Coerce("<LOD").Value(); v != 0.25 {
		t.Fatalf("half-lod substitute = %v", v)
	}
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CONTAMSTAT_SCREENING_LEVEL", "5")
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.ScreeningLevel != 5 {
		t.Fatalf("screening level = %v, want 5", c.ScreeningLevel)
	}
}

func TestValidate(t *testing.T) {
	c := &Global{ContaminantColumn: "x", DistanceColumn: "d", NonDetectMarker: "<LOD", NonDetectPolicy: "lod"}
	if err := c.Validate(); err == nil || !strings.Contains(err.Error(), "positive lod") {
		t.Fatalf("expected lod error, got %v", err)
	}
	c = &Global{NonDetectPolicy: "zero"}
	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "contaminant_column") || !strings.Contains(err.Error(), "nondetect_marker") {
		t.Fatalf("expected joined errors, got %v", err)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestLoadMalformedDefaultFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".contamstat")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("data_path: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for malformed config file")
	}
}
