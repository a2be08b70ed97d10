package scratchfx

import (
	"strings"
	"testing"
	"time"
)

func TestLoadBurstConfigEmptyKeepsDefaults(t *testing.T) {
	cfg, err := LoadBurstConfig([]byte(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := DefaultBurstConfig()
	if cfg.PartsCount != def.PartsCount || cfg.StreamsCount != def.StreamsCount {
		t.Errorf("counts = (%d, %d), want defaults (%d, %d)",
			cfg.PartsCount, cfg.StreamsCount, def.PartsCount, def.StreamsCount)
	}
	if cfg.Lifetime != def.Lifetime {
		t.Errorf("lifetime = %+v, want default %+v", cfg.Lifetime, def.Lifetime)
	}
}

func TestLoadBurstConfigOverrides(t *testing.T) {
	data := []byte(`
parts: 80
streams: 6
parts_delay: 2.5
lifetime: {min: 600, max: 1400}
spread: {x: 12, y: 5}
fade: 0
palette: ["#e6c85a", "#fff"]
`)
	cfg, err := LoadBurstConfig(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PartsCount != 80 || cfg.StreamsCount != 6 {
		t.Errorf("counts = (%d, %d), want (80, 6)", cfg.PartsCount, cfg.StreamsCount)
	}
	assertNear(t, "parts_delay", cfg.PartsDelay, 2.5)
	assertNear(t, "lifetime min", cfg.Lifetime.Min, 600)
	assertNear(t, "spread x", cfg.Spread.X, 12)
	assertNear(t, "fade", cfg.FadeSeconds, 0)
	if len(cfg.Palette) != 2 {
		t.Fatalf("palette len = %d, want 2", len(cfg.Palette))
	}
	assertNear(t, "palette[0].R", cfg.Palette[0].R, 230.0/255)
	assertNear(t, "palette[1].R", cfg.Palette[1].R, 1)
	// Unset keys keep their defaults.
	assertNear(t, "tick_delay default", cfg.TickDelay, DefaultBurstConfig().TickDelay)
}

func TestLoadBurstConfigInvalidYAML(t *testing.T) {
	if _, err := LoadBurstConfig([]byte("parts: [not a number")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadBurstConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"zero streams", "streams: 0"},
		{"negative parts", "parts: -1"},
		{"inverted range", "lifetime: {min: 10, max: 5}"},
		{"zero distance", "distance_per_tick: {min: 0, max: 0}"},
		{"bad palette", `palette: ["notacolor"]`},
	}
	for _, c := range cases {
		if _, err := LoadBurstConfig([]byte(c.yaml)); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestLoadCardConfig(t *testing.T) {
	data := []byte(`
brush_radius: 24
complete_threshold: 70
recompute_ms: 100
`)
	cfg, err := LoadCardConfig(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertNear(t, "brush_radius", cfg.BrushRadius, 24)
	assertNear(t, "complete_threshold", cfg.CompleteThreshold, 70)
	if cfg.RecomputeEvery != 100*time.Millisecond {
		t.Errorf("recompute = %v, want 100ms", cfg.RecomputeEvery)
	}
	// Unset keys keep defaults.
	if cfg.SampleStride != DefaultCardConfig().SampleStride {
		t.Errorf("stride = %d, want default %d", cfg.SampleStride, DefaultCardConfig().SampleStride)
	}
}

func TestLoadCardConfigValidation(t *testing.T) {
	cases := []string{
		"brush_radius: 0",
		"complete_threshold: 101",
		"sample_stride: 0",
	}
	for _, yaml := range cases {
		if _, err := LoadCardConfig([]byte(yaml)); err == nil {
			t.Errorf("%q: expected error", yaml)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ff8000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertNear(t, "R", c.R, 1)
	assertNear(t, "G", c.G, 128.0/255)
	assertNear(t, "B", c.B, 0)
	assertNear(t, "A", c.A, 1)

	c, err = ParseHexColor("#ff800080")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertNear(t, "A with alpha", c.A, 128.0/255)

	c, err = ParseHexColor("#f80")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertNear(t, "short R", c.R, 1)
	assertNear(t, "short G", c.G, 136.0/255)
}

func TestParseHexColorErrors(t *testing.T) {
	for _, s := range []string{"", "ff8000", "#ff80", "#zzzzzz"} {
		if _, err := ParseHexColor(s); err == nil {
			t.Errorf("ParseHexColor(%q): expected error", s)
		}
		if _, err := ParseHexColor(s); err != nil && !strings.Contains(err.Error(), "scratchfx:") {
			t.Errorf("ParseHexColor(%q): error %q missing package prefix", s, err)
		}
	}
}
