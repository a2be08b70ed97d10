package scratchfx

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Burst and card parameters are loadable from YAML so effect tuning lives in
// data files rather than code. Absent keys keep their defaults; present keys
// override.
//
//	parts: 80
//	streams: 6
//	parts_delay: 3
//	lifetime: {min: 600, max: 1400}
//	spread: {x: 12, y: 5}
//	palette: ["#e6c85a", "#d6b040", "#c29933"]

type burstYAML struct {
	Parts             *int     `yaml:"parts"`
	Streams           *int     `yaml:"streams"`
	PartsDelay        *float64 `yaml:"parts_delay"`
	TickDelay         *float64 `yaml:"tick_delay"`
	DistancePerTick   *Range   `yaml:"distance_per_tick"`
	Lifetime          *Range   `yaml:"lifetime"`
	Radius            *Range   `yaml:"radius"`
	Spread            *Vec2    `yaml:"spread"`
	ParabolicConstant *Range   `yaml:"parabolic_constant"`
	Fade              *float64 `yaml:"fade"`
	Palette           []string `yaml:"palette"`
}

// LoadBurstConfig parses a YAML burst config, starting from
// DefaultBurstConfig and overriding whatever keys are present.
func LoadBurstConfig(data []byte) (BurstConfig, error) {
	var raw burstYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return BurstConfig{}, fmt.Errorf("scratchfx: parse burst config: %w", err)
	}

	cfg := DefaultBurstConfig()
	if raw.Parts != nil {
		cfg.PartsCount = *raw.Parts
	}
	if raw.Streams != nil {
		cfg.StreamsCount = *raw.Streams
	}
	if raw.PartsDelay != nil {
		cfg.PartsDelay = *raw.PartsDelay
	}
	if raw.TickDelay != nil {
		cfg.TickDelay = *raw.TickDelay
	}
	if raw.DistancePerTick != nil {
		cfg.DistancePerTick = *raw.DistancePerTick
	}
	if raw.Lifetime != nil {
		cfg.Lifetime = *raw.Lifetime
	}
	if raw.Radius != nil {
		cfg.Radius = *raw.Radius
	}
	if raw.Spread != nil {
		cfg.Spread = *raw.Spread
	}
	if raw.ParabolicConstant != nil {
		cfg.ParabolicConstant = *raw.ParabolicConstant
	}
	if raw.Fade != nil {
		cfg.FadeSeconds = *raw.Fade
	}
	for _, s := range raw.Palette {
		c, err := ParseHexColor(s)
		if err != nil {
			return BurstConfig{}, fmt.Errorf("scratchfx: burst config palette: %w", err)
		}
		cfg.Palette = append(cfg.Palette, c)
	}

	if err := validateBurstConfig(cfg); err != nil {
		return BurstConfig{}, err
	}
	return cfg, nil
}

func validateBurstConfig(cfg BurstConfig) error {
	if cfg.PartsCount < 0 {
		return fmt.Errorf("scratchfx: burst config: parts must not be negative, got %d", cfg.PartsCount)
	}
	if cfg.StreamsCount < 1 {
		return fmt.Errorf("scratchfx: burst config: streams must be at least 1, got %d", cfg.StreamsCount)
	}
	if cfg.PartsDelay < 0 {
		return fmt.Errorf("scratchfx: burst config: parts_delay must not be negative, got %g", cfg.PartsDelay)
	}
	if cfg.TickDelay <= 0 {
		return fmt.Errorf("scratchfx: burst config: tick_delay must be positive, got %g", cfg.TickDelay)
	}
	for _, r := range []struct {
		name string
		r    Range
	}{
		{"distance_per_tick", cfg.DistancePerTick},
		{"lifetime", cfg.Lifetime},
		{"radius", cfg.Radius},
		{"parabolic_constant", cfg.ParabolicConstant},
	} {
		if r.r.Min > r.r.Max {
			return fmt.Errorf("scratchfx: burst config: %s min %g exceeds max %g", r.name, r.r.Min, r.r.Max)
		}
	}
	if cfg.DistancePerTick.Min <= 0 {
		return fmt.Errorf("scratchfx: burst config: distance_per_tick must be positive, got min %g", cfg.DistancePerTick.Min)
	}
	return nil
}

type cardYAML struct {
	BrushRadius       *float64 `yaml:"brush_radius"`
	CompleteThreshold *float64 `yaml:"complete_threshold"`
	DustDelta         *float64 `yaml:"dust_delta"`
	SampleStride      *int     `yaml:"sample_stride"`
	RecomputeMs       *float64 `yaml:"recompute_ms"`
}

// LoadCardConfig parses a YAML card config, starting from DefaultCardConfig
// and overriding whatever keys are present.
func LoadCardConfig(data []byte) (CardConfig, error) {
	var raw cardYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return CardConfig{}, fmt.Errorf("scratchfx: parse card config: %w", err)
	}

	cfg := DefaultCardConfig()
	if raw.BrushRadius != nil {
		cfg.BrushRadius = *raw.BrushRadius
	}
	if raw.CompleteThreshold != nil {
		cfg.CompleteThreshold = *raw.CompleteThreshold
	}
	if raw.DustDelta != nil {
		cfg.DustDelta = *raw.DustDelta
	}
	if raw.SampleStride != nil {
		cfg.SampleStride = *raw.SampleStride
	}
	if raw.RecomputeMs != nil {
		cfg.RecomputeEvery = time.Duration(*raw.RecomputeMs * float64(time.Millisecond))
	}

	if cfg.BrushRadius <= 0 {
		return CardConfig{}, fmt.Errorf("scratchfx: card config: brush_radius must be positive, got %g", cfg.BrushRadius)
	}
	if cfg.CompleteThreshold < 0 || cfg.CompleteThreshold > 100 {
		return CardConfig{}, fmt.Errorf("scratchfx: card config: complete_threshold must be in [0, 100], got %g", cfg.CompleteThreshold)
	}
	if cfg.SampleStride < 1 {
		return CardConfig{}, fmt.Errorf("scratchfx: card config: sample_stride must be at least 1, got %d", cfg.SampleStride)
	}
	return cfg, nil
}

// ParseHexColor parses "#rgb", "#rrggbb", or "#rrggbbaa" into a Color.
func ParseHexColor(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, fmt.Errorf("scratchfx: color %q: missing '#' prefix", s)
	}
	hex := s[1:]

	parse := func(sub string) (float64, error) {
		v, err := strconv.ParseUint(sub, 16, 8)
		if err != nil {
			return 0, fmt.Errorf("scratchfx: color %q: %w", s, err)
		}
		return float64(v) / 255, nil
	}

	switch len(hex) {
	case 3:
		// Short form: each digit doubles.
		c := Color{A: 1}
		for i, field := range []*float64{&c.R, &c.G, &c.B} {
			v, err := parse(string([]byte{hex[i], hex[i]}))
			if err != nil {
				return Color{}, err
			}
			*field = v
		}
		return c, nil
	case 6, 8:
		c := Color{A: 1}
		fields := []*float64{&c.R, &c.G, &c.B, &c.A}
		for i := 0; i*2 < len(hex); i++ {
			v, err := parse(hex[i*2 : i*2+2])
			if err != nil {
				return Color{}, err
			}
			*fields[i] = v
		}
		return c, nil
	default:
		return Color{}, fmt.Errorf("scratchfx: color %q: want 3, 6, or 8 hex digits, got %d", s, len(hex))
	}
}
