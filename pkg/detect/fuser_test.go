package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forgewatch/forgewatch/pkg/config"
)

func TestFuseArithmetic(t *testing.T) {
	f := NewFuser(config.DefaultDetectionConfig())

	t.Run("zero criticality leaves base untouched", func(t *testing.T) {
		out := f.Fuse(0.4, 0.2, 0.6, 0)
		expected := 0.35*0.4 + 0.30*0.2 + 0.35*0.6
		assert.InDelta(t, expected, out.Base, 1e-9)
		assert.InDelta(t, expected, out.Final, 1e-9)
	})

	t.Run("criticality boosts", func(t *testing.T) {
		out := f.Fuse(0, 0, 0.8, 0.5)
		base := 0.35 * 0.8
		assert.InDelta(t, base, out.Base, 1e-9)
		assert.InDelta(t, base*1.25, out.Final, 1e-9)
	})

	t.Run("clipped at one", func(t *testing.T) {
		out := f.Fuse(1, 1, 1, 1)
		assert.Equal(t, 1.0, out.Final)
	})
}

func TestFusePrimaryMethod(t *testing.T) {
	f := NewFuser(config.DefaultDetectionConfig())

	tests := []struct {
		name    string
		b, t, c float64
		want    string
	}{
		{"content dominates", 0.1, 0.1, 0.9, NameContent},
		{"temporal dominates", 0.1, 0.9, 0.1, NameTemporal},
		{"behavioral dominates", 0.9, 0.1, 0.1, NameBehavioral},
		// Equal raw scores: content and behavioral weight 0.35 tie,
		// content wins; temporal's 0.30 loses.
		{"tie goes to content", 0.5, 0.5, 0.5, NameContent},
		{"all zero defaults to content", 0, 0, 0, NameContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := f.Fuse(tt.b, tt.t, tt.c, 0)
			assert.Equal(t, tt.want, out.PrimaryMethod)
		})
	}
}

// final >= base when criticality > 0, equal at 0, monotone in each input.
func TestFuseLaws(t *testing.T) {
	f := NewFuser(config.DefaultDetectionConfig())

	grid := []float64{0, 0.25, 0.5, 0.75, 1}
	for _, b := range grid {
		for _, tv := range grid {
			for _, c := range grid {
				zero := f.Fuse(b, tv, c, 0)
				assert.InDelta(t, zero.Base, zero.Final, 1e-12)

				for _, r := range grid[1:] {
					out := f.Fuse(b, tv, c, r)
					assert.GreaterOrEqual(t, out.Final, out.Base-1e-12)
					assert.GreaterOrEqual(t, out.Final, 0.0)
					assert.LessOrEqual(t, out.Final, 1.0)
				}

				// Monotone in each component.
				if b < 1 {
					assert.GreaterOrEqual(t,
						f.Fuse(b+0.25, tv, c, 0.5).Final,
						f.Fuse(b, tv, c, 0.5).Final-1e-12)
				}
				if tv < 1 {
					assert.GreaterOrEqual(t,
						f.Fuse(b, tv+0.25, c, 0.5).Final,
						f.Fuse(b, tv, c, 0.5).Final-1e-12)
				}
				if c < 1 {
					assert.GreaterOrEqual(t,
						f.Fuse(b, tv, c+0.25, 0.5).Final,
						f.Fuse(b, tv, c, 0.5).Final-1e-12)
				}
			}
		}
	}
}
