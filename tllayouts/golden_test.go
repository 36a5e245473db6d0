package tllayouts_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/timeline/lib/diff"
	"oss.terrastruct.com/timeline/tlconfig"
	"oss.terrastruct.com/timeline/tllayouts"
	"oss.terrastruct.com/timeline/tllayouts/tllinear"
	"oss.terrastruct.com/timeline/tllayouts/tlsnake"
	"oss.terrastruct.com/timeline/tlstep"
	"oss.terrastruct.com/timeline/tltarget"
)

func TestGolden(t *testing.T) {
	t.Parallel()

	engines := []struct {
		name   string
		engine tllayouts.Engine
	}{
		{"snake", tlsnake.New()},
		{"linear-vertical", tllinear.NewVertical()},
		{"linear-horizontal", tllinear.NewHorizontal()},
	}
	positions := []tlconfig.StartPosition{
		tlconfig.StartPositionStart,
		tlconfig.StartPositionCenter,
		tlconfig.StartPositionEnd,
	}
	steps := []tlstep.Step{
		tlstep.New("Ordered", "", "on", "off", 100),
		tlstep.New("Shipped", "", "on", "off", 50),
		tlstep.New("Delivered", "", "on", "off", 0),
	}
	base := tlconfig.Default().WithSpacing(tlconfig.Spacing{
		StepY:                  100,
		StepYFirst:             20,
		MarginTopTitle:         4,
		MarginTopDescription:   2,
		MarginTopProgressIcon:  3,
		MarginHorizontalImage:  10,
		MarginHorizontalText:   8,
		MarginHorizontalStroke: 40,
	})

	for _, e := range engines {
		e := e
		t.Run(e.name, func(t *testing.T) {
			t.Parallel()

			for _, pos := range positions {
				pos := pos
				t.Run(pos.String(), func(t *testing.T) {
					t.Parallel()

					cfg := base.WithStartPosition(pos)
					got := struct {
						Layout *tltarget.Layout `json:"layout"`
						Paths  tltarget.Paths   `json:"paths"`
					}{
						Layout: e.engine.BuildLayout(steps, cfg, 400),
						Paths:  e.engine.BuildPath(steps, cfg, 400),
					}
					err := diff.TestdataJSON(filepath.Join("testdata", t.Name()), got)
					require.NoError(t, err)
				})
			}
		})
	}
}
