package folio

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/folio3d/internal/config"
	"github.com/Faultbox/folio3d/internal/engine/geometry"
)

// OptionsFromConfig maps application configuration onto scene options.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	sc := cfg.Scene

	opts.FontPath = sc.Font
	opts.Texts = make([]TextBlockSpec, 0, len(sc.Texts))
	for _, t := range sc.Texts {
		opts.Texts = append(opts.Texts, TextBlockSpec{Content: t.Content, Size: t.Size})
	}
	opts.RowSpacing = sc.RowSpacing
	opts.TextStyle.Depth = sc.TextDepth
	opts.TextStyle.CurveSegments = sc.CurveSegments
	opts.Background = mgl32.Vec3(sc.Background)

	d := sc.Decorative
	opts.DecorativePosition = mgl32.Vec3(d.Position)
	opts.Decorative.Knot = geometry.TorusKnotOptions{
		Radius:          d.Radius,
		Tube:            d.Tube,
		TubularSegments: d.TubularSegments,
		RadialSegments:  d.RadialSegments,
		P:               d.P,
		Q:               d.Q,
	}
	opts.Decorative.EdgeThreshold = d.EdgeThreshold
	opts.Spin = SpinConfig{Rate: sc.Spin.Rate, FrameLocked: sc.Spin.FrameLocked}

	opts.Fov = cfg.Graphics.Fov
	opts.Near = cfg.Graphics.Near
	opts.Far = cfg.Graphics.Far

	c := cfg.Controls
	opts.Controls = ControlsOptions{
		EnableDamping: c.EnableDamping,
		DampingFactor: c.DampingFactor,
		RotateSpeed:   c.RotateSpeed,
		ZoomSpeed:     c.ZoomSpeed,
		PanSpeed:      c.PanSpeed,
		MinDistance:   c.MinDistance,
		MaxDistance:   c.MaxDistance,
	}

	opts.ShowBounds = cfg.Debug.ShowBounds
	return opts
}
