// Package tlview wires steps and configuration through a geometry engine and
// a renderer, the way a host view drives them from its measure and draw
// callbacks.
//
// A View is not safe for concurrent use. Hosts call it from one thread.
package tlview

import (
	"context"
	"errors"

	"cdr.dev/slog"
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/timeline/lib/log"
	"oss.terrastruct.com/timeline/tlconfig"
	"oss.terrastruct.com/timeline/tlhittest"
	"oss.terrastruct.com/timeline/tllayouts"
	"oss.terrastruct.com/timeline/tlplugin"
	"oss.terrastruct.com/timeline/tlrenderers/tlrender"
	"oss.terrastruct.com/timeline/tlstep"
	"oss.terrastruct.com/timeline/tltarget"
)

var ErrNotMeasured = errors.New("timeline has not been measured")

type Opts struct {
	Bitmaps tlrender.BitmapProvider
	Text    TextEngine
	// Registry resolves strategy keys. Nil means the built-in strategies.
	Registry *tlplugin.Registry
	// HitTest sets minimum touch sizes.
	HitTest *tlhittest.Options
}

// TextEngine measures text for layout and breaks it for drawing.
type TextEngine interface {
	tllayouts.TextMeasurer
	tlrender.TextLayouter
}

type View struct {
	bitmaps  tlrender.BitmapProvider
	text     TextEngine
	resolver *tlplugin.Resolver
	hitOpts  *tlhittest.Options

	cfg   tlconfig.Config
	steps []tlstep.Step

	engine   tllayouts.Engine
	renderer tlrender.Renderer
	// pendingKey is resolved on the next measure or draw.
	pendingKey string

	layout *tltarget.Layout
	paths  tltarget.Paths
	height float64
}

func New(opts Opts) *View {
	reg := opts.Registry
	if reg == nil {
		reg = tlplugin.NewRegistryWithBuiltins()
	}
	v := &View{
		bitmaps:  opts.Bitmaps,
		text:     opts.Text,
		resolver: tlplugin.NewResolver(reg),
		hitOpts:  opts.HitTest,
		cfg:      tlconfig.Default(),
	}
	v.SetStrategy(tlplugin.Snake)
	return v
}

func (v *View) Config() tlconfig.Config {
	return v.cfg
}

// SetConfig replaces the configuration and drops the last layout.
func (v *View) SetConfig(cfg tlconfig.Config) {
	v.cfg = cfg.Normalize()
	v.invalidate()
}

// ReplaceSteps copies steps and drops the last layout.
func (v *View) ReplaceSteps(steps []tlstep.Step) {
	v.steps = append([]tlstep.Step(nil), steps...)
	v.invalidate()
}

func (v *View) Steps() []tlstep.Step {
	return append([]tlstep.Step(nil), v.steps...)
}

// SetMathEngine replaces the geometry engine. Nil is ignored.
func (v *View) SetMathEngine(e tllayouts.Engine) {
	if e == nil {
		return
	}
	v.engine = e
	v.pendingKey = ""
	v.invalidate()
}

// SetUIRenderer replaces the renderer. Nil is ignored.
func (v *View) SetUIRenderer(r tlrender.Renderer) {
	if r == nil {
		return
	}
	v.renderer = r
	v.pendingKey = ""
	v.invalidate()
}

// SetStrategy selects a built-in strategy. Unknown ordinals select snake.
func (v *View) SetStrategy(s tlplugin.Strategy) {
	v.engine = tlplugin.BuiltinMath(s)
	v.renderer = tlplugin.BuiltinUI(s, v.bitmaps, v.text)
	v.pendingKey = ""
	v.invalidate()
}

// SetStrategyKey selects a registered strategy. The key is looked up on the
// next Measure or Draw, which fail if it is not registered.
func (v *View) SetStrategyKey(key string) error {
	if _, err := tlplugin.NewStrategyKey(key); err != nil {
		return err
	}
	v.pendingKey = key
	v.invalidate()
	return nil
}

func (v *View) resolve(ctx context.Context) error {
	if v.pendingKey == "" {
		return nil
	}
	e, err := v.resolver.Math(v.pendingKey)
	if err != nil {
		log.Warn(ctx, "cannot resolve strategy", slog.F("key", v.pendingKey), slog.Error(err))
		return err
	}
	r, err := v.resolver.UIFor(v.pendingKey, v.bitmaps, v.text)
	if err != nil {
		log.Warn(ctx, "cannot resolve strategy", slog.F("key", v.pendingKey), slog.Error(err))
		return err
	}
	log.Debug(ctx, "resolved strategy", slog.F("key", v.pendingKey))
	v.engine, v.renderer = e, r
	v.pendingKey = ""
	return nil
}

func (v *View) invalidate() {
	v.layout = nil
	v.paths = tltarget.Paths{}
	v.height = 0
}

// Measure lays the timeline out across width and returns the height it
// needs.
func (v *View) Measure(ctx context.Context, width float64) (_ float64, err error) {
	defer xdefer.Errorf(&err, "failed to measure timeline")
	ctx = log.Named(ctx, "tlview")

	if err := v.resolve(ctx); err != nil {
		return 0, err
	}
	if v.text == nil {
		return 0, errors.New("no text engine")
	}

	v.layout = v.engine.BuildLayout(v.steps, v.cfg, width)
	v.paths = v.engine.BuildPath(v.steps, v.cfg, width)
	v.height = tllayouts.CalculateHeight(v.engine, v.cfg, v.layout, v.text)
	if v.renderer != nil {
		v.renderer.Init(v.cfg.Sizes)
	}

	log.Debug(ctx, "measured timeline",
		slog.F("width", width),
		slog.F("height", v.height),
		slog.F("steps", len(v.steps)),
	)
	return v.height, nil
}

// Draw paints the last measured layout onto c.
func (v *View) Draw(ctx context.Context, c tlrender.Canvas) (err error) {
	defer xdefer.Errorf(&err, "failed to draw timeline view")
	ctx = log.Named(ctx, "tlview")

	if err := v.resolve(ctx); err != nil {
		return err
	}
	if v.layout == nil {
		return ErrNotMeasured
	}
	if v.renderer == nil {
		return errors.New("no renderer")
	}
	return v.renderer.Draw(ctx, c, v.layout, v.paths, v.cfg)
}

// HitTest reports what is under (x, y) in the last measured layout.
func (v *View) HitTest(x, y float64) tlhittest.Hit {
	return tlhittest.Find(v.layout, v.cfg.Sizes.ImageLvl, v.cfg.Sizes.IconProgress, x, y, v.hitOpts)
}

// Layout is the last measured layout, or nil.
func (v *View) Layout() *tltarget.Layout {
	return v.layout
}

func (v *View) Paths() tltarget.Paths {
	return v.paths
}

func (v *View) Height() float64 {
	return v.height
}
