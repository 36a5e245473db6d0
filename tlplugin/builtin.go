package tlplugin

import (
	"strings"

	"oss.terrastruct.com/timeline/tllayouts"
	"oss.terrastruct.com/timeline/tllayouts/tllinear"
	"oss.terrastruct.com/timeline/tllayouts/tlsnake"
	"oss.terrastruct.com/timeline/tlrenderers/tlrender"
)

const (
	KeySnake            StrategyKey = "snake"
	KeyLinearVertical   StrategyKey = "linear-vertical"
	KeyLinearHorizontal StrategyKey = "linear-horizontal"
	KeyLinear           StrategyKey = "linear"
)

// Strategy selects a built-in engine by ordinal.
type Strategy int

const (
	Snake Strategy = iota
	LinearVertical
	LinearHorizontal
)

func (s Strategy) valid() bool {
	return s >= Snake && s <= LinearHorizontal
}

func (s Strategy) String() string {
	return string(s.MathKey())
}

// MathKey is the built-in math key for s. Unknown ordinals map to snake.
func (s Strategy) MathKey() StrategyKey {
	switch s {
	case LinearVertical:
		return KeyLinearVertical
	case LinearHorizontal:
		return KeyLinearHorizontal
	default:
		return KeySnake
	}
}

// UIKey is the built-in UI key for s. Unknown ordinals map to snake.
func (s Strategy) UIKey() StrategyKey {
	if s.valid() && s != Snake {
		return KeyLinear
	}
	return KeySnake
}

func snakeUI(bitmaps tlrender.BitmapProvider, text tlrender.TextLayouter) tlrender.Renderer {
	return tlrender.NewSnake(bitmaps, text)
}

func linearUI(bitmaps tlrender.BitmapProvider, text tlrender.TextLayouter) tlrender.Renderer {
	return tlrender.NewLinear(bitmaps, text)
}

var builtinMath = map[StrategyKey]MathFactory{
	KeySnake:            func() tllayouts.Engine { return tlsnake.New() },
	KeyLinearVertical:   func() tllayouts.Engine { return tllinear.NewVertical() },
	KeyLinearHorizontal: func() tllayouts.Engine { return tllinear.NewHorizontal() },
}

var builtinUI = map[StrategyKey]UIFactory{
	KeySnake:  snakeUI,
	KeyLinear: linearUI,
}

// NewRegistryWithBuiltins returns a fresh registry holding the built-in
// strategies.
func NewRegistryWithBuiltins() *Registry {
	r := NewRegistry()
	for k, f := range builtinMath {
		r.math[k] = f
	}
	for k, f := range builtinUI {
		r.ui[k] = f
	}
	return r
}

// BuiltinMath returns a new built-in engine for s. Out of range ordinals fall
// back to snake.
func BuiltinMath(s Strategy) tllayouts.Engine {
	return builtinMath[s.MathKey()]()
}

// BuiltinUI returns a new built-in renderer for s. Out of range ordinals fall
// back to snake.
func BuiltinUI(s Strategy, bitmaps tlrender.BitmapProvider, text tlrender.TextLayouter) tlrender.Renderer {
	return builtinUI[s.UIKey()](bitmaps, text)
}

// Resolver looks strategies up by key. Unlike the ordinal helpers above, an
// unknown key is an error.
type Resolver struct {
	Registry *Registry
}

func NewResolver(r *Registry) *Resolver {
	return &Resolver{Registry: r}
}

func (r *Resolver) Math(key string) (tllayouts.Engine, error) {
	k, err := NewStrategyKey(key)
	if err != nil {
		return nil, err
	}
	f, ok := r.Registry.MathProvider(k)
	if !ok {
		return nil, &StrategyNotFoundError{Kind: "math", Key: k}
	}
	return f(), nil
}

func (r *Resolver) UI(key string, bitmaps tlrender.BitmapProvider, text tlrender.TextLayouter) (tlrender.Renderer, error) {
	k, err := NewStrategyKey(key)
	if err != nil {
		return nil, err
	}
	f, ok := r.Registry.UIProvider(k)
	if !ok {
		return nil, &StrategyNotFoundError{Kind: "ui", Key: k}
	}
	return f(bitmaps, text), nil
}

// UIFor resolves the renderer paired with a math key. The key itself is
// tried first, then its family name before the first '-', so
// "linear-vertical" draws with "linear".
func (r *Resolver) UIFor(key string, bitmaps tlrender.BitmapProvider, text tlrender.TextLayouter) (tlrender.Renderer, error) {
	k, err := NewStrategyKey(key)
	if err != nil {
		return nil, err
	}
	if f, ok := r.Registry.UIProvider(k); ok {
		return f(bitmaps, text), nil
	}
	if i := strings.IndexByte(key, '-'); i > 0 {
		if f, ok := r.Registry.UIProvider(StrategyKey(key[:i])); ok {
			return f(bitmaps, text), nil
		}
	}
	return nil, &StrategyNotFoundError{Kind: "ui", Key: k}
}
