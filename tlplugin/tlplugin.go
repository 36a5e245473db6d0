// Package tlplugin maps strategy keys to geometry and rendering engines.
//
// There is no package level registry. Every Registry is independent, so two
// registries may bind the same key to different factories.
package tlplugin

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"oss.terrastruct.com/timeline/tllayouts"
	"oss.terrastruct.com/timeline/tlrenderers/tlrender"
)

var (
	ErrBlankKey   = errors.New("strategy key must not be blank")
	ErrNilFactory = errors.New("strategy factory must not be nil")
)

// StrategyKey is a non-blank strategy name. Keys compare by value.
type StrategyKey string

func NewStrategyKey(s string) (StrategyKey, error) {
	if strings.TrimSpace(s) == "" {
		return "", ErrBlankKey
	}
	return StrategyKey(s), nil
}

type MathFactory func() tllayouts.Engine

type UIFactory func(bitmaps tlrender.BitmapProvider, text tlrender.TextLayouter) tlrender.Renderer

type DuplicateKeyError struct {
	Kind string
	Key  StrategyKey
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s strategy %q is already registered", e.Kind, e.Key)
}

type StrategyNotFoundError struct {
	Kind string
	Key  StrategyKey
}

func (e *StrategyNotFoundError) Error() string {
	return fmt.Sprintf("%s strategy %q is not registered", e.Kind, e.Key)
}

type Registry struct {
	mu   sync.RWMutex
	math map[StrategyKey]MathFactory
	ui   map[StrategyKey]UIFactory
}

func NewRegistry() *Registry {
	return &Registry{
		math: make(map[StrategyKey]MathFactory),
		ui:   make(map[StrategyKey]UIFactory),
	}
}

func (r *Registry) RegisterMath(key StrategyKey, f MathFactory) error {
	if strings.TrimSpace(string(key)) == "" {
		return ErrBlankKey
	}
	if f == nil {
		return ErrNilFactory
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.math[key]; ok {
		return &DuplicateKeyError{Kind: "math", Key: key}
	}
	r.math[key] = f
	return nil
}

func (r *Registry) RegisterUI(key StrategyKey, f UIFactory) error {
	if strings.TrimSpace(string(key)) == "" {
		return ErrBlankKey
	}
	if f == nil {
		return ErrNilFactory
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ui[key]; ok {
		return &DuplicateKeyError{Kind: "ui", Key: key}
	}
	r.ui[key] = f
	return nil
}

func (r *Registry) MathProvider(key StrategyKey) (MathFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.math[key]
	return f, ok
}

func (r *Registry) UIProvider(key StrategyKey) (UIFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.ui[key]
	return f, ok
}

// Keys returns the registered math and UI keys, sorted.
func (r *Registry) Keys() (math, ui []StrategyKey) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for k := range r.math {
		math = append(math, k)
	}
	for k := range r.ui {
		ui = append(ui, k)
	}
	sort.Slice(math, func(i, j int) bool { return math[i] < math[j] })
	sort.Slice(ui, func(i, j int) bool { return ui[i] < ui[j] })
	return math, ui
}
