package preview

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/glyph"
	"github.com/gogpu/glyph/boolean"
	"github.com/gogpu/glyph/internal/cache"
	"github.com/gogpu/glyph/internal/parallel"
)

// Result is the drawable form of a glyph.
type Result struct {
	// Layers are the combined layers, each holding built outlines.
	Layers []*glyph.Layer
	// Skipped counts contours that failed to build.
	Skipped int
	// Cached is the number of built contours held after the rebuild, and
	// Hits and Misses count cache lookups over the Rebuilder's life.
	Cached       int
	Hits, Misses uint64
}

// Outline returns all result layers' contours in order.
func (r *Result) Outline() glyph.Outline {
	var out glyph.Outline
	for _, l := range r.Layers {
		out = append(out, l.Outline...)
	}
	return out
}

// Rebuilder builds glyph previews, reusing built contours across calls.
type Rebuilder struct {
	opts  options
	built *cache.Cache[uint64, glyph.Outline]
	// pool is nil when contours are built on the calling goroutine.
	pool *parallel.Pool

	mu    sync.Mutex
	dirty bool
	last  *Result
	lastG *glyph.Glyph
}

// New returns a Rebuilder that starts dirty.
func New(opts ...Option) *Rebuilder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Rebuilder{
		opts:  o,
		built: cache.New[uint64, glyph.Outline](o.cacheSize),
		dirty: true,
	}
	if o.workers > 1 {
		r.pool = parallel.NewPool(o.workers)
	}
	return r
}

// Close stops the Rebuilder's workers. The Rebuilder stays usable and
// builds on the calling goroutine afterwards.
func (r *Rebuilder) Close() {
	r.pool.Close()
}

// MarkDirty makes the next Rebuild recompute the preview.
func (r *Rebuilder) MarkDirty() {
	r.mu.Lock()
	r.dirty = true
	r.mu.Unlock()
}

// Dirty reports whether the next Rebuild will recompute.
func (r *Rebuilder) Dirty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dirty
}

// Rebuild returns the preview of g. When nothing was marked dirty since
// the last call for the same glyph, the previous result is returned and
// must not be modified.
//
// Contours that fail to build are skipped. Their errors are joined into
// the returned error, which accompanies a usable Result.
func (r *Rebuilder) Rebuild(g *glyph.Glyph) (*Result, error) {
	if g == nil {
		return &Result{}, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.dirty && r.last != nil && r.lastG == g {
		return r.last, nil
	}

	var jobs []job
	layers := make([]*glyph.Layer, 0, len(g.Layers))
	for li, l := range g.Layers {
		if l == nil {
			continue
		}
		layers = append(layers, &glyph.Layer{
			Name:      l.Name,
			Visible:   l.Visible,
			Color:     l.Color,
			Operation: l.Operation,
		})
		for ci, c := range l.Outline {
			if c != nil {
				jobs = append(jobs, job{layer: len(layers) - 1, name: l.Name, src: li, index: ci, contour: c})
			}
		}
	}

	var errs []error
	skipped := 0
	for i, b := range r.buildAll(jobs) {
		j := jobs[i]
		if b.err != nil {
			skipped++
			errs = append(errs, fmt.Errorf("layer %d (%s): %w", j.src, j.name, b.err))
			continue
		}
		layers[j.layer].Outline = append(layers[j.layer].Outline, b.out.Clone()...)
	}

	st := r.built.Stats()
	res := &Result{
		Layers:  boolean.Combine(layers, r.opts.combine...),
		Skipped: skipped,
		Cached:  st.Len,
		Hits:    st.Hits,
		Misses:  st.Misses,
	}
	glyph.Logger().Debug("preview: rebuilt glyph",
		"glyph", g.Name,
		"layers", len(res.Layers),
		"skipped", skipped,
		"cached", st.Len,
		"hit_rate", st.HitRate)

	r.dirty = false
	r.last, r.lastG = res, g
	return res, errors.Join(errs...)
}

// job is one contour to build.
type job struct {
	layer   int
	name    string
	src     int
	index   int
	contour *glyph.Contour
}

type result struct {
	out glyph.Outline
	err error
}

// buildAll builds every job, taking unchanged contours from the cache.
// Cached outlines are shared and must be cloned before use.
func (r *Rebuilder) buildAll(jobs []job) []result {
	build := func(j job) (glyph.Outline, error) {
		opts := append(r.opts.build[:len(r.opts.build):len(r.opts.build)], glyph.WithContourIndex(j.index))
		return glyph.Build(j.contour, opts...)
	}

	out := make([]result, len(jobs))
	if r.pool == nil {
		for i, j := range jobs {
			out[i].out, out[i].err = r.built.GetOrCreate(contourKey(j.contour), func() (glyph.Outline, error) {
				return build(j)
			})
		}
		return out
	}

	keys := make([]uint64, len(jobs))
	var misses []int
	for i, j := range jobs {
		keys[i] = contourKey(j.contour)
		if o, ok := r.built.Get(keys[i]); ok {
			out[i].out = o
			continue
		}
		misses = append(misses, i)
	}
	built := parallel.Map(r.pool, misses, func(_ int, i int) result {
		o, err := build(jobs[i])
		return result{out: o, err: err}
	})
	for k, i := range misses {
		out[i] = built[k]
		if built[k].err == nil {
			r.built.Set(keys[i], built[k].out)
		}
	}
	return out
}

// Reset drops every cached contour and marks the Rebuilder dirty.
func (r *Rebuilder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.built.Clear()
	r.dirty = true
	r.last, r.lastG = nil, nil
}
