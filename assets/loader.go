package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io/fs"
	"path"
	"sync/atomic"
	"time"

	"github.com/automoto/tilewalk/logging"
	"github.com/automoto/tilewalk/telemetry"
	"github.com/lafriks/go-tiled"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrAssetMissing is returned when a requested file does not exist.
	ErrAssetMissing = errors.New("asset missing")
	// ErrLoadInFlight is returned when Start is called while a batch is still running.
	ErrLoadInFlight = errors.New("asset load already in flight")
)

// maxParallelFetch bounds the decoders running for one batch.
const maxParallelFetch = 4

type Kind int

const (
	KindImage Kind = iota
	KindSpritesheet
	KindTilemap
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindSpritesheet:
		return "spritesheet"
	case KindTilemap:
		return "tilemap"
	}
	return "unknown"
}

// Request describes a single asset to fetch.
type Request struct {
	Kind        Kind
	Key         string
	Path        string
	FrameWidth  int
	FrameHeight int
}

// Loader queues asset requests during a state's preload and fetches them as a
// single background batch. Only one batch may be in flight at a time.
type Loader struct {
	fsys    fs.FS
	cache   *Cache
	path    string
	queue   []Request
	pending *Pending
	log     *zap.Logger
}

func NewLoader(fsys fs.FS, cache *Cache) *Loader {
	return &Loader{
		fsys:  fsys,
		cache: cache,
		log:   logging.Named("assets"),
	}
}

// Cache returns the process-wide asset cache the loader commits into.
func (l *Loader) Cache() *Cache {
	return l.cache
}

// FS returns the filesystem assets are read from.
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// SetPath sets the base directory prepended to request paths queued after it.
func (l *Loader) SetPath(p string) {
	l.path = p
}

// Image queues a plain image.
func (l *Loader) Image(key, p string) bool {
	return l.enqueue(Request{Kind: KindImage, Key: key, Path: p})
}

// Spritesheet queues an image split into frames of the given size.
func (l *Loader) Spritesheet(key, p string, frameWidth, frameHeight int) bool {
	return l.enqueue(Request{
		Kind:        KindSpritesheet,
		Key:         key,
		Path:        p,
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
	})
}

// Tilemap queues a Tiled map.
func (l *Loader) Tilemap(key, p string) bool {
	return l.enqueue(Request{Kind: KindTilemap, Key: key, Path: p})
}

// Enqueue queues a prepared request.
func (l *Loader) Enqueue(r Request) bool {
	return l.enqueue(r)
}

// enqueue adds a request unless its key is already cached or queued, and
// reports whether it was added.
func (l *Loader) enqueue(r Request) bool {
	if l.resident(r) {
		l.log.Debug("asset already cached", zap.String("key", r.Key), zap.Stringer("kind", r.Kind))
		return false
	}
	for _, q := range l.queue {
		if q.Kind == r.Kind && q.Key == r.Key {
			return false
		}
	}
	if l.path != "" {
		r.Path = path.Join(l.path, r.Path)
	}
	l.queue = append(l.queue, r)
	return true
}

func (l *Loader) resident(r Request) bool {
	if r.Kind == KindTilemap {
		return l.cache.CheckTilemapKey(r.Key)
	}
	return l.cache.CheckImageKey(r.Key)
}

// Queued returns the number of requests waiting for the next Start.
func (l *Loader) Queued() int {
	return len(l.queue)
}

// Busy reports whether a batch has been started and not yet committed.
func (l *Loader) Busy() bool {
	return l.pending != nil && !l.pending.committed
}

// Start fetches every queued request in the background and returns the
// completion handle. Results reach the cache when the handle is polled from
// the game loop. An empty queue yields an already-completed handle.
func (l *Loader) Start(ctx context.Context) (*Pending, error) {
	if l.Busy() {
		return nil, ErrLoadInFlight
	}

	reqs := l.queue
	l.queue = nil
	l.path = ""

	p := &Pending{
		done:    make(chan struct{}),
		reqs:    reqs,
		results: make([]any, len(reqs)),
		cache:   l.cache,
		log:     l.log,
	}
	l.pending = p

	if len(reqs) == 0 {
		close(p.done)
		return p, nil
	}

	go l.run(ctx, p)
	return p, nil
}

func (l *Loader) run(ctx context.Context, p *Pending) {
	defer close(p.done)

	ctx, span := telemetry.Tracer("assets").Start(ctx, "assets.batch")
	span.SetAttributes(attribute.Int("assets.count", len(p.reqs)))
	defer span.End()

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelFetch)

	for i, r := range p.reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := l.fetch(r)
			if err != nil {
				return err
			}
			p.results[i] = v
			p.completed.Add(1)
			return nil
		})
	}

	p.err = g.Wait()
	if p.err != nil {
		span.RecordError(p.err)
		span.SetStatus(codes.Error, p.err.Error())
	}
	l.log.Debug("asset batch finished",
		zap.Int("count", len(p.reqs)),
		zap.Duration("duration", time.Since(start)),
		zap.Error(p.err))
}

func (l *Loader) fetch(r Request) (any, error) {
	data, err := fs.ReadFile(l.fsys, r.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s %q at %s", ErrAssetMissing, r.Kind, r.Key, r.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s %q: %w", r.Kind, r.Key, err)
	}

	switch r.Kind {
	case KindTilemap:
		m, err := tiled.LoadReader(path.Dir(r.Path), bytes.NewReader(data), tiled.WithFileSystem(l.fsys))
		if err != nil {
			return nil, fmt.Errorf("parse tilemap %q: %w", r.Key, err)
		}
		return m, nil
	default:
		src, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode %s %q: %w", r.Kind, r.Key, err)
		}
		return &Image{
			Source:      src,
			FrameWidth:  r.FrameWidth,
			FrameHeight: r.FrameHeight,
		}, nil
	}
}

// Pending is the completion handle of a load batch.
type Pending struct {
	done      chan struct{}
	reqs      []Request
	results   []any
	completed atomic.Int32
	err       error
	committed bool
	cache     *Cache
	log       *zap.Logger
}

// Done is closed once every request finished or the batch failed.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Progress returns the fraction of requests completed, in [0, 1].
func (p *Pending) Progress() float64 {
	if len(p.reqs) == 0 {
		return 1
	}
	return float64(p.completed.Load()) / float64(len(p.reqs))
}

// Poll reports whether the batch has finished without blocking. The first
// time it observes completion it commits the results to the cache, so it must
// be called from the game loop.
func (p *Pending) Poll() (bool, error) {
	select {
	case <-p.done:
		p.commit()
		return true, p.err
	default:
		return false, nil
	}
}

// Wait blocks until the batch finishes or ctx is cancelled, then commits.
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		p.commit()
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pending) commit() {
	if p.committed {
		return
	}
	p.committed = true
	if p.err != nil {
		return
	}
	for i, r := range p.reqs {
		switch v := p.results[i].(type) {
		case *tiled.Map:
			p.cache.AddTilemap(r.Key, v)
		case *Image:
			p.cache.AddImage(r.Key, v)
		}
		p.log.Info("asset loaded", zap.Stringer("kind", r.Kind), zap.String("key", r.Key), zap.String("path", r.Path))
	}
}
