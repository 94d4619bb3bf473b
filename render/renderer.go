package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fynestrap/fynestrap/colorutil"
)

// Asset is one rasterized bitmap. Assets are immutable once minted; the PNG
// encoding is computed lazily and memoized.
type Asset struct {
	key string
	img *image.NRGBA
	png []byte
}

// Key returns the deterministic cache key the asset was minted under.
func (a *Asset) Key() string { return a.key }

// Image exposes the raw raster. Callers must not mutate it.
func (a *Asset) Image() *image.NRGBA { return a.img }

// Bounds returns the pixel bounds of the raster.
func (a *Asset) Bounds() image.Rectangle { return a.img.Bounds() }

// PNG returns the asset encoded as PNG, encoding at most once.
func (a *Asset) PNG() ([]byte, error) {
	if a.png == nil {
		var buf bytes.Buffer
		if err := png.Encode(&buf, a.img); err != nil {
			return nil, fmt.Errorf("render: encoding %q: %w", a.key, err)
		}
		a.png = buf.Bytes()
	}
	return a.png, nil
}

type arenaEntry struct {
	asset *Asset
	epoch int
}

// Renderer owns every bitmap the engine mints. Recolor results are memoized
// by template and fill colors, so identical requests never re-rasterize.
// Named element assets live in an arena tagged with the palette epoch they
// were minted under and are released when that epoch is superseded.
//
// Single UI thread assumed; no locking.
type Renderer struct {
	memo           map[string]*Asset
	arena          map[string]arenaEntry
	epoch          int
	rasterizations int

	Logger zerolog.Logger
}

// NewRenderer returns an empty renderer at epoch zero.
func NewRenderer() *Renderer {
	return &Renderer{
		memo:   make(map[string]*Asset),
		arena:  make(map[string]arenaEntry),
		Logger: zerolog.Nop(),
	}
}

// Recolor rasterizes a named template with the given fills, or returns the
// memoized asset for an identical earlier request. Unknown template names
// are an error.
func (r *Renderer) Recolor(template string, fills ...colorutil.Color) (*Asset, error) {
	fn, ok := templates[template]
	if !ok {
		return nil, fmt.Errorf("render: unknown template %q", template)
	}

	key := recolorKey(template, fills)
	if asset, hit := r.memo[key]; hit {
		return asset, nil
	}

	asset := &Asset{key: key, img: fn(fills)}
	r.memo[key] = asset
	r.rasterizations++
	r.Logger.Debug().Str("key", key).Msg("rasterized template")
	return asset, nil
}

func recolorKey(template string, fills []colorutil.Color) string {
	var b strings.Builder
	b.WriteString(template)
	for _, f := range fills {
		b.WriteByte('|')
		b.WriteString(f.Hex())
	}
	return b.String()
}

// Rasterizations reports how many distinct rasters have been drawn. Used to
// verify the memoization contract.
func (r *Renderer) Rasterizations() int { return r.rasterizations }

// SetEpoch records the active palette epoch; assets adopted from now on are
// tagged with it.
func (r *Renderer) SetEpoch(epoch int) { r.epoch = epoch }

// Epoch returns the current palette epoch.
func (r *Renderer) Epoch() int { return r.epoch }

// Adopt places an asset in the arena under a generated element name, tagged
// with the current epoch. Adopting an existing name keeps the first asset
// (element registrations are idempotent) and reports false.
func (r *Renderer) Adopt(name string, asset *Asset) bool {
	if _, exists := r.arena[name]; exists {
		return false
	}
	r.arena[name] = arenaEntry{asset: asset, epoch: r.epoch}
	return true
}

// Lookup returns the adopted asset registered under name.
func (r *Renderer) Lookup(name string) (*Asset, bool) {
	e, ok := r.arena[name]
	if !ok {
		return nil, false
	}
	return e.asset, true
}

// Release drops a single adopted asset.
func (r *Renderer) Release(name string) {
	delete(r.arena, name)
}

// ReleaseBefore drops every adopted asset minted under an epoch older than
// the given one and returns how many were released. The recolor memo is
// deliberately kept: it is a pure function of template and fills, so
// entries stay correct across theme switches and are re-used whenever a new
// palette lands on identical colors.
func (r *Renderer) ReleaseBefore(epoch int) int {
	released := 0
	for name, e := range r.arena {
		if e.epoch < epoch {
			delete(r.arena, name)
			released++
		}
	}
	if released > 0 {
		r.Logger.Debug().Int("released", released).Int("epoch", epoch).Msg("released stale element assets")
	}
	return released
}

// AssetCount reports the number of live adopted assets.
func (r *Renderer) AssetCount() int { return len(r.arena) }
