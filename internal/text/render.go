package text

import (
	"crypto/sha256"
	"encoding/binary"
	"strings"

	"github.com/charmbracelet/glamour"
	lru "github.com/hashicorp/golang-lru"
)

// Renderer renders markdown with glamour and caches the output per width.
type Renderer struct {
	style  string
	cache  *lru.Cache
	render func(md string, width int) (string, error)
}

// NewRenderer uses a glamour standard style ("dark", "light", "notty", ...).
func NewRenderer(style string, size int) (*Renderer, error) {
	if style == "" {
		style = "dark"
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	r := &Renderer{style: style, cache: cache}
	r.render = r.glamour
	return r, nil
}

func (r *Renderer) glamour(md string, width int) (string, error) {
	tr, err := glamour.NewTermRenderer(glamour.WithStandardStyle(r.style), glamour.WithWordWrap(width))
	if err != nil {
		return "", err
	}
	return tr.Render(md)
}

// CacheKey hashes markdown and wrap width into a stable key.
func CacheKey(md string, width int) [32]byte {
	h := sha256.New()
	var w [8]byte
	binary.LittleEndian.PutUint64(w[:], uint64(width))
	h.Write(w[:])
	h.Write([]byte(md))
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Render returns terminal output for md. On a glamour failure the raw
// markdown is returned so the screen still shows the text.
func (r *Renderer) Render(md string, width int) string {
	if width <= 0 {
		width = 60
	}
	key := CacheKey(md, width)
	if v, ok := r.cache.Get(key); ok {
		return v.(string)
	}
	out, err := r.render(md, width)
	if err != nil {
		return md
	}
	out = strings.Trim(out, "\n")
	r.cache.Add(key, out)
	return out
}
