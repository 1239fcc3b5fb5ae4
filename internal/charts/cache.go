package charts

import (
	"bytes"
	"context"
	"html/template"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal"
)

// Cache holds pre-rendered chart snippets. The table is immutable for the
// process lifetime, so every figure is too and can be rendered once.
type Cache struct {
	table *catalog.Table

	mu       sync.RWMutex
	snippets map[Kind]template.HTML
}

// NewCache creates a cache bound to a loaded table.
func NewCache(table *catalog.Table) *Cache {
	return &Cache{
		table:    table,
		snippets: make(map[Kind]template.HTML),
	}
}

// Warm renders all chart kinds concurrently. A kind whose builder fails is
// logged and skipped; Snippet will retry it on demand.
func (c *Cache) Warm(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for kind := range Registry() {
		kind := kind
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			html, err := c.render(kind)
			if err != nil {
				internal.DefaultLogger.Warn("chart warmup failed for %s: %v", kind, err)
				return nil
			}

			c.mu.Lock()
			c.snippets[kind] = html
			c.mu.Unlock()
			return nil
		})
	}

	return g.Wait()
}

// Snippet returns the rendered snippet for a kind, building it on a cache
// miss. Unknown kinds yield the empty figure.
func (c *Cache) Snippet(kind Kind) (template.HTML, error) {
	c.mu.RLock()
	html, ok := c.snippets[kind]
	c.mu.RUnlock()
	if ok {
		return html, nil
	}

	html, err := c.render(kind)
	if err != nil {
		// Fall back to the blank chart but surface the miss to the caller.
		empty, renderErr := renderFigure(EmptyFigure())
		if renderErr != nil {
			return "", renderErr
		}
		return empty, err
	}

	c.mu.Lock()
	c.snippets[kind] = html
	c.mu.Unlock()
	return html, nil
}

func (c *Cache) render(kind Kind) (template.HTML, error) {
	figure, err := Build(kind, c.table)
	if err != nil {
		return "", err
	}
	return renderFigure(figure)
}

func renderFigure(figure Figure) (template.HTML, error) {
	var buf bytes.Buffer
	if err := figure.Render(&buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
