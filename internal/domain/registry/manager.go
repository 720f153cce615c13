package registry

import (
	"fmt"
	"sync"

	"github.com/ctxos/desktop/backend/internal/shared/types"
)

// ErrAppNotFound is returned for unknown app ids
var ErrAppNotFound = fmt.Errorf("app %w", types.ErrNotFound)

// Catalog holds the launchable application descriptors in registration order
type Catalog struct {
	mu    sync.RWMutex
	order []string                       // Protected by mu
	apps  map[string]types.AppDescriptor // Protected by mu
}

// NewCatalog creates a catalog pre-filled with apps
func NewCatalog(apps ...types.AppDescriptor) (*Catalog, error) {
	c := &Catalog{
		apps: make(map[string]types.AppDescriptor, len(apps)),
	}
	for _, app := range apps {
		if err := c.Register(app); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Register appends an app. Ids are permanent: an id already in the catalog
// is rejected rather than replaced.
func (c *Catalog) Register(app types.AppDescriptor) error {
	if app.ID == "" {
		return fmt.Errorf("app ID is required: %w", types.ErrInvalidTarget)
	}
	if app.Title == "" {
		return fmt.Errorf("app %s has no title: %w", app.ID, types.ErrInvalidTarget)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.apps[app.ID]; exists {
		return fmt.Errorf("app %s already registered: %w", app.ID, types.ErrInvalidTarget)
	}
	c.apps[app.ID] = app
	c.order = append(c.order, app.ID)
	return nil
}

// Find returns the descriptor for id
func (c *Catalog) Find(id string) (types.AppDescriptor, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	app, ok := c.apps[id]
	if !ok {
		return types.AppDescriptor{}, fmt.Errorf("%s: %w", id, ErrAppNotFound)
	}
	return app, nil
}

// List returns every descriptor in registration order
func (c *Catalog) List() []types.AppDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	apps := make([]types.AppDescriptor, 0, len(c.order))
	for _, id := range c.order {
		apps = append(apps, c.apps[id])
	}
	return apps
}

// Len returns the number of registered apps
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}
