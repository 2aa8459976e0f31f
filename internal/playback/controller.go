// Package playback decides which of a scroll container's mounted videos
// should be playing, based on the latest viewport visibility reports, and
// drives the registered media elements accordingly.
package playback

import (
	"sync"

	"github.com/rs/zerolog"
)

// ActiveThreshold is the fraction of a video's area that must be inside
// the viewport before it counts as active.
const ActiveThreshold = 0.5

// VisibilityReport is the latest intersection signal for one mounted item.
type VisibilityReport struct {
	ItemID string  `json:"item_id"`
	Ratio  float64 `json:"ratio"`
}

// DecideActiveItem picks the item that should be playing from the latest
// visibility reports: the one with the highest ratio at or above the
// threshold, earlier reports winning ties. The decision derives solely from
// the reports passed in, never from accumulated history, so repeated calls
// with the same input are idempotent.
func DecideActiveItem(reports []VisibilityReport) (string, bool) {
	active := ""
	best := 0.0
	for _, r := range reports {
		if r.Ratio >= ActiveThreshold && r.Ratio > best {
			active = r.ItemID
			best = r.Ratio
		}
	}
	return active, active != ""
}

// Player is the slice of a media element the controller drives. Play may be
// rejected by the host's autoplay policy or interrupted by a fast scroll;
// both are expected conditions.
type Player interface {
	Play(muted bool) error
	Pause()
	Seek(seconds float64)
}

// Controller keeps at most one registered item playing. Inactive items are
// paused and rewound to the start so scrolling back to them restarts
// playback from the beginning.
type Controller struct {
	mu     sync.Mutex
	items  map[string]Player
	active string
	logger zerolog.Logger
}

// NewController creates a controller with no registered items.
func NewController(logger zerolog.Logger) *Controller {
	return &Controller{
		items:  make(map[string]Player),
		logger: logger,
	}
}

// Register adds a mounted media element under the given id.
func (c *Controller) Register(id string, p Player) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[id] = p
}

// Unregister removes an unmounted media element. Removing the active item
// clears the active state without touching the element.
func (c *Controller) Unregister(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, id)
	if c.active == id {
		c.active = ""
	}
}

// Apply reconciles the registered items against the latest visibility
// reports: the active item starts muted playback from its current position,
// everything else is paused and rewound. A rejected play attempt is logged
// and ignored, never retried.
func (c *Controller) Apply(reports []VisibilityReport) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	active, ok := DecideActiveItem(reports)
	if active != "" {
		if _, registered := c.items[active]; !registered {
			active, ok = "", false
		}
	}

	for id, item := range c.items {
		if id == active {
			continue
		}
		item.Pause()
		item.Seek(0)
	}

	if ok && active != c.active {
		if err := c.items[active].Play(true); err != nil {
			c.logger.Debug().Err(err).Str("item_id", active).Msg("autoplay rejected")
		}
	}
	c.active = active
	return active, ok
}

// Active returns the currently playing item id, if any.
func (c *Controller) Active() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active, c.active != ""
}
