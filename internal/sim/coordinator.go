// Package sim wires the festival engine together and orchestrates the
// day-by-day state machine: advancing time, hiring, campaigns, and the
// cross-cutting summary queries.
package sim

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/soundfield/festsim/internal/catalog"
	"github.com/soundfield/festsim/internal/economy"
	"github.com/soundfield/festsim/internal/events"
	"github.com/soundfield/festsim/internal/festival"
)

// Coordinator runs simulation operations over one festival aggregate at a
// time. Operations are synchronous and indivisible; concurrent mutation of
// the same festival must be serialized by the caller.
type Coordinator struct {
	tables *catalog.Tables
	events *events.Engine
	rng    *rand.Rand
}

// New creates a coordinator over the given catalog and seeded random source.
func New(tables *catalog.Tables, rng *rand.Rand) *Coordinator {
	return &Coordinator{
		tables: tables,
		events: events.New(tables, rng),
		rng:    rng,
	}
}

// EventEngine exposes the underlying event engine for direct resolution
// calls.
func (c *Coordinator) EventEngine() *events.Engine {
	return c.events
}

// AdvanceDay moves the festival one day closer, generates the day's dynamic
// events, and applies their passive effects exactly once each. Interactive
// resolution of the returned events is a separate, optional step.
func (c *Coordinator) AdvanceDay(f *festival.Festival) (festival.DaySummary, error) {
	if f.Ended() {
		return festival.DaySummary{}, fmt.Errorf("festival %d: %w", f.ID, festival.ErrFestivalEnded)
	}

	f.DaysRemaining--

	evs := c.events.GenerateDailyEvents(f)
	for _, ev := range evs {
		events.ApplyEffects(f, ev)
	}

	weather := c.events.Forecast()

	slog.Info("day advanced",
		"festival", f.Name,
		"days_remaining", f.DaysRemaining,
		"events", len(evs),
		"weather", weather.Name,
		"budget", f.Budget,
		"reputation", f.Reputation,
	)

	return festival.DaySummary{
		DaysRemaining: f.DaysRemaining,
		Events:        evs,
		Weather:       weather.Name,
		Budget:        f.Budget,
		Reputation:    f.Reputation,
	}, nil
}

// HireArtist registers an artist if the festival can cover the fee.
func (c *Coordinator) HireArtist(f *festival.Festival, a *festival.Artist) error {
	if f.Ended() {
		return fmt.Errorf("festival %d: %w", f.ID, festival.ErrFestivalEnded)
	}
	if f.Budget < a.Fee {
		return fmt.Errorf("artist fee %.0f exceeds budget %.0f: %w", a.Fee, f.Budget, festival.ErrInsufficientBudget)
	}

	f.Budget -= a.Fee
	a.FestivalID = f.ID
	f.Artists = append(f.Artists, a)

	slog.Info("artist hired", "festival", f.Name, "artist", a.Name, "genre", a.Genre, "fee", a.Fee, "budget", f.Budget)
	return nil
}

// HireVendor registers a vendor if the festival can cover the cost.
func (c *Coordinator) HireVendor(f *festival.Festival, v *festival.Vendor) error {
	if f.Ended() {
		return fmt.Errorf("festival %d: %w", f.ID, festival.ErrFestivalEnded)
	}
	if f.Budget < v.Cost {
		return fmt.Errorf("vendor cost %.0f exceeds budget %.0f: %w", v.Cost, f.Budget, festival.ErrInsufficientBudget)
	}

	f.Budget -= v.Cost
	v.FestivalID = f.ID
	f.Vendors = append(f.Vendors, v)

	slog.Info("vendor hired", "festival", f.Name, "vendor", v.Name, "specialty", v.Specialty, "cost", v.Cost, "budget", f.Budget)
	return nil
}

// AssignSlot places an artist in a performance slot. Each slot holds at
// most one artist per festival.
func (c *Coordinator) AssignSlot(f *festival.Festival, artistID int64, slot string) error {
	if _, ok := c.tables.PerformanceSlots[slot]; !ok {
		return fmt.Errorf("slot %q: %w", slot, festival.ErrInvalidArgument)
	}

	artist := f.ArtistByID(artistID)
	if artist == nil {
		return fmt.Errorf("artist %d: %w", artistID, festival.ErrNotFound)
	}

	for _, other := range f.Artists {
		if other.ID != artistID && other.PerformanceSlot == slot {
			return fmt.Errorf("slot %q held by %s: %w", slot, other.Name, festival.ErrSlotTaken)
		}
	}

	artist.PerformanceSlot = slot
	slog.Info("slot assigned", "festival", f.Name, "artist", artist.Name, "slot", slot)
	return nil
}

// RespondToEvent resolves a dynamic event through one of its interactive
// options.
func (c *Coordinator) RespondToEvent(f *festival.Festival, ev *festival.DynamicEvent, optionID string) (festival.ResponseOutcome, error) {
	return c.events.RespondToOption(f, ev, optionID)
}

// ResolveCrisis resolves a dynamic event with a generic crisis tier.
func (c *Coordinator) ResolveCrisis(f *festival.Festival, ev *festival.DynamicEvent, tier catalog.CrisisTier) (festival.ResponseOutcome, error) {
	return c.events.ResolveCrisisTier(f, ev, tier)
}

// Finances runs the full financial projection for the festival.
func (c *Coordinator) Finances(f *festival.Festival) festival.FinancialSummary {
	return economy.Summary(f, c.rng)
}
