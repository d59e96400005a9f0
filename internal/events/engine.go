// Package events implements the dynamic event engine: weighted daily event
// generation, interactive and tiered crisis resolution, weather forecasts,
// and risk assessment.
package events

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/soundfield/festsim/internal/catalog"
	"github.com/soundfield/festsim/internal/festival"
)

// Engine generates and resolves dynamic events. All randomness comes from
// the injected generator so runs are reproducible under a fixed seed.
type Engine struct {
	tables *catalog.Tables
	rng    *rand.Rand
}

// New creates an event engine over the given catalog and random source.
func New(tables *catalog.Tables, rng *rand.Rand) *Engine {
	return &Engine{tables: tables, rng: rng}
}

// GenerateDailyEvents runs the daily multi-Bernoulli draw: each catalog
// event type fires independently against its state-adjusted probability, so
// zero, one, or several events can land on the same day.
func (e *Engine) GenerateDailyEvents(f *festival.Festival) []*festival.DynamicEvent {
	var out []*festival.DynamicEvent
	for _, et := range e.tables.EventTypes {
		p := et.Probability

		// Struggling festivals attract trouble; strong reputations deflect it.
		if f.Reputation < 30 {
			p *= 1.5
		} else if f.Reputation > 80 {
			p *= 0.7
		}
		// Pressure mounts as the festival approaches.
		if f.DaysRemaining < 30 {
			p *= 1.3
		}

		if e.rng.Float64() < p {
			out = append(out, e.instantiate(et, f))
		}
	}
	return out
}

// instantiate builds a concrete event from its type definition, scaling
// attendance and budget deltas with venue size and naming a hired
// participant when the type calls for one.
func (e *Engine) instantiate(et catalog.EventType, f *festival.Festival) *festival.DynamicEvent {
	scale := float64(f.VenueCapacity) / 10000

	effects := et.Effects
	effects.Attendance *= scale
	effects.Budget *= scale
	// Reputation deltas do not scale with venue size.

	desc := et.Description
	switch et.Involves {
	case "artist":
		if len(f.Artists) > 0 {
			a := f.Artists[e.rng.Intn(len(f.Artists))]
			desc = fmt.Sprintf("%s (%s)", et.Description, a.Name)
		}
	case "vendor":
		if len(f.Vendors) > 0 {
			v := f.Vendors[e.rng.Intn(len(f.Vendors))]
			desc = fmt.Sprintf("%s (%s)", et.Description, v.Name)
		}
	}

	return &festival.DynamicEvent{
		ID:          uuid.NewString(),
		Type:        et.Name,
		Severity:    et.Severity,
		Description: desc,
		Effects:     effects,
		Solutions:   et.Solutions,
		Options:     et.Options,
		Day:         f.DaysRemaining,
	}
}

// ApplyEffects applies an event's passive budget and reputation deltas to
// the festival, once. Positive and negative events mutate the same way.
// The attendance fraction is informational; it feeds projections, not state.
func ApplyEffects(f *festival.Festival, ev *festival.DynamicEvent) {
	if ev.Applied {
		return
	}
	f.Budget += ev.Effects.Budget
	f.ApplyReputation(ev.Effects.Reputation)
	ev.Applied = true
}
