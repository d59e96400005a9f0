package events

import (
	"fmt"
	"log/slog"

	"github.com/soundfield/festsim/internal/catalog"
	"github.com/soundfield/festsim/internal/festival"
)

// RespondToOption resolves an event through one of its type-specific
// interactive options: the option's cost is deducted and its effect deltas
// applied atomically. A failed check leaves the festival untouched.
func (e *Engine) RespondToOption(f *festival.Festival, ev *festival.DynamicEvent, optionID string) (festival.ResponseOutcome, error) {
	if ev.Resolved {
		return festival.ResponseOutcome{}, fmt.Errorf("event %s: %w", ev.ID, festival.ErrEventResolved)
	}

	var opt *catalog.EventOption
	for i := range ev.Options {
		if ev.Options[i].ID == optionID {
			opt = &ev.Options[i]
			break
		}
	}
	if opt == nil {
		return festival.ResponseOutcome{}, fmt.Errorf("option %q: %w", optionID, festival.ErrNotFound)
	}

	if f.Budget < opt.Cost {
		return festival.ResponseOutcome{}, fmt.Errorf("option %q costs %.0f: %w", optionID, opt.Cost, festival.ErrInsufficientBudget)
	}

	f.Budget -= opt.Cost
	f.Budget += opt.Effects.Budget
	f.ApplyReputation(opt.Effects.Reputation)
	ev.Resolved = true

	slog.Info("event resolved",
		"event", ev.Type,
		"option", optionID,
		"cost", opt.Cost,
		"budget", f.Budget,
		"reputation", f.Reputation,
	)

	return festival.ResponseOutcome{
		EventID:       ev.ID,
		OptionID:      optionID,
		Cost:          opt.Cost,
		Effectiveness: opt.Effectiveness,
		Applied:       opt.Effects,
		NewBudget:     f.Budget,
		NewReputation: f.Reputation,
	}, nil
}

// ResolveCrisisTier mitigates an event with a generic paid response tier.
// The mitigated effect is raw × (1 − effectiveness), with the tier's cost
// folded into the budget delta. When the event's raw effects were already
// applied on day advance, the avoided portion is credited back instead of
// re-applying, so the end state matches the mitigated total either way.
func (e *Engine) ResolveCrisisTier(f *festival.Festival, ev *festival.DynamicEvent, tier catalog.CrisisTier) (festival.ResponseOutcome, error) {
	resp, ok := e.tables.CrisisResponses[tier]
	if !ok {
		return festival.ResponseOutcome{}, fmt.Errorf("crisis tier %q: %w", tier, festival.ErrInvalidArgument)
	}
	if ev.Resolved {
		return festival.ResponseOutcome{}, fmt.Errorf("event %s: %w", ev.ID, festival.ErrEventResolved)
	}
	if f.Budget < resp.Cost {
		return festival.ResponseOutcome{}, fmt.Errorf("crisis tier %q costs %.0f: %w", tier, resp.Cost, festival.ErrInsufficientBudget)
	}

	mitigated := catalog.EventEffects{
		Reputation: ev.Effects.Reputation * (1 - resp.Effectiveness),
		Attendance: ev.Effects.Attendance * (1 - resp.Effectiveness),
		Budget:     ev.Effects.Budget*(1-resp.Effectiveness) - resp.Cost,
	}

	if ev.Applied {
		// Raw effects already landed; credit back the avoided share.
		f.Budget -= ev.Effects.Budget * resp.Effectiveness
		f.Budget -= resp.Cost
		f.ApplyReputation(-ev.Effects.Reputation * resp.Effectiveness)
	} else {
		f.Budget += mitigated.Budget
		f.ApplyReputation(mitigated.Reputation)
		ev.Applied = true
	}
	ev.Resolved = true

	slog.Info("crisis response",
		"event", ev.Type,
		"tier", tier,
		"cost", resp.Cost,
		"effectiveness", resp.Effectiveness,
		"budget", f.Budget,
		"reputation", f.Reputation,
	)

	return festival.ResponseOutcome{
		EventID:       ev.ID,
		Tier:          tier,
		Cost:          resp.Cost,
		Effectiveness: resp.Effectiveness,
		Applied:       mitigated,
		NewBudget:     f.Budget,
		NewReputation: f.Reputation,
	}, nil
}

// Protocols lists the emergency protocols available to a festival. Some
// only apply above a venue size threshold.
func (e *Engine) Protocols(f *festival.Festival) []catalog.EmergencyProtocol {
	var out []catalog.EmergencyProtocol
	for _, p := range e.tables.EmergencyProtocols {
		if f.VenueCapacity >= p.MinCapacity {
			out = append(out, p)
		}
	}
	return out
}

// ImplementProtocol purchases a preventive protocol.
func (e *Engine) ImplementProtocol(f *festival.Festival, p catalog.EmergencyProtocol) error {
	if f.Budget < p.Cost {
		return fmt.Errorf("protocol %q costs %.0f: %w", p.Type, p.Cost, festival.ErrInsufficientBudget)
	}
	f.Budget -= p.Cost
	slog.Info("protocol implemented", "type", p.Type, "cost", p.Cost, "budget", f.Budget)
	return nil
}
