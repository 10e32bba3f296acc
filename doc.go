/*
Package tripwizard is a multi-step trip-booking wizard.

A traveller moves through five pages: home, planner, destinations, guides and
confirmation. Each page writes its fields into one of two key-value stores: a
session-scoped store for profile and trip parameters, and a durable store for
the chosen destination and guide. On the confirmation page the Trip Data
Aggregator reads everything back, fills absent fields with defaults and derives
an itemized cost breakdown.

# Architecture

The package follows a hexagonal layout. Storage and the destination catalog
are ports (pkg/ports) with memory, file, redis and loam adapters
(pkg/adapters/...). The Wizard type is the composition root: it owns exactly
one Aggregator and one Navigator for a session.

# Usage

	wiz, err := tripwizard.New(
		tripwizard.WithSessionStore(memory.NewStore()),
		tripwizard.WithDurableStore(file.New(".tripwizard/local.json")),
	)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	_ = pages.SubmitTrip(ctx, wiz.Session(), 2, 5)

	snap := wiz.Load(ctx)
	fmt.Println(snap.Costs.Total)

Cost breakdowns are only produced once a destination price, a traveller count
and a trip duration are all present; otherwise Costs.Error carries
"Missing data for cost calculation.".
*/
package tripwizard
