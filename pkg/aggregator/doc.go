/*
Package aggregator consolidates everything the wizard pages stored into a single
Snapshot and derives the itemized trip cost.

An Aggregator reads two stores: the session-scoped one (profile and trip
parameters) and the durable one (destination and guide selections). LoadAll
rebuilds the snapshot from scratch on every call; GetAll returns the last one.
Missing fields never fail a load: they degrade to defaults, and the cost step
reports its own error marker when an input is absent.

Exactly one Aggregator exists per wizard session. It is constructed by the
composition root (see tripwizard.New) and passed to whoever needs it.
*/
package aggregator
