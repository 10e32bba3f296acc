/*
Package domain contains the core data model of the trip wizard.

It defines the records each wizard page produces, the consolidated Snapshot the
aggregator builds from them, and the cost breakdown derived from the trip. This
package is kept pure and free of I/O: stores, catalogs and renderers live in
adapters and talk to it through the interfaces in package ports.

# Key Entities

  - UserProfile: who is travelling (entered on the profile page).
  - TripParameters: how many travellers and for how many days.
  - Destination and Guide: the selections made on the catalog pages.
  - CostBreakdown: the itemized split of the total trip cost.
  - Snapshot: the consolidated view of all of the above as of the last load.
*/
package domain
