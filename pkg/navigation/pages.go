package navigation

import "time"

// Page identifies a wizard page.
type Page string

const (
	PageHome         Page = "home"
	PagePlanner      Page = "planner"
	PageDestinations Page = "destinations"
	PageGuides       Page = "guides"
	PageConfirmation Page = "confirmation"
)

// Pages lists the wizard pages in flow order.
var Pages = []Page{PageHome, PagePlanner, PageDestinations, PageGuides, PageConfirmation}

// Trigger identifies a UI action that may move the wizard forward.
type Trigger string

const (
	TriggerBookNow           Trigger = "book_now"
	TriggerCalculatePlan     Trigger = "calculate_plan"
	TriggerSelectDestination Trigger = "select_destination"
	TriggerNextActivities    Trigger = "next_activities"
	TriggerNextConfirmation  Trigger = "next_confirmation"
)

// View is the part of the page state guards look at.
type View struct {
	// GuideSelected is true when a guide option carries the selected marker.
	GuideSelected bool
	// HometownVisible is true when the "explore without a guide" panel is shown.
	HometownVisible bool
}

// Guard decides whether a transition may happen.
type Guard func(View) bool

// Transition moves the wizard from one page to another on a trigger.
type Transition struct {
	From    Page
	Trigger Trigger
	To      Page
	Delay   time.Duration
	Guard   Guard
}

// GuideChosen allows leaving the guide page once a guide is picked or the
// traveller opted out.
func GuideChosen(v View) bool {
	return v.GuideSelected || v.HometownVisible
}

// DefaultTransitions is the standard wizard flow.
func DefaultTransitions() []Transition {
	return []Transition{
		{From: PageHome, Trigger: TriggerBookNow, To: PagePlanner},
		{From: PagePlanner, Trigger: TriggerCalculatePlan, To: PageDestinations, Delay: 800 * time.Millisecond},
		{From: PageDestinations, Trigger: TriggerSelectDestination, To: PageGuides, Delay: 500 * time.Millisecond},
		{From: PageDestinations, Trigger: TriggerNextActivities, To: PageGuides},
		{From: PageGuides, Trigger: TriggerNextConfirmation, To: PageConfirmation, Delay: 800 * time.Millisecond, Guard: GuideChosen},
	}
}
