// Package navigation sequences the wizard pages: it maps a trigger fired on a
// page to the next page, checks whether the move is allowed, and waits the
// transition's cosmetic delay before reporting the target.
package navigation
