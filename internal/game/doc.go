// Package game defines the values exchanged with the host poker engine on
// every decision: streets, legal actions with their bounds, seats, the
// hand's wager history and the decision request that bundles them.
//
// The host engine owns betting rounds, pot accounting and showdown; these
// types only describe what the engine reports at a decision point.
package game
