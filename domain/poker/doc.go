// Package poker implements the domain logic of a heads-up Texas Hold'em
// round: cards, the betting state machine, stages and settlement.
//
// # Core Types
//
// Table: the explicitly owned game state of one peer, holding both players,
// the pot and the community cards.
//
// Player: a name, a chip stack that survives across rounds, the hole cards
// and the folded flag.
//
// Resolver: the betting state machine of one stage. The host acts first; a
// bet or raise must be answered; check-check or a call closes the stage and
// a fold ends the round.
//
// # Game Flow
//
// A round walks the stages PreFlop → Flop → Turn → River → Showdown,
// revealing 3, 1 and 1 community cards. A fold at any stage skips every
// later one.
//
// # Settlement
//
// Showdown hands are scored concurrently with a 7-card evaluator and the pot
// is split evenly among the best hands, the first winner in seat order
// taking the odd chips.
package poker
