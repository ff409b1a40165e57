// Package tarock defines the vocabulary and data model of a four-player
// Tarock game as recorded in TAF notation.
//
// Cards and contracts are closed enumerations decoded from their notation
// codes, case-insensitively:
//
//	c, err := tarock.ParseCard("t22")      // tarock.T22
//	k, err := tarock.ParseContract("pb2")  // tarock.ContractPB2
//
// # Collections
//
// A Collection has a fixed number of slots chosen at construction (HandSize,
// TrickSize, TalonSize or DeckSize). Slots are either a Card or NoCard; Unknown
// marks a slot that is occupied by an unrecorded card. Two collections are equal
// when they hold the same cards regardless of order and have the same number
// of empty slots:
//
//	a := tarock.MustParseCollection(3, "H1H2H3")
//	b := tarock.MustParseCollection(3, "H3H2H1")
//	a.Equal(b) // true
//
// GameState aggregates four players, the current trick and both talon halves.
// Use package taf to decode a GameState from a notation line.
package tarock
