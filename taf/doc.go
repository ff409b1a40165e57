// Package taf decodes TAF, the single-line Tarock position notation.
//
// A line has five whitespace-separated fields:
//
//	<cards> <contract> <calls> <flag> <reserved>
//
// The cards group lists both talon halves, every player's hand and won
// tricks, and the current trick:
//
//	T0/T1#H0/S0#H1/S1#H2/S2#H3/S3#ST
//
// The contract group pairs contract codes with 1-based player digits and ends
// with the called king (or "-"), the teammate digit (or "-") and the taken
// talon ("1", "2", "12" or "-"), e.g. "R1XK-1". The calls group holds four
// "/"-separated fields drawn in order from "1234TUKV". The flag is "J"/"j" or
// "-". The reserved field is kept verbatim.
//
//	st, err := taf.Parse(line)
//	if errors.Is(err, taf.ErrInvalidCallsGroup) {
//	    // ...
//	}
package taf
