// Package engine runs the two-channel control-rate noise voice.
//
// An Engine owns one instance of every generator and filter. Each call to
// Tick draws a raw value from the primary source, scales it onto channel 0,
// runs it through the selected shaper, and scales the result onto channel 1.
//
// Encoder movement nudges several parameters at once: the target-seek slope,
// the moving-average size, the exponential coefficient, and one of the two
// ladder parameters chosen by the edit mode. The button toggles the edit mode.
//
// An Engine is driven by a single host loop and is not safe for concurrent
// use. Tick, OnEncoderMove and OnButtonPress never allocate or fail.
package engine
