// Package color estimates the spectral color of rendered control streams.
//
// An Analyzer averages windowed power spectra over consecutive frames
// (Welch's method, Hann unless SetWindow picks another) and fits a straight
// line to the spectrum in dB against log2 frequency. The slope, in dB per
// octave, separates white streams (about 0 dB/oct) from smoothed streams:
// a one-pole smoother tends toward -6 dB/oct above its corner and a random
// walk toward -6 dB/oct throughout.
package color
