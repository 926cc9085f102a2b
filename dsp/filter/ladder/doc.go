// Package ladder provides a four-stage feedback ladder over raw unsigned noise
// samples.
//
// Each stage is the one-pole recurrence y = c*x + (1-c)*y[n-1], and the
// stages are cascaded so that stage k feeds stage k+1. Before the cascade
// runs, the last stage scaled by the resonance is subtracted from the input.
// Stage outputs are held as unsigned integers; negative intermediate values
// saturate to zero instead of wrapping.
//
// The filter is a control-rate shaper, not a model of an analog ladder: there
// is no cutoff tuning, no drive nonlinearity, and no oversampling.
package ladder
