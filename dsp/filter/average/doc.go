// Package average provides a fixed-capacity moving-average filter for raw
// unsigned noise samples.
//
// The filter keeps a 128-slot ring and averages the first Size slots by
// summing sample/Size per slot. Truncating each term, rather than the sum,
// keeps the result inside the input range without a wider accumulator and is
// part of the filter's observable output.
package average
