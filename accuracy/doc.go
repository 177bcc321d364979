// Package accuracy implements a reading-order-independent character
// accuracy measure for comparing an OCR transcription against a ground
// truth text, both already decomposed into lines.
//
// Reference: Flexible character accuracy measure for reading-order-
// independent evaluation, C. Clausner, S. Pletschacher, A. Antonacopoulos,
// Pattern Recognition Letters, Volume 131, March 2020, Pages 390-397.
// https://doi.org/10.1016/j.patrec.2020.02.003
//
// The package is intentionally total and side-effect free: every pair of
// input strings yields a (score, matches) result, there is no recoverable
// error condition in the matching engine, and a negative score is a
// deliberate, documented outcome rather than a failure.
package accuracy
