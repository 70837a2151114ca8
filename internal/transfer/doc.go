// Package transfer implements statistical color transfer between two images.
//
// The method follows Reinhard-style mean/variance matching: both images are
// converted into a working color space (Lab, RGB, HSV, or XYZ), each channel
// value is moved into the natural-log domain, and every channel of the target
// image is recentered and rescaled so its log-domain mean and standard
// deviation match those of the reference image. A per-channel blend rate in
// [0,1] controls how much of the matched value replaces the original.
//
// # Working Domain
//
// All four spaces are expressed in a non-negative 0-255 working domain
// (the scaling OpenCV uses for 8-bit Lab/HSV/XYZ images), so the log
// transform is well defined for every channel. Non-positive values are
// floored to a small epsilon before the logarithm is taken.
//
// # State Model
//
// Controller owns the active color space and the three blend rates and is
// the only mutator of that state. Every mode or rate change synchronously
// recomputes the full output image, which is replaced wholesale; callers
// holding a previous output never observe a partial update. Controller is
// not safe for concurrent use; drive it from a single goroutine.
//
// # Determinism
//
// Per-pixel stages run row-parallel internally, but each goroutine writes a
// disjoint slice range and the statistics reduction is sequential, so two
// recomputes with identical inputs produce bit-identical outputs.
package transfer
