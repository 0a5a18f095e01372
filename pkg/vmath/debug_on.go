//go:build vmathdebug

package vmath

import "log"

// Built with -tags vmathdebug these report degenerate inputs. Results
// are the same as in a normal build.

func debugZeroLength(l float32) {
	if l == 0 {
		log.Printf("vmath: normalizing a zero-length vector")
	}
}

func debugSingular(det float32) {
	if abs32(det) < 1e-12 {
		log.Printf("vmath: inverting a singular matrix (det=%g)", det)
	}
}

func debugProjection(aspect, near, far float32) {
	if aspect == 0 {
		log.Printf("vmath: perspective with zero aspect")
	}
	if far == near {
		log.Printf("vmath: perspective with far == near (%g)", near)
	}
}
