//go:build !vmathdebug

package vmath

func debugZeroLength(float32) {}

func debugSingular(float32) {}

func debugProjection(aspect, near, far float32) {}
