// math/point.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
	gomath "math"
)

const (
	MetersPerNM  = 1852
	NMPerMeter   = 1 / float64(MetersPerNM)
	FeetPerMeter = 3.28084
)

func MetersToNM(m float64) float64 { return m * NMPerMeter }

func NMToMeters(nm float64) float64 { return nm * MetersPerNM }

func KnotsToKPH(kts float64) float64 { return kts * MetersPerNM / 1000 }

///////////////////////////////////////////////////////////////////////////
// Point2

// Point2 is a position on the flat mission map, in meters. Following the
// simulator's convention, 0 (x) points north and 1 (y) points east.
type Point2 [2]float64

func (p Point2) X() float64 { return p[0] }
func (p Point2) Y() float64 { return p[1] }

func (p Point2) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", p[0], p[1])
}

// a+b
func Add2(a, b Point2) Point2 {
	return Point2{a[0] + b[0], a[1] + b[1]}
}

// a-b
func Sub2(a, b Point2) Point2 {
	return Point2{a[0] - b[0], a[1] - b[1]}
}

// a*s
func Scale2(a Point2, s float64) Point2 {
	return Point2{s * a[0], s * a[1]}
}

func Length2(v Point2) float64 {
	return gomath.Hypot(v[0], v[1])
}

// Distance2 returns the distance between two points in meters.
func Distance2(a, b Point2) float64 {
	return Length2(Sub2(a, b))
}

// NMDistance2 returns the distance between two points in nautical miles.
func NMDistance2(a, b Point2) float64 {
	return MetersToNM(Distance2(a, b))
}

// Heading2 returns the heading from |from| to |to| in degrees, measured
// clockwise from north.
func Heading2(from, to Point2) float64 {
	v := Sub2(to, from)
	return NormalizeHeading(Degrees(gomath.Atan2(v[1], v[0])))
}

// PointFromHeading returns the point that is dist meters away from p
// along the given heading.
func PointFromHeading(p Point2, heading, dist float64) Point2 {
	s, c := gomath.Sincos(Radians(heading))
	return Point2{p[0] + c*dist, p[1] + s*dist}
}

// Centroid2 returns the average of the given points; it returns the
// origin if none are provided.
func Centroid2(pts []Point2) Point2 {
	var c Point2
	if len(pts) == 0 {
		return c
	}
	for _, p := range pts {
		c = Add2(c, p)
	}
	return Scale2(c, 1/float64(len(pts)))
}
