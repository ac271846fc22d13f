// Package layout implements the geometry of the widget engine.
//
// It has three pure entry points, none of which know about widgets:
// [Grid] splits a parent's content box into rows and columns for
// relatively positioned children, [Arrange] resolves the rectangle of an
// absolutely positioned ("fixed") child and [Place] computes where a
// widget's formatted content starts inside its own rectangle.
// Types are re-exported through the root widark package for public consumption.
//
// Coordinates are in screen order: rows (Y) first, then columns (X).
package layout
