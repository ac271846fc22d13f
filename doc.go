// Package widark provides a retained-mode terminal widget engine for Go.
//
// Users import this single package for the core API: the widget tree and
// its lifecycle, the grid and fixed-position layout, DOM-style event
// dispatch (capture, target, bubble), surfaces drawn onto a tcell-backed
// screen, the load scheduler and the application shell that drives input.
// Ready-made widgets live in the components subpackage.
package widark
