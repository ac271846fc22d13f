// Package components provides ready-made widgets built on the public
// widark widget contract: labels, buttons, frames, text entries, lists,
// modals and spacers.
//
// Each component wraps a *widark.Widget and installs its own Behavior, so
// it can be styled, placed and listened to like any other widget:
//
//	ok := components.NewButton(root, "OK", func(*widark.Event) error {
//		return nil
//	}, widark.WithGrid(1, 0))
//	ok.Style(widark.Style{Color: widark.SUCCESS})
package components
