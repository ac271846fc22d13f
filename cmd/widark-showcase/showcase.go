package main

import (
	"context"
	"fmt"
	"time"

	"github.com/widark/widark"
	"github.com/widark/widark/components"
)

// build lays out the showcase under the app's root.
func build(root *widark.Widget) {
	modal := components.NewModal(root, nil)
	modal.On("close", func(*widark.Event) error {
		modal.Close()
		return nil
	})
	components.NewLabel(modal.Body(), "Click outside to close", widark.WithGrid(0, 0))
	components.NewButton(modal.Body(), "Close", func(*widark.Event) error {
		modal.Close()
		return nil
	}, widark.WithGrid(1, 0))

	master := components.NewFrame(root, "Master", widark.WithGrid(0, 0))
	components.NewLabel(master.Widget, "Label:", widark.WithGrid(0, 0))
	components.NewButton(master.Widget, "Create", func(*widark.Event) error {
		if !modal.Launched() {
			modal.Launch(5, 5, 8, 30)
		}
		return nil
	}, widark.WithGrid(0, 1))
	components.NewButton(master.Widget, "Delete", func(*widark.Event) error {
		modal.Close()
		return nil
	}, widark.WithGrid(0, 2))
	details := components.NewFrame(master.Widget, "Details", widark.WithGrid(1, 0), widark.WithSpan(1, 3), widark.WithWeight(3, 1))
	details.TitleStyle(widark.Style{Color: widark.DANGER})
	components.NewEntry(details.Widget, "abcdario", widark.WithStyle(widark.Style{Color: widark.LIGHT}))

	world := components.NewFrame(root, "World", widark.WithGrid(1, 0))
	world.TitleStyle(widark.Style{Color: widark.WARNING})
	widark.NewWithBehavior(world.Widget, clock{}, widark.WithStyle(widark.Style{Align: "C"}))

	content := components.NewFrame(root, "Content", widark.WithGrid(0, 1), widark.WithSpan(2, 1), widark.WithWeight(1, 3))
	buildContent(content)
}

func buildContent(content *components.Frame) {
	buttons := components.NewFrame(content.Widget, "", widark.WithGrid(0, 0))
	focus := func(ev *widark.Event) error {
		if w, ok := ev.Target.(*widark.Widget); ok {
			w.Focus()
		}
		return nil
	}
	styles := []struct {
		label string
		style widark.Style
	}{
		{"Content UP", widark.Style{Color: widark.INFO, BackgroundColor: widark.DANGER.Reverse(), Border: widark.BorderSingle}},
		{"MIDDLE UP BUTTON", widark.Style{Color: widark.WARNING, Border: widark.BorderRounded}},
		{"MIDDLE DOWN BUTTON", widark.Style{Color: widark.DANGER, Border: widark.BorderDouble}},
	}
	for i, s := range styles {
		components.NewButton(buttons.Widget, s.label, focus, widark.WithGrid(i, 0), widark.WithStyle(s.style))
	}
	picked := components.NewLabel(buttons.Widget, "Nothing picked", widark.WithGrid(len(styles), 0))

	list := components.NewListbox(content.Widget,
		components.WithWidgetOptions(widark.WithGrid(0, 1)),
		components.WithItemStyle(widark.Style{Color: widark.SECONDARY}),
	)
	widark.NewWithBehavior(content.Widget, feed{list: list}, widark.WithPosition(widark.Fixed))
	list.SetCommand(func(ev *widark.Event) error {
		if w, ok := ev.Target.(*widark.Widget); ok && w != list.Widget {
			picked.Update("Picked: " + w.Content())
		}
		return nil
	})

	right := components.NewFrame(content.Widget, "", widark.WithGrid(0, 2))
	right.On("click", func(ev *widark.Event) error {
		right.Update(fmt.Sprintf("Clicked on: y=%03d, x=%03d", ev.Y, ev.X))
		return nil
	})
}

// clock shows the time, updated from its load every second.
type clock struct{ widark.BaseBehavior }

func (clock) Load(ctx context.Context, w *widark.Widget) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		now := time.Now().Format(time.TimeOnly)
		w.Post(func() { w.Update(now) })
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// feed fills a list from a slow source without blocking the loop.
type feed struct {
	widark.BaseBehavior
	list *components.Listbox
}

func (f feed) Load(ctx context.Context, w *widark.Widget) error {
	select {
	case <-ctx.Done():
		return nil
	case <-time.After(500 * time.Millisecond):
	}
	data := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"}
	w.Post(func() {
		f.list.SetData(data...)
		f.list.Connect()
	})
	return nil
}
