/*
Package widget implements the window manager's components: the round
title-bar buttons, the title bar, and the application window that owns a
window's geometry and turns pointer input into drags.

A drag session runs from a pointer-down on a window's title bar to the next
pointer-up anywhere on the surface:

	surface := pointer.NewBus()
	win, err := widget.NewApplicationWindow(surface, "Notes", widget.Text("hello"))
	if err != nil {
		// handle error
	}
	win.HandleTitleBarPointer(pointer.At(pointer.Down, 210, 200))
	surface.Publish(pointer.At(pointer.Move, 250, 220))
	surface.Publish(pointer.At(pointer.Up, 250, 220))

While a window is dragging it holds a move and an up subscription on the
surface; an idle window holds none.
*/
package widget
