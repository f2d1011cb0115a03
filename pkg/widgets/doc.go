// Package widgets provides the layout nodes of a fern scene.
//
// Every widget implements [Widget]: Measure and Arrange form the two layout
// passes, Render paints into a [raster.Rasterizer] from the arranged rects.
// Widgets are pointers; a node owns its children and a child must not be
// shared between parents.
//
// # Widget Construction
//
// Struct literals give full control:
//
//	btn := &Button{ButtonConfig: ButtonConfig{
//	    X: 300, Y: 250, Width: 200, Height: 50,
//	    NormalColor: graphics.ColorGreen,
//	    HoverColor:  graphics.ColorLightGreen,
//	    PressColor:  graphics.ColorDarkGreen,
//	    Label:       "CLICK ME",
//	    TextScale:   2,
//	}}
//
// Helpers cover the common layouts:
//
//	col := ColumnOf(
//	    VSpace(30),
//	    Centered(ContainerOf(graphics.ColorDarkBlue, 280, 280, nil)),
//	    Spacer(),
//	)
//
// Also: RowOf, PaddingAll, PaddingSym, PaddingOnly, SizedBoxOf, HSpace,
// TextAt, TextOf, ButtonOf.
//
// # Expanding Children
//
// Inside a [Row] or [Column], a [SizedBox], [Container] or [Button] with a
// zero dimension, and any widget with Expand set, shares the space left over
// by its fixed siblings. N expanding children each get floor(free/N) pixels;
// the first one also gets the remainder so the total is exact.
package widgets
