package component

import "image/color"

// Tint is the colour a renderer should draw the entity with.
type Tint struct {
	Color color.RGBA
}

var TintComponent = NewComponent[Tint]()
