package component

// Input stores the movement intent read for an entity this tick. The four
// axes are independent; opposite axes cancel when composed.
type Input struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Jump    bool
	Dash    bool
}

// Moving reports whether any axis is held.
func (i Input) Moving() bool {
	return i.Forward || i.Back || i.Left || i.Right
}

var InputComponent = NewComponent[Input]()
