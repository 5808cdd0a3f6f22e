package component

// PlayerTag marks entities driven by local input.
type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// Name labels an entity in logs and traces.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
