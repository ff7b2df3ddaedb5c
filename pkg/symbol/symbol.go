package symbol

// Location carries the address metadata a dump reports for a symbol's primary
// definition site. Address is nil when the dump omitted it.
type Location struct {
	Address *uint64 `json:"address,omitempty" yaml:"address,omitempty"`
}

// Symbol is one named, sized, located entity reported by a binary-inspection
// dump. Instances are read-only inputs to the grouping pipeline: builders copy
// what they need and never mutate the originals.
//
// Size is a float64 because upstream dumps occasionally report garbage;
// non-finite values are normalized to zero during aggregation. Address is nil
// when the dump carried no address for the symbol.
type Symbol struct {
	ID              string    `json:"id" yaml:"id"`
	Name            string    `json:"name" yaml:"name"`
	Mangled         string    `json:"mangled,omitempty" yaml:"mangled,omitempty"`
	Size            float64   `json:"size" yaml:"size"`
	Section         string    `json:"section,omitempty" yaml:"section,omitempty"`
	Block           string    `json:"block,omitempty" yaml:"block,omitempty"`
	Window          string    `json:"window,omitempty" yaml:"window,omitempty"`
	Address         *uint64   `json:"address,omitempty" yaml:"address,omitempty"`
	PrimaryLocation *Location `json:"primaryLocation,omitempty" yaml:"primaryLocation,omitempty"`
}

// Addr is a convenience constructor for optional addresses in literals.
func Addr(v uint64) *uint64 {
	return &v
}
