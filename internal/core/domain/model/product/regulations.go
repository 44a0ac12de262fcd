package product

// Regulations is the set of handling flags that apply to a product.
// All six flags are plain booleans; any combination is valid.
type Regulations struct {
	Fragile      bool
	Lithium      bool
	Hazardous    bool
	Refrigerated bool
	Valuable     bool
	Oversized    bool
}

// Labels returns display names for the flags that are set, in a stable order.
// The report projections use these when rendering the regulations section.
func (r Regulations) Labels() []string {
	labels := make([]string, 0, 6)
	if r.Fragile {
		labels = append(labels, "Fragile")
	}
	if r.Lithium {
		labels = append(labels, "Lithium battery")
	}
	if r.Hazardous {
		labels = append(labels, "Hazardous material")
	}
	if r.Refrigerated {
		labels = append(labels, "Cold chain")
	}
	if r.Valuable {
		labels = append(labels, "High value")
	}
	if r.Oversized {
		labels = append(labels, "Oversized cargo")
	}
	return labels
}

// Any reports whether at least one handling flag is set.
func (r Regulations) Any() bool {
	return r.Fragile || r.Lithium || r.Hazardous || r.Refrigerated || r.Valuable || r.Oversized
}
