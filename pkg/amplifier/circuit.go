package amplifier

// Circuit is the designed component set. The concrete type is one of the
// Topology* structs below and determines which fields apply.
type Circuit interface {
	Topology() Topology
	Fields() []Field
	circuit()
}

// TopologyA is a non-inverting amplifier with the offset injected through a
// divider from the reference (positive gain, positive offset).
type TopologyA struct {
	R1 float64 `json:"r_1" yaml:"r_1"`
	R2 float64 `json:"r_2" yaml:"r_2"`
	RF float64 `json:"r_f" yaml:"r_f"`
	RG float64 `json:"r_g" yaml:"r_g"`
}

func (TopologyA) Topology() Topology { return TopologyNameA }

func (c TopologyA) Fields() []Field {
	return []Field{
		ohms("r_1", c.R1),
		ohms("r_2", c.R2),
		ohms("r_f", c.RF),
		ohms("r_g", c.RG),
	}
}

func (TopologyA) circuit() {}

// TopologyB is a non-inverting amplifier whose gain resistor is split to
// pull the output down from a derived reference (positive gain, negative
// offset).
type TopologyB struct {
	RF        float64 `json:"r_f" yaml:"r_f"`
	RG        float64 `json:"r_g" yaml:"r_g"`
	RG1       float64 `json:"r_g1" yaml:"r_g1"`
	RG2       float64 `json:"r_g2" yaml:"r_g2"`
	VRefPrime float64 `json:"vref_prime" yaml:"vref_prime"`
	R1        float64 `json:"r_1" yaml:"r_1"`
}

func (TopologyB) Topology() Topology { return TopologyNameB }

func (c TopologyB) Fields() []Field {
	return []Field{
		ohms("r_f", c.RF),
		ohms("r_g", c.RG),
		ohms("r_g1", c.RG1),
		ohms("r_g2", c.RG2),
		volts("vref_prime", c.VRefPrime),
		ohms("r_1", c.R1),
	}
}

func (TopologyB) circuit() {}

// TopologyBEnhanced feeds the gain resistor from a buffered divider of the
// reference instead of splitting it.
type TopologyBEnhanced struct {
	RF        float64 `json:"r_f" yaml:"r_f"`
	RG        float64 `json:"r_g" yaml:"r_g"`
	VRefPrime float64 `json:"vref_prime" yaml:"vref_prime"`
	R1        float64 `json:"r_1" yaml:"r_1"`
	R2        float64 `json:"r_2" yaml:"r_2"`
}

func (TopologyBEnhanced) Topology() Topology { return TopologyNameBEnhanced }

func (c TopologyBEnhanced) Fields() []Field {
	return []Field{
		ohms("r_f", c.RF),
		ohms("r_g", c.RG),
		volts("vref_prime", c.VRefPrime),
		ohms("r_1", c.R1),
		ohms("r_2", c.R2),
	}
}

func (TopologyBEnhanced) circuit() {}

// TopologyC is an inverting amplifier with the offset applied to the
// non-inverting input (negative gain, positive offset).
type TopologyC struct {
	RF float64 `json:"r_f" yaml:"r_f"`
	RG float64 `json:"r_g" yaml:"r_g"`
	R2 float64 `json:"r_2" yaml:"r_2"`
	R1 float64 `json:"r_1" yaml:"r_1"`
}

func (TopologyC) Topology() Topology { return TopologyNameC }

func (c TopologyC) Fields() []Field {
	return []Field{
		ohms("r_f", c.RF),
		ohms("r_g", c.RG),
		ohms("r_2", c.R2),
		ohms("r_1", c.R1),
	}
}

func (TopologyC) circuit() {}

// TopologyD is an inverting summing amplifier taking the input through r_g1
// and the reference through r_g2 (negative gain, negative offset).
type TopologyD struct {
	RF  float64 `json:"r_f" yaml:"r_f"`
	RG1 float64 `json:"r_g1" yaml:"r_g1"`
	RG2 float64 `json:"r_g2" yaml:"r_g2"`
}

func (TopologyD) Topology() Topology { return TopologyNameD }

func (c TopologyD) Fields() []Field {
	return []Field{
		ohms("r_f", c.RF),
		ohms("r_g1", c.RG1),
		ohms("r_g2", c.RG2),
	}
}

func (TopologyD) circuit() {}

var (
	_ Circuit = TopologyA{}
	_ Circuit = TopologyB{}
	_ Circuit = TopologyBEnhanced{}
	_ Circuit = TopologyC{}
	_ Circuit = TopologyD{}
)

func ohms(name string, value float64) Field {
	return Field{Name: name, Value: value, Unit: UnitOhm}
}

func volts(name string, value float64) Field {
	return Field{Name: name, Value: value, Unit: UnitVolt}
}
