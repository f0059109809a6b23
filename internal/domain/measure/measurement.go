package measure

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	InchesPerFoot = 12.0
	CmPerInch     = 2.54
	CmPerFoot     = 30.48
)

type Unit int

const (
	UnitNone Unit = iota
	UnitImperial
	UnitMetric
)

func (u Unit) String() string {
	switch u {
	case UnitImperial:
		return "ft/in"
	case UnitMetric:
		return "cm"
	default:
		return "none"
	}
}

// Input is the wire and storage shape of a single linear extent.
type Input struct {
	Feet        float64 `json:"feet" bson:"feet"`
	Inches      float64 `json:"inches" bson:"inches"`
	Centimeters float64 `json:"centimeters" bson:"centimeters"`
}

// Measurement is one linear extent in exactly one encoding, chosen at construction.
type Measurement struct {
	unit   Unit
	feet   float64
	inches float64
	cm     float64
}

// New builds a Measurement from the three-field triple.
// Feet/inches wins whenever either of them is non-zero; centimeters is used only on its own.
func New(feet, inches, cm float64) Measurement {
	if feet != 0 && inches != 0 && cm != 0 {
		cm = 0
	}
	switch {
	case feet != 0 || inches != 0:
		return Measurement{unit: UnitImperial, feet: feet, inches: inches}
	case cm != 0:
		return Measurement{unit: UnitMetric, cm: cm}
	default:
		return Measurement{}
	}
}

func Imperial(feet, inches float64) Measurement { return New(feet, inches, 0) }

func Metric(cm float64) Measurement { return New(0, 0, cm) }

func (in Input) Measurement() Measurement { return New(in.Feet, in.Inches, in.Centimeters) }

func (m Measurement) Unit() Unit { return m.unit }

func (m Measurement) IsSet() bool { return m.unit != UnitNone }

// Fields returns the stored triple; fields of the other encoding are zero.
func (m Measurement) Fields() Input {
	return Input{Feet: m.feet, Inches: m.inches, Centimeters: m.cm}
}

func (m Measurement) TotalFeet() float64 {
	if m.unit == UnitMetric {
		return m.cm / CmPerFoot
	}
	return m.feet + m.inches/InchesPerFoot
}

func (m Measurement) TotalInches() float64 {
	if m.unit == UnitMetric {
		return m.cm / CmPerInch
	}
	return m.feet*InchesPerFoot + m.inches
}

func (m Measurement) TotalCentimeters() float64 {
	if m.unit == UnitMetric {
		return m.cm
	}
	return (m.feet*InchesPerFoot + m.inches) * CmPerInch
}

func (m Measurement) MarshalJSON() ([]byte, error) { return json.Marshal(m.Fields()) }

func (m *Measurement) UnmarshalJSON(data []byte) error {
	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*m = in.Measurement()
	return nil
}

func (m Measurement) MarshalBSON() ([]byte, error) { return bson.Marshal(m.Fields()) }

func (m *Measurement) UnmarshalBSON(data []byte) error {
	var in Input
	if err := bson.Unmarshal(data, &in); err != nil {
		return err
	}
	*m = in.Measurement()
	return nil
}
