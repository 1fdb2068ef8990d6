package engine

import (
	"errors"
	"strconv"

	"dataproc/internal/models"
)

// Kind is the declared type of a column.
type Kind uint8

const (
	KindUint Kind = iota + 1
	KindFloat
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindUint:
		return "unsigned integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Value is a converted cell. Only the field matching the column's Kind is set.
type Value struct {
	Null  bool
	Uint  uint32
	Float float64
	Text  string
}

// Column describes one named column: its kind, whether an empty cell means
// "absent", and where the converted value lands in a Passenger.
type Column struct {
	Name     string
	Kind     Kind
	Optional bool

	assign func(p *models.Passenger, v Value)
}

// Parse converts a raw cell according to the column's kind.
func (c Column) Parse(raw string) (Value, error) {
	if c.Optional && raw == "" {
		return Value{Null: true}, nil
	}

	switch c.Kind {
	case KindUint:
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return Value{}, c.fieldError(raw, err)
		}
		return Value{Uint: uint32(n)}, nil
	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, c.fieldError(raw, err)
		}
		return Value{Float: f}, nil
	case KindText:
		return Value{Text: raw}, nil
	}
	return Value{}, c.fieldError(raw, errors.New("unsupported kind"))
}

func (c Column) fieldError(raw string, err error) *FieldError {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	return &FieldError{Column: c.Name, Kind: c.Kind, Value: raw, Err: err}
}

// Schema is an ordered set of column descriptors matched against a header by name.
type Schema struct {
	Columns []Column
}

func (s Schema) Names() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// Binding maps each schema column to its position in a concrete header.
type Binding struct {
	schema Schema
	index  []int
}

// Bind resolves every declared column against header. Extra header columns
// are ignored, even when repeated. A declared column that is missing or
// appears twice is a schema error.
func (s Schema) Bind(header []string) (*Binding, error) {
	declared := make(map[string]bool, len(s.Columns))
	for _, c := range s.Columns {
		declared[c.Name] = true
	}

	positions := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := positions[name]; dup {
			if declared[name] {
				return nil, &SchemaError{Column: name, Err: ErrDuplicateColumn}
			}
			continue
		}
		positions[name] = i
	}

	index := make([]int, len(s.Columns))
	for i, c := range s.Columns {
		pos, ok := positions[c.Name]
		if !ok {
			return nil, &SchemaError{Column: c.Name, Err: ErrMissingColumn}
		}
		index[i] = pos
	}
	return &Binding{schema: s, index: index}, nil
}

// Decode converts one record's fields into a Passenger.
func (b *Binding) Decode(fields []string) (models.Passenger, error) {
	var p models.Passenger
	for i, c := range b.schema.Columns {
		pos := b.index[i]
		if pos >= len(fields) {
			return models.Passenger{}, &FieldError{Column: c.Name, Kind: c.Kind, Err: errors.New("field missing")}
		}
		v, err := c.Parse(fields[pos])
		if err != nil {
			return models.Passenger{}, err
		}
		if c.assign != nil {
			c.assign(&p, v)
		}
	}
	return p, nil
}

func optFloat(v Value) *float64 {
	if v.Null {
		return nil
	}
	f := v.Float
	return &f
}

func optText(v Value) *string {
	if v.Null {
		return nil
	}
	s := v.Text
	return &s
}

// PassengerSchema is the fixed manifest layout. Column names are case sensitive.
var PassengerSchema = Schema{Columns: []Column{
	{Name: "PassengerId", Kind: KindUint, assign: func(p *models.Passenger, v Value) { p.PassengerID = v.Uint }},
	{Name: "Survived", Kind: KindUint, assign: func(p *models.Passenger, v Value) { p.Survived = v.Uint }},
	{Name: "Pclass", Kind: KindUint, assign: func(p *models.Passenger, v Value) { p.Pclass = v.Uint }},
	{Name: "Name", Kind: KindText, assign: func(p *models.Passenger, v Value) { p.Name = v.Text }},
	{Name: "Sex", Kind: KindText, assign: func(p *models.Passenger, v Value) { p.Sex = v.Text }},
	{Name: "Age", Kind: KindFloat, Optional: true, assign: func(p *models.Passenger, v Value) { p.Age = optFloat(v) }},
	{Name: "SibSp", Kind: KindUint, assign: func(p *models.Passenger, v Value) { p.SiblingsSpouses = v.Uint }},
	{Name: "Parch", Kind: KindUint, assign: func(p *models.Passenger, v Value) { p.ParentsChildren = v.Uint }},
	{Name: "Ticket", Kind: KindText, assign: func(p *models.Passenger, v Value) { p.Ticket = v.Text }},
	{Name: "Fare", Kind: KindFloat, assign: func(p *models.Passenger, v Value) { p.Fare = v.Float }},
	{Name: "Cabin", Kind: KindText, Optional: true, assign: func(p *models.Passenger, v Value) { p.Cabin = optText(v) }},
	{Name: "Embarked", Kind: KindText, Optional: true, assign: func(p *models.Passenger, v Value) { p.Embarked = optText(v) }},
}}
