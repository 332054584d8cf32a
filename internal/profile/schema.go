package profile

import "errors"

// Profile represents the root of a YAML verification profile. This is the
// human-reviewed, declarative half of a verifier configuration.
type Profile struct {
	// Version of the profile schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Ignore lists target fields excluded from the coverage check.
	Ignore StringArray `yaml:"ignore,omitempty"`

	// NonNull lists source fields that never receive nil.
	NonNull StringArray `yaml:"non_null,omitempty"`

	// ElementTypes maps collection field names to element type names, for
	// fields whose static element type is an interface.
	ElementTypes map[string]string `yaml:"element_types,omitempty"`

	// EnumIgnore lists enum member names dropped from every registered enum.
	EnumIgnore StringArray `yaml:"enum_ignore,omitempty"`

	// Values carries the test value registrations.
	Values ValuesSection `yaml:"values,omitempty"`

	// Overrides declares expected values for learned field pairs.
	Overrides []OverrideDef `yaml:"overrides,omitempty"`
}

// ValuesSection groups test value registrations by scope.
type ValuesSection struct {
	// Fields registers values per field name, the highest precedence tier.
	Fields []FieldValuesDef `yaml:"fields,omitempty"`

	// Types registers values per type name.
	Types []TypeValuesDef `yaml:"types,omitempty"`
}

// FieldValuesDef registers test values for one field name.
type FieldValuesDef struct {
	// Field is the field name the values apply to.
	Field string `yaml:"field"`

	// Training is the single value used during mapping inference.
	Training any `yaml:"training"`

	// Values is the ordered value list used for full-range verification.
	// When empty, the training value doubles as the only test value.
	Values []any `yaml:"values,omitempty"`

	// Type optionally names the field's type so scalars can be coerced to
	// exact typed values; without it values are applied as decoded.
	Type string `yaml:"type,omitempty"`
}

// TypeValuesDef registers test values for every field of one type.
type TypeValuesDef struct {
	// Type names the type, e.g. "int64", "*string" or "store.OrderStatus".
	Type string `yaml:"type"`

	// Training is the single value used during mapping inference.
	Training any `yaml:"training"`

	// Values is the ordered value list used for full-range verification.
	Values []any `yaml:"values,omitempty"`
}

// OverrideDef declares the expected target value for one learned field
// pair, optionally guarded by a specific source value.
type OverrideDef struct {
	// Source is the source field name.
	Source string `yaml:"source"`

	// Target is the target field name.
	Target string `yaml:"target"`

	// When optionally guards the override to one source value.
	When *any `yaml:"when,omitempty"`

	// Expected is the declared expected target value.
	Expected any `yaml:"expected"`
}

// StringArray is a string slice that can be unmarshaled from a single
// string or a list.
type StringArray []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringArray) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*s = StringArray{single}
		return nil
	}

	var multi []string
	if err := unmarshal(&multi); err == nil {
		*s = multi
		return nil
	}

	return errors.New("expected a string or a list of strings")
}
