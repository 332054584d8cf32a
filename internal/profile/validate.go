package profile

import (
	"fmt"

	"mapping-verifier/internal/diagnostic"
)

// Validate checks a profile structurally and against the resolver's type
// table. It is a pure check: nothing is applied and nothing is mutated.
func Validate(p *Profile, res *Resolver) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	if p == nil {
		diags.AddError("profile_is_nil", "profile is nil", "", "")
		return diags
	}

	if res == nil {
		res = NewResolver()
	}

	if p.Version != "1" {
		diags.AddWarning("unsupported_version",
			fmt.Sprintf("unsupported profile version %q, expected \"1\"", p.Version), "", "")
	}

	for field, typeName := range p.ElementTypes {
		if field == "" {
			diags.AddError("missing_field_name", "element type entry has no field name", "", "")
			continue
		}

		if _, err := res.Resolve(typeName); err != nil {
			diags.AddErrorSuggest("unknown_type", err.Error(), "", field, res.Suggestion(typeName)...)
		}
	}

	validateTypeValues(diags, res, p.Values.Types)
	validateFieldValues(diags, res, p.Values.Fields)
	validateOverrides(diags, p.Overrides)

	return diags
}

func validateTypeValues(diags *diagnostic.Diagnostics, res *Resolver, defs []TypeValuesDef) {
	seen := map[string]struct{}{}

	for _, tv := range defs {
		if tv.Type == "" {
			diags.AddError("missing_type_name", "type values entry has no type name", "", "")
			continue
		}

		if _, dup := seen[tv.Type]; dup {
			diags.AddWarning("duplicate_type_values",
				fmt.Sprintf("type %s has multiple value entries, the last one wins", tv.Type), "", tv.Type)
		}

		seen[tv.Type] = struct{}{}

		t, err := res.Resolve(tv.Type)
		if err != nil {
			diags.AddErrorSuggest("unknown_type", err.Error(), "", tv.Type, res.Suggestion(tv.Type)...)
			continue
		}

		if _, err := res.Conform(tv.Training, t); err != nil {
			diags.AddError("bad_training_value", err.Error(), "", tv.Type)
		}

		for _, v := range tv.Values {
			if _, err := res.Conform(v, t); err != nil {
				diags.AddError("bad_test_value", err.Error(), "", tv.Type)
			}
		}
	}
}

func validateFieldValues(diags *diagnostic.Diagnostics, res *Resolver, defs []FieldValuesDef) {
	seen := map[string]struct{}{}

	for _, fv := range defs {
		if fv.Field == "" {
			diags.AddError("missing_field_name", "field values entry has no field name", "", "")
			continue
		}

		if _, dup := seen[fv.Field]; dup {
			diags.AddWarning("duplicate_field_values",
				fmt.Sprintf("field %s has multiple value entries, the last one wins", fv.Field), "", fv.Field)
		}

		seen[fv.Field] = struct{}{}

		if fv.Type == "" {
			continue
		}

		t, err := res.Resolve(fv.Type)
		if err != nil {
			diags.AddErrorSuggest("unknown_type", err.Error(), "", fv.Field, res.Suggestion(fv.Type)...)
			continue
		}

		if _, err := res.Conform(fv.Training, t); err != nil {
			diags.AddError("bad_training_value", err.Error(), "", fv.Field)
		}

		for _, v := range fv.Values {
			if _, err := res.Conform(v, t); err != nil {
				diags.AddError("bad_test_value", err.Error(), "", fv.Field)
			}
		}
	}
}

func validateOverrides(diags *diagnostic.Diagnostics, defs []OverrideDef) {
	for _, o := range defs {
		mapping := fmt.Sprintf("%s --> %s", o.Source, o.Target)

		if o.Source == "" {
			diags.AddError("missing_override_source", "override has no source field", mapping, "")
		}

		if o.Target == "" {
			diags.AddError("missing_override_target", "override has no target field", mapping, "")
		}
	}
}
