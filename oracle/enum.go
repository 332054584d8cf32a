package oracle

import (
	"fmt"
	"reflect"

	"mapping-verifier/internal/common"
)

// EnumSet holds registered enumeration types and their members. Go has no
// runtime enum introspection, so the enum-aware strategies only recognize
// types registered here.
type EnumSet struct {
	members map[reflect.Type][]any
	order   []reflect.Type
	ignored map[string]struct{}
}

// Register declares t an enumeration with the given members. Members must
// be values of exactly t; registering again replaces the member list.
func (e *EnumSet) Register(t reflect.Type, members ...any) error {
	if t == nil {
		return fmt.Errorf("enum type is nil")
	}

	if len(members) == 0 {
		return fmt.Errorf("enum %s requires at least one member", typeStr(t))
	}

	for _, m := range members {
		if reflect.TypeOf(m) != t {
			return fmt.Errorf("enum member %v has type %s, not %s", m, typeStr(reflect.TypeOf(m)), typeStr(t))
		}
	}

	if e.members == nil {
		e.members = make(map[reflect.Type][]any)
	}

	if _, seen := e.members[t]; !seen {
		e.order = append(e.order, t)
	}

	e.members[t] = append([]any(nil), members...)

	return nil
}

// Types returns the registered enum types in registration order.
func (e *EnumSet) Types() []reflect.Type {
	if e == nil {
		return nil
	}

	return append([]reflect.Type(nil), e.order...)
}

// Ignore excludes member names from Members, Names and ByName.
func (e *EnumSet) Ignore(names ...string) {
	if e.ignored == nil {
		e.ignored = make(map[string]struct{})
	}

	for _, n := range names {
		e.ignored[n] = struct{}{}
	}
}

// IsEnum reports whether t has registered members.
func (e *EnumSet) IsEnum(t reflect.Type) bool {
	if e == nil {
		return false
	}

	_, ok := e.members[t]

	return ok
}

// Members returns t's registered members minus the ignored names.
func (e *EnumSet) Members(t reflect.Type) []any {
	if e == nil {
		return nil
	}

	var out []any

	for _, m := range e.members[t] {
		if _, skip := e.ignored[Name(m)]; skip {
			continue
		}

		out = append(out, m)
	}

	return out
}

// Names returns the symbolic names of t's members minus the ignored names.
func (e *EnumSet) Names(t reflect.Type) []string {
	return common.Map(e.Members(t), Name)
}

// ByName resolves a member of t by its symbolic name.
func (e *EnumSet) ByName(t reflect.Type, name string) (any, bool) {
	for _, m := range e.Members(t) {
		if Name(m) == name {
			return m, true
		}
	}

	return nil, false
}

// Name returns the symbolic name of an enum member: the String result when
// the member is a fmt.Stringer, the raw string for string-underlying types,
// and the fmt.Sprint rendering otherwise.
func Name(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return rv.String()
	}

	return fmt.Sprint(v)
}
