package verify

import (
	"errors"
	"fmt"
	"reflect"

	"mapping-verifier/catalog"
	"mapping-verifier/internal/common"
	"mapping-verifier/internal/profile"
	"mapping-verifier/oracle"
)

// config is the untyped configuration core shared by every Verifier
// instantiation. Fluent calls defer their errors here; Verify surfaces
// them before the mapper is ever invoked.
type config struct {
	catalog    *catalog.Catalog
	converters *oracle.ConverterSet
	enums      *oracle.EnumSet
	overrides  overrideSet
	ignored    map[string]struct{}
	allowed    oracle.StrategyMask
	resolver   *profile.Resolver
	errs       []error
}

func newConfig() *config {
	return &config{
		catalog:    catalog.New(),
		converters: &oracle.ConverterSet{},
		enums:      &oracle.EnumSet{},
		ignored:    make(map[string]struct{}),
		allowed:    oracle.MaskAll,
		resolver:   profile.NewResolver(),
	}
}

func (c *config) fail(err error) {
	if err != nil {
		c.errs = append(c.errs, err)
	}
}

func (c *config) err() error {
	if len(c.errs) == 0 {
		return nil
	}

	return &ConfigError{Cause: errors.Join(c.errs...)}
}

func (c *config) IgnoreTargetFields(names ...string) {
	for _, n := range names {
		c.ignored[n] = struct{}{}
	}
}

func (c *config) NonNullFields(names ...string) {
	c.catalog.MarkNonNull(names...)
}

func (c *config) ElementType(field string, elem reflect.Type) {
	c.fail(c.catalog.SetElemHint(field, elem))
}

func (c *config) TestValuesForType(t reflect.Type, training any, values ...any) {
	c.fail(c.catalog.SetForType(t, training, values...))
}

func (c *config) TestValuesForField(name string, training any, values ...any) {
	c.fail(c.catalog.SetForField(name, training, values...))
}

func (c *config) Converter(fn any) {
	conv, err := oracle.ParseConverter(fn)
	if err != nil {
		c.fail(err)
		return
	}

	c.converters.Add(conv)
}

func (c *config) ConverterTable(src, dst reflect.Type, srcVals, dstVals []any) {
	conv, err := oracle.NewValueTable(src, dst, srcVals, dstVals)
	if err != nil {
		c.fail(err)
		return
	}

	c.converters.Add(conv)
}

func (c *config) Enum(members ...any) {
	if common.IsEmpty(members) {
		c.fail(errors.New("enum registration needs at least one member"))
		return
	}

	c.fail(c.enums.Register(reflect.TypeOf(members[0]), members...))
}

func (c *config) IgnoreEnumNames(names ...string) {
	c.enums.Ignore(names...)
}

func (c *config) EnumNamesAsValuesForField(name string, enum reflect.Type) {
	names := c.enums.Names(enum)
	if len(names) == 0 {
		c.fail(fmt.Errorf("enum %s has no registered members to use as values for field %s", enum, name))
		return
	}

	values := common.Map(names, func(n string) any { return n })
	c.fail(c.catalog.SetForField(name, names[0], values...))
}

func (c *config) Override(source, target string, expected any) {
	c.overrides.add(override{source: source, target: target, expected: expected})
}

func (c *config) OverrideForValue(source, target string, when, expected any) {
	c.overrides.add(override{source: source, target: target, guarded: true, when: when, expected: expected})
}

func (c *config) OverrideFunc(source, target string, fn any) {
	conv, err := oracle.ParseConverter(fn)
	if err != nil {
		c.fail(err)
		return
	}

	c.overrides.add(override{source: source, target: target, conv: &conv})
}

func (c *config) Strategies(mask oracle.StrategyMask) {
	c.allowed = mask
}
