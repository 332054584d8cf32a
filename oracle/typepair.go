package oracle

import "reflect"

// TypePair identifies a conversion from a source type to a target type.
type TypePair struct {
	Src, Dst reflect.Type
}

func (p TypePair) String() string {
	return typeStr(p.Src) + " --> " + typeStr(p.Dst)
}
