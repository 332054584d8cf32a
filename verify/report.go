package verify

import (
	"fmt"
	"strings"
)

// Report summarizes a successful verification run.
type Report struct {
	Mappings []MappedPair // learned associations, in source field order
	Unmapped []string     // source fields whose perturbation changed nothing
	Ignored  []string     // target fields excluded from coverage, sorted
	Checked  int          // value-level checks performed
}

// MappedPair is one learned source-to-target field association.
type MappedPair struct {
	Source, Target string
}

func (p MappedPair) String() string {
	return p.Source + " --> " + p.Target
}

func (r Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "mappings: %d, checked values: %d\n", len(r.Mappings), r.Checked)

	for _, m := range r.Mappings {
		fmt.Fprintf(&b, "  %s\n", m)
	}

	if len(r.Unmapped) > 0 {
		fmt.Fprintf(&b, "unused source fields: %s\n", strings.Join(r.Unmapped, ", "))
	}

	if len(r.Ignored) > 0 {
		fmt.Fprintf(&b, "ignored target fields: %s\n", strings.Join(r.Ignored, ", "))
	}

	return b.String()
}
