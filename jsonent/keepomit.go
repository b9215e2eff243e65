package jsonent

import (
	"errors"
	"fmt"
)

// ErrUnknownAttribute indicates a keep/omit list named an attribute outside
// [RecognizedAttributes]. It is a ConfigError: raised at startup, before
// the pipeline runs.
var ErrUnknownAttribute = errors.New("unknown attribute")

// ErrKeepOmitConflict indicates both keep and omit were configured; spec
// section 4.3.1 requires them to be mutually exclusive.
var ErrKeepOmitConflict = errors.New("keep and omit are mutually exclusive")

// KeepOmit is the compiled top-level attribute projection.
//
// Create instances with [NewKeepOmit]. The zero value applies no
// projection.
type KeepOmit struct {
	keep map[string]struct{}
	omit map[string]struct{}
}

// NewKeepOmit validates and compiles keep/omit attribute lists. idForced
// reports whether keep was non-empty and did not itself name "id" -- per
// the documented recommendation, "id" is force-retained and the caller
// should surface a one-time warning rather than silently dropping it.
func NewKeepOmit(keep, omit []string) (kc KeepOmit, idForced bool, err error) {
	if len(keep) > 0 && len(omit) > 0 {
		return KeepOmit{}, false, ErrKeepOmitConflict
	}

	keepSet, err := attributeSet(keep)
	if err != nil {
		return KeepOmit{}, false, err
	}

	omitSet, err := attributeSet(omit)
	if err != nil {
		return KeepOmit{}, false, err
	}

	if len(keepSet) > 0 {
		if _, ok := keepSet["id"]; !ok {
			idForced = true
		}
	}

	return KeepOmit{keep: keepSet, omit: omitSet}, idForced, nil
}

func attributeSet(attrs []string) (map[string]struct{}, error) {
	set := make(map[string]struct{}, len(attrs))

	for _, a := range attrs {
		if _, ok := RecognizedAttributes[a]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAttribute, a)
		}

		set[a] = struct{}{}
	}

	return set, nil
}

// Enabled reports whether either a keep or an omit list was configured.
func (k KeepOmit) Enabled() bool {
	return len(k.keep) > 0 || len(k.omit) > 0
}

// Apply projects e in place: keep retains exactly the listed attributes,
// plus "id" always (it is never dropped implicitly by omission from keep);
// omit deletes the listed attributes, including "id" if explicitly named.
func (k KeepOmit) Apply(e Entity) {
	if len(k.keep) > 0 {
		for attr := range e {
			if attr == "id" {
				continue
			}

			if _, ok := k.keep[attr]; !ok {
				delete(e, attr)
			}
		}

		return
	}

	for attr := range k.omit {
		delete(e, attr)
	}
}
