package entityfilter

import "fmt"

// EntityType restricts which entities survive the pipeline based on the
// leading character of their id: 'Q' for items, 'P' for properties.
type EntityType string

const (
	// EntityTypeItem admits only item ids ("Q...").
	EntityTypeItem EntityType = "item"
	// EntityTypeProperty admits only property ids ("P...").
	EntityTypeProperty EntityType = "property"
	// EntityTypeBoth admits every entity id. It's also the zero value's
	// effective behavior: an unset EntityType matches everything.
	EntityTypeBoth EntityType = "both"
)

// ErrUnknownEntityType indicates a --type value other than item, property,
// or both.
var ErrUnknownEntityType = fmt.Errorf("unknown entity type, must be one of: %s, %s, %s",
	EntityTypeItem, EntityTypeProperty, EntityTypeBoth)

// ParseEntityType parses s into an [EntityType]. An empty string is
// accepted and behaves like [EntityTypeBoth].
func ParseEntityType(s string) (EntityType, error) {
	switch EntityType(s) {
	case "":
		return EntityTypeBoth, nil
	case EntityTypeItem, EntityTypeProperty, EntityTypeBoth:
		return EntityType(s), nil
	default:
		return "", ErrUnknownEntityType
	}
}

// MatchTypeString reports whether a literal type string (as carried by the
// JSON entity model's "type" attribute, e.g. "item" or "property") is
// admitted by t. Unlike [EntityType.Match], this compares the string
// directly rather than inferring type from an id's leading character.
func (t EntityType) MatchTypeString(s string) bool {
	if t == "" || t == EntityTypeBoth {
		return true
	}

	return string(t) == s
}

// Match reports whether id's leading character is admitted by t.
func (t EntityType) Match(id string) bool {
	if t == "" || t == EntityTypeBoth {
		return true
	}

	if id == "" {
		return false
	}

	switch id[0] {
	case 'Q':
		return t == EntityTypeItem
	case 'P':
		return t == EntityTypeProperty
	default:
		return false
	}
}
