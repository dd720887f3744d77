// Package validate checks request fields before any storage is touched.
// Failures map to model.ErrValidation at the handler boundary.
package validate

import (
	"fmt"
	"regexp"
)

// uidRx keeps identifiers safe for use as key segments: no separators, no
// whitespace, bounded length.
var uidRx = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// UID validates a user or event identifier.
func UID(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	if !uidRx.MatchString(v) {
		return fmt.Errorf("%s must match %s", field, uidRx.String())
	}
	return nil
}

// NonEmpty requires a non-empty string field.
func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// MaxLen bounds a string field in bytes.
func MaxLen(field, v string, limit int) error {
	if len(v) > limit {
		return fmt.Errorf("%s exceeds %d characters", field, limit)
	}
	return nil
}

// TagWeights rejects negative weights; profile weights only ever grow.
func TagWeights(tags map[string]float64) error {
	if len(tags) == 0 {
		return fmt.Errorf("tags are required")
	}
	for tag, w := range tags {
		if tag == "" {
			return fmt.Errorf("tag name must not be empty")
		}
		if w < 0 {
			return fmt.Errorf("tag %q has negative weight", tag)
		}
	}
	return nil
}

// -------- Request specific helpers ----------

// CreateUser validates input for creating a new user.
func CreateUser(uid, username, icon string) error {
	if err := UID("uid", uid); err != nil {
		return err
	}
	if err := NonEmpty("username", username); err != nil {
		return err
	}
	if err := MaxLen("username", username, 100); err != nil {
		return err
	}
	return NonEmpty("icon", icon)
}

// CreateEvent validates input for creating a new event.
func CreateEvent(uid, username, name, description string) error {
	if err := UID("uid", uid); err != nil {
		return err
	}
	if err := NonEmpty("username", username); err != nil {
		return err
	}
	if err := NonEmpty("name", name); err != nil {
		return err
	}
	if err := MaxLen("name", name, 200); err != nil {
		return err
	}
	if err := NonEmpty("description", description); err != nil {
		return err
	}
	return MaxLen("description", description, 2000)
}
