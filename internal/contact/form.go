// Package contact turns the Connect form into a mailto link.
//
// Nothing here sends mail. The link is handed to an Opener (the browser)
// and the visitor's own mail client does the delivery.
package contact

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned for a field name outside name, email and message.
var ErrUnknownField = errors.New("contact: unknown field")

// Field names a form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// ParseField maps an input name to a Field.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldName, FieldEmail, FieldMessage:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Form holds the three free-text inputs. Required checks happen in the
// browser and in request binding, not here.
type Form struct {
	Name    string
	Email   string
	Message string
}

// SetField overwrites one field and leaves the others alone.
func (f *Form) SetField(field Field, value string) error {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldMessage:
		f.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, string(field))
	}
	return nil
}

// Reset empties every field.
func (f *Form) Reset() {
	*f = Form{}
}
