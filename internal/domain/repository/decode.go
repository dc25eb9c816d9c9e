package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// FieldError lists the fields DecodeFields left at their zero value. The
// rest of the record was decoded.
type FieldError struct {
	Fields []string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%d field(s) not decoded: %s", len(e.Fields), strings.Join(e.Fields, "; "))
}

// DecodeFields copies stored fields into v by their firestore tags.
// Documents are loosely typed, so scalars are converted where possible
// (a numeric phoneNumber becomes a string, a string price a number). A
// field that still does not fit is reported in a *FieldError; any other
// error means nothing was decoded.
func DecodeFields(data map[string]interface{}, v interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "firestore",
		WeaklyTypedInput: true,
		Result:           v,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(data); err != nil {
		if me, ok := err.(*mapstructure.Error); ok {
			return &FieldError{Fields: me.Errors}
		}
		return err
	}
	return nil
}

// Partial reports whether err came from DecodeFields leaving some fields
// unset, as opposed to the record not being decoded at all.
func Partial(err error) bool {
	var fieldErr *FieldError
	return errors.As(err, &fieldErr)
}
