package reservation

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFormat       = errors.New("invalid input format")
	ErrInvalidCustomerType = errors.New("invalid customer input")
	ErrInvalidDate         = errors.New("invalid date input")
	ErrInvalidBlackout     = errors.New("blackout must not end before it starts")
	ErrNoHotels            = errors.New("no hotels available")
	ErrHotelExists         = errors.New("hotel already exists")
	ErrHotelNotFound       = errors.New("hotel not found")
)

// ParseError reports the part of a reservation request that could not be read.
// Kind is one of ErrInvalidFormat, ErrInvalidCustomerType or ErrInvalidDate.
type ParseError struct {
	Kind  error
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

func IsParseError(err error) *ParseError {
	if err == nil {
		return nil
	}

	var parseError *ParseError

	if errors.As(err, &parseError) {
		return parseError
	}

	return nil
}

type InputError struct {
	fields map[string][]string
}

func newInputError() *InputError {
	return &InputError{
		fields: make(map[string][]string),
	}
}

func IsInputError(err error) *InputError {
	if err == nil {
		return nil
	}

	var inputError *InputError

	if errors.As(err, &inputError) {
		return inputError
	}

	return nil
}

func (ie *InputError) fieldsCount() int {
	return len(ie.fields)
}

func (ie *InputError) addError(field, msg string) {
	ie.fields[field] = append(ie.fields[field], msg)
}

func (ie *InputError) Error() string {
	return fmt.Sprintf("%+v", ie.fields)
}

func (ie *InputError) Fields() map[string][]string {
	return ie.fields
}
