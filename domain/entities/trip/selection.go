package trip

import (
	dataErrors "bikeshare/domain/errors"
	"fmt"
	"github.com/go-playground/validator/v10"
)

var selectionValidator = newSelectionValidator()

// Selection city, month and day chosen for one filter cycle
type Selection struct {
	City  string `json:"city" validate:"required,city"`
	Month string `json:"month" validate:"required,month"`
	Day   string `json:"day" validate:"required,day"`
}

// NewSelection normalizes the given values and validates them against the fixed vocabularies
func NewSelection(city string, month string, day string) (Selection, error) {
	selection := Selection{
		City:  normalize(city),
		Month: normalize(month),
		Day:   normalize(day),
	}

	if err := selection.Validate(); err != nil {
		return Selection{}, err
	}
	return selection, nil
}

// Validate returns ErrInvalidSelection if any value is outside its vocabulary
func (s Selection) Validate() error {
	if err := selectionValidator.Struct(s); err != nil {
		return fmt.Errorf("%w: %s", dataErrors.ErrInvalidSelection, err.Error())
	}
	return nil
}

func (s Selection) String() string {
	return fmt.Sprintf("city: %s, month: %s, day: %s", s.City, s.Month, s.Day)
}

func newSelectionValidator() *validator.Validate {
	v := validator.New()
	vocabularies := map[string]func(string) (string, bool){
		"city":  ParseCity,
		"month": ParseMonth,
		"day":   ParseDay,
	}

	for tag, parse := range vocabularies {
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			value, ok := parse(fl.Field().String())
			return ok && value == fl.Field().String()
		})
		if err != nil {
			panic(fmt.Sprintf("cannot register %s validation: %s", tag, err.Error()))
		}
	}
	return v
}
