package util

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// IsStructInitialized checks that all nillable fields of the given struct
// pointer are set. Used as a server readiness gate before accepting traffic.
func IsStructInitialized(s interface{}) error {
	v := reflect.Indirect(reflect.ValueOf(s))
	if v.Kind() != reflect.Struct {
		return errors.New("expected a struct to check for initialization")
	}

	var uninitialized []string
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)

		switch field.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if field.IsNil() {
				uninitialized = append(uninitialized, t.Field(i).Name)
			}
		default:
			// value types are always initialized
		}
	}

	if len(uninitialized) > 0 {
		return errors.Errorf("struct %s has uninitialized fields: %s", t.Name(), strings.Join(uninitialized, ", "))
	}

	return nil
}
