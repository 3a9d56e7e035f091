package conv

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Convert copies in into the value outPtr points to. Assignable values are
// copied directly; anything else (typically a map decoded from tool
// arguments) goes through JSON. A nil input leaves the destination untouched.
func Convert(in any, outPtr any) error {
	if outPtr == nil {
		return fmt.Errorf("conv: destination is nil")
	}
	dest := reflect.ValueOf(outPtr)
	if dest.Kind() != reflect.Pointer || dest.IsNil() {
		return fmt.Errorf("conv: destination %T is not a non-nil pointer", outPtr)
	}
	if in == nil {
		return nil
	}
	if src := reflect.ValueOf(in); src.Type().AssignableTo(dest.Elem().Type()) {
		dest.Elem().Set(src)
		return nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("conv: encode %T: %w", in, err)
	}
	if err := json.Unmarshal(data, outPtr); err != nil {
		return fmt.Errorf("conv: decode into %T: %w", outPtr, err)
	}
	return nil
}
