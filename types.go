package bindgen

import "fmt"

// mapType converts an ABI parameter type into the Go type expression
// used in generated bindings.
//
// Integer widths with a native Go counterpart (8, 16, 32, 64) map to
// the matching sized integer; every other legal width maps to
// *big.Int. Tuples have no Go mapping and fail with
// UnsupportedTypeError, as do illegal integer widths and fixed-bytes
// sizes.
func mapType(t ParamType) (string, error) {
	switch t.Kind {
	case KindBool:
		return "bool", nil

	case KindInt, KindUint:
		if t.Bits < 8 || t.Bits > 256 || t.Bits%8 != 0 {
			return "", &UnsupportedTypeError{
				Type:   t.String(),
				Reason: fmt.Sprintf("illegal integer width %d", t.Bits),
			}
		}
		prefix := "int"
		if t.Kind == KindUint {
			prefix = "uint"
		}
		switch t.Bits {
		case 8, 16, 32, 64:
			return fmt.Sprintf("%s%d", prefix, t.Bits), nil
		default:
			return "*big.Int", nil
		}

	case KindAddress:
		return "common.Address", nil

	case KindFixedBytes:
		if t.Size < 1 || t.Size > 32 {
			return "", &UnsupportedTypeError{
				Type:   t.String(),
				Reason: fmt.Sprintf("illegal fixed bytes size %d", t.Size),
			}
		}
		return fmt.Sprintf("[%d]byte", t.Size), nil

	case KindBytes:
		return "[]byte", nil

	case KindString:
		return "string", nil

	case KindArray:
		elem, err := mapType(*t.Elem)
		if err != nil {
			return "", err
		}
		return "[]" + elem, nil

	case KindFixedArray:
		elem, err := mapType(*t.Elem)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("[%d]%s", t.Size, elem), nil

	case KindTuple:
		return "", &UnsupportedTypeError{
			Type:   t.String(),
			Reason: "tuple parameters are not supported",
		}
	}
	panic(fmt.Sprintf("bindgen: unknown parameter kind %d", t.Kind))
}
