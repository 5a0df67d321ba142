package bindgen

import (
	"errors"
	"testing"
)

func TestMapType(t *testing.T) {
	tests := []struct {
		name string
		typ  ParamType
		want string
	}{
		{"bool", BoolType(), "bool"},
		{"uint8 native", UintType(8), "uint8"},
		{"uint64 native", UintType(64), "uint64"},
		{"int32 native", IntType(32), "int32"},
		{"uint256 big", UintType(256), "*big.Int"},
		{"int128 big", IntType(128), "*big.Int"},
		{"uint24 big", UintType(24), "*big.Int"},
		{"address", AddressType(), "common.Address"},
		{"bytes32", FixedBytesType(32), "[32]byte"},
		{"bytes1", FixedBytesType(1), "[1]byte"},
		{"bytes", BytesType(), "[]byte"},
		{"string", StringType(), "string"},
		{"dynamic array", ArrayOf(AddressType()), "[]common.Address"},
		{"fixed array", FixedArrayOf(UintType(256), 4), "[4]*big.Int"},
		{"nested", ArrayOf(ArrayOf(BytesType())), "[][][]byte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mapType(tt.typ)
			if err != nil {
				t.Fatalf("mapType(%s): %v", tt.typ, err)
			}
			if got != tt.want {
				t.Errorf("mapType(%s) = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestMapTypeUnsupported(t *testing.T) {
	tests := []struct {
		name string
		typ  ParamType
	}{
		{"tuple", TupleOf(AddressType(), UintType(256))},
		{"zero width int", UintType(0)},
		{"non byte aligned int", IntType(7)},
		{"oversized int", UintType(512)},
		{"zero fixed bytes", FixedBytesType(0)},
		{"oversized fixed bytes", FixedBytesType(33)},
		{"array of tuples", ArrayOf(TupleOf(BoolType()))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mapType(tt.typ)
			var unsupported *UnsupportedTypeError
			if !errors.As(err, &unsupported) {
				t.Fatalf("mapType(%s) error = %v, want UnsupportedTypeError", tt.typ, err)
			}
		})
	}
}
