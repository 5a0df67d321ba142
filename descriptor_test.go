package bindgen

import (
	"errors"
	"reflect"
	"testing"
)

func TestParamTypeString(t *testing.T) {
	tests := []struct {
		name string
		typ  ParamType
		want string
	}{
		{"bool", BoolType(), "bool"},
		{"uint256", UintType(256), "uint256"},
		{"int8", IntType(8), "int8"},
		{"address", AddressType(), "address"},
		{"bytes32", FixedBytesType(32), "bytes32"},
		{"bytes", BytesType(), "bytes"},
		{"string", StringType(), "string"},
		{"dynamic array", ArrayOf(UintType(256)), "uint256[]"},
		{"fixed array", FixedArrayOf(AddressType(), 3), "address[3]"},
		{"nested array", ArrayOf(FixedArrayOf(BoolType(), 2)), "bool[2][]"},
		{"tuple", TupleOf(AddressType(), UintType(256)), "(address,uint256)"},
		{"empty tuple", TupleOf(), "()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFunctionSignature(t *testing.T) {
	fn := Function{
		RawName: "transferFrom",
		Inputs: []Param{
			{Name: "from", Type: AddressType()},
			{Name: "to", Type: AddressType()},
			{Name: "amount", Type: UintType(256)},
		},
	}
	want := "transferFrom(address,address,uint256)"
	if got := fn.Signature(); got != want {
		t.Errorf("Signature() = %q, want %q", got, want)
	}

	empty := Function{RawName: "pause"}
	if got := empty.Signature(); got != "pause()" {
		t.Errorf("Signature() = %q, want %q", got, "pause()")
	}
}

func TestEventTopic(t *testing.T) {
	event := Event{
		RawName: "Transfer",
		Inputs: []EventParam{
			{Name: "from", Type: AddressType(), Indexed: true},
			{Name: "to", Type: AddressType(), Indexed: true},
			{Name: "value", Type: UintType(256)},
		},
	}

	if got := event.Signature(); got != "Transfer(address,address,uint256)" {
		t.Errorf("Signature() = %q", got)
	}

	// The well-known ERC20 Transfer topic hash.
	want := "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"
	if got := event.Topic().Hex(); got != want {
		t.Errorf("Topic() = %s, want %s", got, want)
	}
}

func TestParseBytecode(t *testing.T) {
	t.Run("strips 0x prefix", func(t *testing.T) {
		b, err := ParseBytecode("0x6080604052")
		if err != nil {
			t.Fatalf("ParseBytecode: %v", err)
		}
		if b.String() != "6080604052" {
			t.Errorf("String() = %q", b.String())
		}
		if b.Empty() {
			t.Error("Empty() = true for non-empty bytecode")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		b, err := ParseBytecode("")
		if err != nil {
			t.Fatalf("ParseBytecode: %v", err)
		}
		if !b.Empty() {
			t.Error("Empty() = false for empty bytecode")
		}
	})

	t.Run("0x alone is empty", func(t *testing.T) {
		b, err := ParseBytecode("0x")
		if err != nil {
			t.Fatalf("ParseBytecode: %v", err)
		}
		if !b.Empty() {
			t.Error("Empty() = false for 0x")
		}
	})

	t.Run("odd length fails", func(t *testing.T) {
		_, err := ParseBytecode("0x608")
		var malformed *MalformedDescriptorError
		if !errors.As(err, &malformed) {
			t.Fatalf("ParseBytecode error = %v, want MalformedDescriptorError", err)
		}
	})

	t.Run("invalid character fails", func(t *testing.T) {
		_, err := ParseBytecode("60!!")
		var malformed *MalformedDescriptorError
		if !errors.As(err, &malformed) {
			t.Fatalf("ParseBytecode error = %v, want MalformedDescriptorError", err)
		}
	})
}

// placeholder builds a 40-character solc library placeholder span.
func placeholder(name string) string {
	span := "__" + name
	for len(span) < placeholderLen {
		span += "_"
	}
	return span
}

func TestBytecodePlaceholders(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		b, err := ParseBytecode("6080604052")
		if err != nil {
			t.Fatalf("ParseBytecode: %v", err)
		}
		if got := b.Placeholders(); got != nil {
			t.Errorf("Placeholders() = %v, want nil", got)
		}
	})

	t.Run("first occurrence order, deduplicated", func(t *testing.T) {
		hex := "6080" + placeholder("MathLib") + "5af4" + placeholder("SafeTransfer") + placeholder("MathLib") + "00"
		b, err := ParseBytecode(hex)
		if err != nil {
			t.Fatalf("ParseBytecode: %v", err)
		}
		want := []string{"MathLib", "SafeTransfer"}
		if got := b.Placeholders(); !reflect.DeepEqual(got, want) {
			t.Errorf("Placeholders() = %v, want %v", got, want)
		}
	})

	t.Run("fully qualified placeholder", func(t *testing.T) {
		// Newer solc emits `__$<34 hex chars>$__` spans.
		hex := "73" + "__$30565d3a4f1a59ccf30d35a884554590b3$__" + "5af4"
		b, err := ParseBytecode(hex)
		if err != nil {
			t.Fatalf("ParseBytecode: %v", err)
		}
		want := []string{"30565d3a4f1a59ccf30d35a884554590b3"}
		if got := b.Placeholders(); !reflect.DeepEqual(got, want) {
			t.Errorf("Placeholders() = %v, want %v", got, want)
		}
	})
}

func TestDescriptorValidate(t *testing.T) {
	t.Run("duplicate function signature", func(t *testing.T) {
		d := &Descriptor{
			Functions: []Function{
				{RawName: "transfer", Inputs: []Param{{Name: "to", Type: AddressType()}}},
				{RawName: "transfer", Inputs: []Param{{Name: "dest", Type: AddressType()}}},
			},
		}
		var malformed *MalformedDescriptorError
		if err := d.validate(); !errors.As(err, &malformed) {
			t.Fatalf("validate() = %v, want MalformedDescriptorError", err)
		}
	})

	t.Run("distinct overloads pass", func(t *testing.T) {
		d := &Descriptor{
			Functions: []Function{
				{RawName: "transfer", Inputs: []Param{{Type: AddressType()}}},
				{RawName: "transfer", Inputs: []Param{{Type: AddressType()}, {Type: UintType(256)}}},
			},
		}
		if err := d.validate(); err != nil {
			t.Fatalf("validate() = %v", err)
		}
	})
}
