package targetweight

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestDecompressCompact(t *testing.T) {
	tests := []struct {
		name string
		bits uint32
		want *uint256.Int
	}{
		{"zero mantissa", 0x03000000, uint256.NewInt(0)},
		{"small exponent shifts right", 0x01010000, uint256.NewInt(1)},
		{"exponent three is mantissa verbatim", 0x03010000, uint256.NewInt(0x10000)},
		{"exponent four shifts left by one byte", 0x04010000, uint256.NewInt(0x1000000)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := DecompressCompact(test.bits)
			if !got.Eq(test.want) {
				t.Errorf("DecompressCompact(0x%08x) = %s, want %s", test.bits, got, test.want)
			}
		})
	}
}

func TestWeightedTargetFloorDivides(t *testing.T) {
	// value_satoshis=150 should floor-divide to 1 (not 1.5), so the result
	// equals base_target * 1.
	base := DecompressCompact(0x04010000)
	got := WeightedTarget(0x04010000, 150)
	if !got.Eq(base) {
		t.Errorf("WeightedTarget(.., 150) = %s, want %s (floor(150/100)=1)", got, base)
	}
}

func TestWeightedTargetNonPositiveValueIsZero(t *testing.T) {
	got := WeightedTarget(0x04010000, 0)
	if !got.IsZero() {
		t.Errorf("WeightedTarget(.., 0) = %s, want 0", got)
	}

	got = WeightedTarget(0x04010000, -5)
	if !got.IsZero() {
		t.Errorf("WeightedTarget(.., -5) = %s, want 0", got)
	}
}

func TestWeightedTargetSaturatesInsteadOfOverflowing(t *testing.T) {
	got := WeightedTarget(0x20123456, 1<<62)
	want := new(uint256.Int).SetAllOne()
	if !got.Eq(want) {
		t.Errorf("WeightedTarget(huge, huge) = %s, want saturated %s", got, want)
	}
}

func TestPasses(t *testing.T) {
	low := uint256.NewInt(5)
	high := uint256.NewInt(10)

	if !Passes(low, high) {
		t.Error("Passes(5, 10) = false, want true")
	}
	if Passes(high, low) {
		t.Error("Passes(10, 5) = true, want false")
	}
	if Passes(high, high) {
		t.Error("Passes(10, 10) = true, want false (strict less-than)")
	}
}
