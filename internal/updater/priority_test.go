package updater

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	oerrors "github.com/x-company/xbuild-mgr/internal/errors"
)

func TestEncodePriority(t *testing.T) {
	tests := []struct {
		priority int
		want     string
	}{
		{1, "01"},
		{5, "05"},
		{9, "09"},
		{10, "10"},
		{20, "20"},
		{98, "98"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodePriority(tt.priority))
		})
	}
}

func TestEncodePriority_PreservesOrder(t *testing.T) {
	for a := MinPriority; a <= MaxPriority; a++ {
		for b := a + 1; b <= MaxPriority; b++ {
			if !(EncodePriority(a) < EncodePriority(b)) {
				t.Fatalf("EncodePriority(%d)=%q is not below EncodePriority(%d)=%q", a, EncodePriority(a), b, EncodePriority(b))
			}
		}
	}
}

func TestEncodePriority_TwoDigitsInRange(t *testing.T) {
	for p := MinPriority; p <= MaxPriority; p++ {
		assert.Len(t, EncodePriority(p), 2, "priority %d", p)
	}
}

func TestValidatePriority(t *testing.T) {
	tests := []struct {
		name     string
		priority int
		wantErr  bool
	}{
		{"lowest", 1, false},
		{"default", DefaultPriority, false},
		{"highest", 98, false},
		{"reserved", 99, true},
		{"zero", 0, true},
		{"negative", -3, true},
		{"three digits", 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePriority(tt.priority)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, oerrors.ErrValidation))
				return
			}
			assert.NoError(t, err)
		})
	}
}
