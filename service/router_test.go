package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/soulgarden/vaultd/dictionary"
)

type fakePairSource struct {
	pairs map[string]bool
}

func (f *fakePairSource) PairExists(base, quote string) bool {
	return f.pairs[base+"/"+quote] || f.pairs[quote+"/"+base]
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	pairs := &fakePairSource{pairs: map[string]bool{
		"ABC/REF":    true,
		"XYZ/BRIDGE": true,
		"BRIDGE/REF": true,
		"DEAD/END":   true,
	}}

	logger := zerolog.Nop()
	resolver := NewResolver("REF", "BRIDGE", pairs, &logger)

	tests := []struct {
		name    string
		source  string
		want    []string
		wantErr error
	}{
		{
			name:   "reference asset needs no route",
			source: "REF",
			want:   []string{"REF"},
		},
		{
			name:   "direct pair",
			source: "ABC",
			want:   []string{"ABC", "REF"},
		},
		{
			name:   "bridge hop",
			source: "XYZ",
			want:   []string{"XYZ", "BRIDGE", "REF"},
		},
		{
			name:   "bridge asset itself routes direct",
			source: "BRIDGE",
			want:   []string{"BRIDGE", "REF"},
		},
		{
			name:    "no route",
			source:  "DEAD",
			wantErr: dictionary.ErrNoRoute,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolver.Resolve(tt.source)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}

			if convertible := resolver.IsConvertible(tt.source); convertible != (tt.wantErr == nil) {
				t.Errorf("IsConvertible() = %v, Resolve() err = %v", convertible, err)
			}
		})
	}
}

func TestResolver_ResolveIsIdempotent(t *testing.T) {
	t.Parallel()

	pairs := &fakePairSource{pairs: map[string]bool{"ABC/REF": true}}
	logger := zerolog.Nop()
	resolver := NewResolver("REF", "BRIDGE", pairs, &logger)

	first, err := resolver.Resolve("ABC")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	second, err := resolver.Resolve("ABC")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Resolve() not stable: %v != %v", first, second)
	}
}
