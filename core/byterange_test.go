package core

import (
	"testing"
)

func int64Ptr(v int64) *int64 { return &v }

func TestByteRangeHeader(t *testing.T) {
	tests := []struct {
		name     string
		r        ByteRange
		expected string
	}{
		{"zero value is the default range", ByteRange{}, "bytes=0-"},
		{"start only", ByteRange{Start: 1024}, "bytes=1024-"},
		{"start and end", ByteRange{Start: 0, End: int64Ptr(499)}, "bytes=0-499"},
		{"single byte", ByteRange{Start: 10, End: int64Ptr(10)}, "bytes=10-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.RangeHeader(); got != tt.expected {
				t.Errorf("RangeHeader() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestByteRangeValidate(t *testing.T) {
	tests := []struct {
		name    string
		r       ByteRange
		wantErr bool
	}{
		{"zero value", ByteRange{}, false},
		{"start only", ByteRange{Start: 5}, false},
		{"end equals start", ByteRange{Start: 5, End: int64Ptr(5)}, false},
		{"negative start", ByteRange{Start: -1}, true},
		{"end before start", ByteRange{Start: 10, End: int64Ptr(9)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
