package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindHelpers(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		matches func(error) bool
	}{
		{
			name:    "invalid media type",
			err:     &InvalidMediaTypeError{MediaType: "bogus", Reason: "missing '/' separator"},
			matches: IsInvalidMediaTypeErr,
		},
		{
			name:    "unsupported media type",
			err:     &UnsupportedMediaTypeError{MediaType: "image/png"},
			matches: IsUnsupportedMediaTypeErr,
		},
		{
			name:    "unsupported transfer syntax",
			err:     &UnsupportedTransferSyntaxError{TransferSyntax: JPEGBaseline},
			matches: IsUnsupportedTransferSyntaxErr,
		},
		{
			name:    "no common media type",
			err:     &NoCommonMediaTypeError{},
			matches: IsNoCommonMediaTypeErr,
		},
		{
			name:    "ambiguous media type",
			err:     &AmbiguousMediaTypeError{Buckets: []string{"image/", "video/"}},
			matches: IsAmbiguousMediaTypeErr,
		},
		{
			name:    "malformed multipart",
			err:     &MalformedMultipartError{Reason: "closing delimiter is absent"},
			matches: IsMalformedMultipartErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.matches(tt.err) {
				t.Errorf("helper did not match its own error kind: %v", tt.err)
			}
			if !tt.matches(fmt.Errorf("wrapped: %w", tt.err)) {
				t.Errorf("helper did not match wrapped error: %v", tt.err)
			}
			if tt.matches(errors.New("unrelated")) {
				t.Errorf("helper matched an unrelated error")
			}
			if tt.err.Error() == "" {
				t.Errorf("error message is empty")
			}
		})
	}
}

func TestUnsupportedTransferSyntaxErrorMessage(t *testing.T) {
	withType := &UnsupportedTransferSyntaxError{
		TransferSyntax: JPEGBaseline,
		MediaType:      "image/png",
	}
	if got := withType.Error(); got != "transfer syntax '1.2.840.10008.1.2.4.50' is not compatible with media type 'image/png'" {
		t.Errorf("unexpected message: %s", got)
	}
	withoutType := &UnsupportedTransferSyntaxError{TransferSyntax: "1.2.3.4"}
	if got := withoutType.Error(); got != "transfer syntax '1.2.3.4' is not supported for this resource" {
		t.Errorf("unexpected message: %s", got)
	}
}
