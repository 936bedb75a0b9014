package core

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidMediaTypeError reports a descriptor whose media type string does not
// have the shape "type/subtype" with a recognized top-level type.
type InvalidMediaTypeError struct {
	MediaType string
	Reason    string
}

func (e *InvalidMediaTypeError) Error() string {
	return fmt.Sprintf("invalid media type '%s': %s", e.MediaType, e.Reason)
}

// UnsupportedMediaTypeError reports a media type absent from the
// supported-type table of the resource kind being addressed.
type UnsupportedMediaTypeError struct {
	MediaType string
}

func (e *UnsupportedMediaTypeError) Error() string {
	return fmt.Sprintf("media type '%s' is not supported for this resource", e.MediaType)
}

// UnsupportedTransferSyntaxError reports a transfer syntax that is either
// unknown to the resource's table or incompatible with the requested media type.
type UnsupportedTransferSyntaxError struct {
	TransferSyntax string
	MediaType      string
}

// Implement the Error method to satisfy the error interface
func (e *UnsupportedTransferSyntaxError) Error() string {
	if e.MediaType != "" {
		return fmt.Sprintf(
			"transfer syntax '%s' is not compatible with media type '%s'",
			e.TransferSyntax, e.MediaType,
		)
	}
	return fmt.Sprintf("transfer syntax '%s' is not supported for this resource", e.TransferSyntax)
}

// NoCommonMediaTypeError reports an empty descriptor set, which cannot be
// reduced to a decode path.
type NoCommonMediaTypeError struct{}

func (e *NoCommonMediaTypeError) Error() string {
	return "no acceptable media types were specified"
}

// AmbiguousMediaTypeError reports a descriptor set spanning more than one
// media-type bucket.
type AmbiguousMediaTypeError struct {
	Buckets []string
}

func (e *AmbiguousMediaTypeError) Error() string {
	return fmt.Sprintf(
		"acceptable media types do not reduce to a single kind: %s",
		strings.Join(e.Buckets, ", "),
	)
}

// MalformedMultipartError reports a response body that cannot be split into
// valid multipart segments.
type MalformedMultipartError struct {
	Reason string
}

func (e *MalformedMultipartError) Error() string {
	return fmt.Sprintf("malformed multipart message: %s", e.Reason)
}

func IsInvalidMediaTypeErr(err error) bool {
	var invalidErr *InvalidMediaTypeError
	return errors.As(err, &invalidErr)
}

func IsUnsupportedMediaTypeErr(err error) bool {
	var unsupportedErr *UnsupportedMediaTypeError
	return errors.As(err, &unsupportedErr)
}

func IsUnsupportedTransferSyntaxErr(err error) bool {
	var syntaxErr *UnsupportedTransferSyntaxError
	return errors.As(err, &syntaxErr)
}

func IsNoCommonMediaTypeErr(err error) bool {
	var noCommonErr *NoCommonMediaTypeError
	return errors.As(err, &noCommonErr)
}

func IsAmbiguousMediaTypeErr(err error) bool {
	var ambiguousErr *AmbiguousMediaTypeError
	return errors.As(err, &ambiguousErr)
}

func IsMalformedMultipartErr(err error) bool {
	var malformedErr *MalformedMultipartError
	return errors.As(err, &malformedErr)
}
