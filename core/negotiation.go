package core

import (
	"fmt"
	"strings"
)

// SupportedTypeTable records which response encodings a resource kind is
// known to accept. It has two forms: a plain set of media types, or an
// ordered mapping from transfer syntax UID to the media type that syntax
// implies. Tables are immutable after construction; the package-level tables
// in tables.go are constants for the lifetime of the client.
type SupportedTypeTable struct {
	mediaTypes map[string]struct{}
	syntaxUIDs []string
	bySyntax   map[string]string
}

// SyntaxMapping pairs a transfer syntax UID with the media type it implies.
type SyntaxMapping struct {
	UID       string
	MediaType string
}

// NewSupportedTypes builds a set-form table from plain media types.
func NewSupportedTypes(mediaTypes ...string) SupportedTypeTable {
	set := make(map[string]struct{}, len(mediaTypes))
	for _, mediaType := range mediaTypes {
		set[mediaType] = struct{}{}
	}
	return SupportedTypeTable{mediaTypes: set}
}

// NewSyntaxTable builds a mapping-form table, preserving pair order. A
// repeated UID keeps its first position and takes the last media type.
func NewSyntaxTable(pairs ...SyntaxMapping) SupportedTypeTable {
	uids := make([]string, 0, len(pairs))
	bySyntax := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		if _, seen := bySyntax[pair.UID]; !seen {
			uids = append(uids, pair.UID)
		}
		bySyntax[pair.UID] = pair.MediaType
	}
	return SupportedTypeTable{syntaxUIDs: uids, bySyntax: bySyntax}
}

// Mapped reports whether the table is mapping-form.
func (t SupportedTypeTable) Mapped() bool {
	return t.bySyntax != nil
}

// Contains reports whether mediaType is a member of a set-form table, or is
// implied by any transfer syntax of a mapping-form table.
func (t SupportedTypeTable) Contains(mediaType string) bool {
	if t.bySyntax != nil {
		for _, implied := range t.bySyntax {
			if implied == mediaType {
				return true
			}
		}
		return false
	}
	_, ok := t.mediaTypes[mediaType]
	return ok
}

// MediaTypeFor returns the media type implied by a transfer syntax UID of a
// mapping-form table.
func (t SupportedTypeTable) MediaTypeFor(uid string) (string, bool) {
	mediaType, ok := t.bySyntax[uid]
	return mediaType, ok
}

// TransferSyntaxes returns the UIDs of a mapping-form table in construction
// order. Set-form tables return nil.
func (t SupportedTypeTable) TransferSyntaxes() []string {
	if t.syntaxUIDs == nil {
		return nil
	}
	uids := make([]string, len(t.syntaxUIDs))
	copy(uids, t.syntaxUIDs)
	return uids
}

// BuildAcceptHeader renders the Accept header value for a simple
// (non-multipart) retrieval. Directives keep the caller's order since
// negotiation preference is positional. The first invalid or unsupported
// descriptor aborts the build; no partial header is returned.
//
// The inline " transfer-syntax: <uid>" suffix is the historical wire form
// for simple retrievals and is intentionally not a ;-separated parameter.
func BuildAcceptHeader(descriptors []MediaDescriptor, supported SupportedTypeTable) (string, error) {
	directives := make([]string, 0, len(descriptors))
	for _, descriptor := range descriptors {
		if err := ValidateMediaType(descriptor.ContentType); err != nil {
			return "", err
		}
		if !supported.Contains(descriptor.ContentType) {
			return "", &UnsupportedMediaTypeError{MediaType: descriptor.ContentType}
		}
		directive := fmt.Sprintf("type=%q", descriptor.ContentType)
		if descriptor.TransferSyntax != "" {
			directive += " transfer-syntax: " + descriptor.TransferSyntax
		}
		directives = append(directives, directive)
	}
	return strings.Join(directives, ", "), nil
}

// BuildMultipartAcceptHeader renders the Accept header value for a
// multipart/related retrieval, cross-validating each requested transfer
// syntax against the table of the resource kind being addressed. Directives
// keep the caller's order; the first failing descriptor aborts the build.
//
// Resources are retrievable via more than one transfer syntax, and a family
// wildcard ("image/" or "image/*") lets a caller ask generically for any
// encoding of that family without enumerating every syntax.
func BuildMultipartAcceptHeader(descriptors []MediaDescriptor, supported SupportedTypeTable) (string, error) {
	directives := make([]string, 0, len(descriptors))
	for _, descriptor := range descriptors {
		if err := ValidateMediaType(descriptor.ContentType); err != nil {
			return "", err
		}
		if supported.Mapped() {
			if err := checkAgainstSyntaxTable(descriptor, supported); err != nil {
				return "", err
			}
		} else if !supported.Contains(descriptor.ContentType) {
			return "", &UnsupportedMediaTypeError{MediaType: descriptor.ContentType}
		}
		directive := fmt.Sprintf("multipart/related; type=%q", descriptor.ContentType)
		if descriptor.TransferSyntax != "" {
			directive += "; transfer-syntax=" + descriptor.TransferSyntax
		}
		directives = append(directives, directive)
	}
	return strings.Join(directives, ", "), nil
}

// checkAgainstSyntaxTable applies mapping-form validation. The media type
// must be implied by some table syntax or be a family wildcard. A concrete
// requested syntax must be a table key, and the media type it implies must
// equal the requested one; a family wildcard stands in for the implied type
// only when the top-level types agree.
func checkAgainstSyntaxTable(descriptor MediaDescriptor, table SupportedTypeTable) error {
	if !table.Contains(descriptor.ContentType) && !isTypeWildcard(descriptor.ContentType) {
		return &UnsupportedMediaTypeError{MediaType: descriptor.ContentType}
	}
	if descriptor.TransferSyntax == "" || descriptor.TransferSyntax == Wildcard {
		return nil
	}
	implied, ok := table.MediaTypeFor(descriptor.TransferSyntax)
	if !ok {
		return &UnsupportedTransferSyntaxError{TransferSyntax: descriptor.TransferSyntax}
	}
	if implied == descriptor.ContentType {
		return nil
	}
	if isTypeWildcard(descriptor.ContentType) && topLevelOf(implied) == topLevelOf(descriptor.ContentType) {
		return nil
	}
	return &UnsupportedTransferSyntaxError{
		TransferSyntax: descriptor.TransferSyntax,
		MediaType:      descriptor.ContentType,
	}
}
