package dicomweb_client

import (
	"github.com/vsaase/dicomweb-client/core"
)

type (
	MediaDescriptor    = core.MediaDescriptor
	SupportedTypeTable = core.SupportedTypeTable
	SyntaxMapping      = core.SyntaxMapping
	Payload            = core.Payload
	Part               = core.Part
	PartSet            = core.PartSet
	ByteRange          = core.ByteRange
	Renderable         = core.Renderable
)

// ClientVersion returns the version of this client library, for the
// transport layer to advertise in its User-Agent header.
func ClientVersion() string {
	return core.ClientVersion()
}

// BuildAcceptHeader builds the Accept header value for a simple
// (non-multipart) retrieval from acceptable descriptors in preference order.
func BuildAcceptHeader(descriptors []MediaDescriptor, supported SupportedTypeTable) (string, error) {
	return core.BuildAcceptHeader(descriptors, supported)
}

// BuildMultipartAcceptHeader builds the Accept header value for a
// multipart/related retrieval, cross-validating requested transfer syntaxes
// against the resource kind's supported-type table.
func BuildMultipartAcceptHeader(descriptors []MediaDescriptor, supported SupportedTypeTable) (string, error) {
	return core.BuildMultipartAcceptHeader(descriptors, supported)
}

// ResolveCommonType reduces acceptable descriptors to the single media-type
// bucket used to pick a decode path for the response.
func ResolveCommonType(descriptors []MediaDescriptor) (string, error) {
	return core.ResolveCommonType(descriptors)
}

// EncodeMultipart serializes payloads into one multipart/related wire body,
// returning the generated boundary and the assembled buffer.
func EncodeMultipart(payloads []Payload) (string, []byte) {
	return core.EncodeMultipart(payloads)
}

// DecodeMultipart splits a received multipart/related body into its ordered
// parts using the boundary declared by the response's Content-Type.
func DecodeMultipart(body []byte, boundary string) (PartSet, error) {
	return core.DecodeMultipart(body, boundary)
}
