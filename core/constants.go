package core

// Protocol constants shared with the transport layer
// These constants provide type-safe header names, media types, and transfer syntax UIDs

// HTTP Header Names
const (
	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"
	HeaderRange       = "Range"
)

// Media types carried by DICOMweb requests and responses
const (
	MediaTypeDICOM       = "application/dicom"
	MediaTypeDICOMJSON   = "application/dicom+json"
	MediaTypeDICOMXML    = "application/dicom+xml"
	MediaTypeOctetStream = "application/octet-stream"
	MediaTypeJPEG        = "image/jpeg"
	MediaTypeJLS         = "image/jls"
	MediaTypeJP2         = "image/jp2"
	MediaTypeJPX         = "image/jpx"
	MediaTypePNG         = "image/png"
	MediaTypeGIF         = "image/gif"
	MediaTypeMPEG        = "video/mpeg"
	MediaTypeMP4         = "video/mp4"
)

// Wildcard accepts any transfer syntax in a MediaDescriptor.
const Wildcard = "*"

// Transfer syntax UIDs from the PS3.6 registry. Each UID names one binary
// encoding of a payload; the tables in tables.go pair them with the media
// type that encoding implies on the wire.
const (
	ImplicitVRLittleEndian         = "1.2.840.10008.1.2"
	ExplicitVRLittleEndian         = "1.2.840.10008.1.2.1"
	DeflatedExplicitVRLittleEndian = "1.2.840.10008.1.2.1.99"
	JPEGBaseline                   = "1.2.840.10008.1.2.4.50"
	JPEGExtended                   = "1.2.840.10008.1.2.4.51"
	JPEGLossless                   = "1.2.840.10008.1.2.4.57"
	JPEGLosslessSV1                = "1.2.840.10008.1.2.4.70"
	JPEGLSLossless                 = "1.2.840.10008.1.2.4.80"
	JPEGLSNearLossless             = "1.2.840.10008.1.2.4.81"
	JPEG2000Lossless               = "1.2.840.10008.1.2.4.90"
	JPEG2000                       = "1.2.840.10008.1.2.4.91"
	MPEG2MainProfile               = "1.2.840.10008.1.2.4.100"
	MPEG2HighProfile               = "1.2.840.10008.1.2.4.101"
	MPEG4HighProfile               = "1.2.840.10008.1.2.4.102"
	MPEG4BDCompatible              = "1.2.840.10008.1.2.4.103"
)
