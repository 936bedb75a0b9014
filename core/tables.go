package core

// Supported-type tables per resource kind. The transfer-syntax/media-type
// pairings follow PS3.18 Table 8.7.3-5. Read-only for the lifetime of the
// client; servers with a different capability set can be described with
// NewSupportedTypes / NewSyntaxTable or LoadTables.

// RetrieveInstanceTypes covers full-object retrieval (study, series or
// instance level): every transfer syntax yields a complete
// application/dicom object.
var RetrieveInstanceTypes = NewSyntaxTable(
	SyntaxMapping{ImplicitVRLittleEndian, MediaTypeDICOM},
	SyntaxMapping{ExplicitVRLittleEndian, MediaTypeDICOM},
	SyntaxMapping{DeflatedExplicitVRLittleEndian, MediaTypeDICOM},
	SyntaxMapping{JPEGBaseline, MediaTypeDICOM},
	SyntaxMapping{JPEGExtended, MediaTypeDICOM},
	SyntaxMapping{JPEGLossless, MediaTypeDICOM},
	SyntaxMapping{JPEGLosslessSV1, MediaTypeDICOM},
	SyntaxMapping{JPEGLSLossless, MediaTypeDICOM},
	SyntaxMapping{JPEGLSNearLossless, MediaTypeDICOM},
	SyntaxMapping{JPEG2000Lossless, MediaTypeDICOM},
	SyntaxMapping{JPEG2000, MediaTypeDICOM},
	SyntaxMapping{MPEG2MainProfile, MediaTypeDICOM},
	SyntaxMapping{MPEG2HighProfile, MediaTypeDICOM},
	SyntaxMapping{MPEG4HighProfile, MediaTypeDICOM},
	SyntaxMapping{MPEG4BDCompatible, MediaTypeDICOM},
)

// RetrieveFramesTypes covers pixel-frame retrieval: uncompressed frames
// travel as raw octet streams, compressed frames as the image format their
// transfer syntax implies.
var RetrieveFramesTypes = NewSyntaxTable(
	SyntaxMapping{ExplicitVRLittleEndian, MediaTypeOctetStream},
	SyntaxMapping{JPEGBaseline, MediaTypeJPEG},
	SyntaxMapping{JPEGExtended, MediaTypeJPEG},
	SyntaxMapping{JPEGLossless, MediaTypeJPEG},
	SyntaxMapping{JPEGLosslessSV1, MediaTypeJPEG},
	SyntaxMapping{JPEGLSLossless, MediaTypeJLS},
	SyntaxMapping{JPEGLSNearLossless, MediaTypeJLS},
	SyntaxMapping{JPEG2000Lossless, MediaTypeJP2},
	SyntaxMapping{JPEG2000, MediaTypeJP2},
)

// RetrieveVideoTypes covers retrieval of multi-frame video pixel data.
var RetrieveVideoTypes = NewSyntaxTable(
	SyntaxMapping{MPEG2MainProfile, MediaTypeMPEG},
	SyntaxMapping{MPEG2HighProfile, MediaTypeMPEG},
	SyntaxMapping{MPEG4HighProfile, MediaTypeMP4},
	SyntaxMapping{MPEG4BDCompatible, MediaTypeMP4},
)

// RetrieveBulkdataTypes covers bulkdata URI retrieval, which always returns
// raw octet streams.
var RetrieveBulkdataTypes = NewSupportedTypes(
	MediaTypeOctetStream,
)

// RetrieveRenderedTypes covers server-side rendered previews, which are
// plain consumer image formats rather than DICOM encodings.
var RetrieveRenderedTypes = NewSupportedTypes(
	MediaTypeJPEG,
	MediaTypeGIF,
	MediaTypePNG,
	MediaTypeJP2,
)
