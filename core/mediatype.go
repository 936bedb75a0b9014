package core

import (
	"fmt"
	"strings"
)

// MediaDescriptor names one acceptable response encoding: a media type and,
// optionally, the transfer syntax UID the payload should be encoded with.
// An empty TransferSyntax means no preference; Wildcard accepts any syntax
// the server picks.
type MediaDescriptor struct {
	ContentType    string
	TransferSyntax string
}

var topLevelTypes = map[string]struct{}{
	"application": {},
	"image":       {},
	"text":        {},
	"video":       {},
}

// ValidateMediaType checks that mediaType has the shape "type/subtype" with
// a recognized top-level type. Pure predicate, no side effects.
func ValidateMediaType(mediaType string) error {
	if mediaType == "" {
		return &InvalidMediaTypeError{MediaType: mediaType, Reason: "media type is empty"}
	}
	topLevel, subtype, found := strings.Cut(mediaType, "/")
	if !found {
		return &InvalidMediaTypeError{MediaType: mediaType, Reason: "missing '/' separator"}
	}
	if _, ok := topLevelTypes[topLevel]; !ok {
		return &InvalidMediaTypeError{
			MediaType: mediaType,
			Reason:    fmt.Sprintf("unrecognized top-level type '%s'", topLevel),
		}
	}
	if strings.Contains(subtype, "/") {
		return &InvalidMediaTypeError{MediaType: mediaType, Reason: "subtype contains '/'"}
	}
	return nil
}

// topLevelOf returns the segment before the '/'.
func topLevelOf(mediaType string) string {
	topLevel, _, _ := strings.Cut(mediaType, "/")
	return topLevel
}

// isTypeWildcard reports whether mediaType addresses a whole media family
// ("image/" or "image/*") rather than an exact subtype.
func isTypeWildcard(mediaType string) bool {
	return strings.HasSuffix(mediaType, "/") || strings.HasSuffix(mediaType, "/*")
}

// ResolveCommonType reduces acceptable descriptors to the single bucket the
// caller uses to pick a decode path for the response. application types
// bucket by their exact value; image, video and text payloads bucket by
// media family ("image/") since the subtype may differ per part. The
// descriptor set must reduce to exactly one bucket.
func ResolveCommonType(descriptors []MediaDescriptor) (string, error) {
	if len(descriptors) == 0 {
		return "", &NoCommonMediaTypeError{}
	}
	var buckets []string
	for _, descriptor := range descriptors {
		bucket := descriptor.ContentType
		if !strings.HasPrefix(bucket, "application") {
			bucket = topLevelOf(bucket) + "/"
		}
		if !containsString(buckets, bucket) {
			buckets = append(buckets, bucket)
		}
	}
	if len(buckets) > 1 {
		return "", &AmbiguousMediaTypeError{Buckets: buckets}
	}
	return buckets[0], nil
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
