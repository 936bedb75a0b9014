package core

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// crlf is the line terminator required by the multipart wire format.
const crlf = "\r\n"

// Payload is one binary part queued for encoding. ContentType defaults to
// application/octet-stream when empty. The encoder only reads Data for the
// duration of the call; it never retains the caller's buffer.
type Payload struct {
	ContentType string
	Data        []byte
}

// Part is one decoded segment of a multipart/related message. Body is copied
// out of the source buffer, so parts stay valid after the transport layer
// recycles the response bytes.
type Part struct {
	Headers http.Header
	Body    []byte
}

// ContentType returns the part's declared Content-Type header, or an empty
// string when absent.
func (p Part) ContentType() string {
	return p.Headers.Get(HeaderContentType)
}

// PartSet represents the ordered parts decoded from one multipart message.
type PartSet []Part

// NewBoundary returns a random boundary token. Collision with payload bytes
// is probabilistically excluded rather than scanned for: the token carries
// 122 bits of randomness.
func NewBoundary() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// MultipartContentType composes the Content-Type header value announcing an
// encoded multipart/related body, e.g.
// "multipart/related; type=application/dicom; boundary=<generated>" for
// store-instances uploads.
func MultipartContentType(mediaType, boundary string) string {
	return fmt.Sprintf("multipart/related; type=%s; boundary=%s", mediaType, boundary)
}

// EncodeMultipart serializes payloads, in order, into one multipart/related
// wire message. It returns the generated boundary and the assembled buffer;
// the caller is responsible for placing the boundary into the outgoing
// Content-Type header (see MultipartContentType).
func EncodeMultipart(payloads []Payload) (string, []byte) {
	boundary := NewBoundary()
	var buf bytes.Buffer
	for _, payload := range payloads {
		contentType := payload.ContentType
		if contentType == "" {
			contentType = MediaTypeOctetStream
		}
		buf.WriteString("--" + boundary + crlf)
		buf.WriteString(HeaderContentType + ": " + contentType + crlf)
		buf.WriteString(crlf)
		buf.Write(payload.Data)
		buf.WriteString(crlf)
	}
	buf.WriteString("--" + boundary + "--")
	return boundary, buf.Bytes()
}

// DecodeMultipart splits a received multipart/related body into its ordered
// parts. The boundary must be derived by the caller from the response's
// declared Content-Type before calling. An empty body decodes to zero parts:
// an empty successful response is not malformed.
func DecodeMultipart(body []byte, boundary string) (PartSet, error) {
	if len(body) == 0 {
		return PartSet{}, nil
	}
	delimiter := []byte("--" + boundary)
	segments := bytes.Split(body, delimiter)
	if len(segments) < 2 {
		return nil, &MalformedMultipartError{
			Reason: fmt.Sprintf("delimiter '%s' not found", delimiter),
		}
	}
	if !bytes.HasPrefix(segments[len(segments)-1], []byte("--")) {
		return nil, &MalformedMultipartError{Reason: "closing delimiter is absent"}
	}

	// segments[0] is the preamble and the final segment the epilogue after
	// the closing delimiter; both are discarded.
	parts := make(PartSet, 0, len(segments)-2)
	for index, segment := range segments[1 : len(segments)-1] {
		part, err := decodePart(segment)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", index, err)
		}
		parts = append(parts, part)
	}
	return parts, nil
}

// decodePart parses one delimited segment: header lines up to the first
// blank line, then the raw payload up to but excluding the trailing line
// terminator. Header names are mapped case-insensitively.
func decodePart(segment []byte) (Part, error) {
	segment = bytes.TrimPrefix(segment, []byte(crlf))
	headerEnd := bytes.Index(segment, []byte(crlf+crlf))
	if headerEnd < 0 {
		return Part{}, &MalformedMultipartError{
			Reason: "no blank line between headers and payload",
		}
	}

	headers := make(http.Header)
	for _, line := range bytes.Split(segment[:headerEnd], []byte(crlf)) {
		name, value, found := bytes.Cut(line, []byte(":"))
		if !found {
			return Part{}, &MalformedMultipartError{
				Reason: fmt.Sprintf("header line '%s' has no ':' separator", line),
			}
		}
		headers.Add(
			strings.TrimSpace(string(name)),
			strings.TrimSpace(string(value)),
		)
	}

	payload := segment[headerEnd+2*len(crlf):]
	payload = bytes.TrimSuffix(payload, []byte(crlf))
	// Copied, not aliased: the transport does not guarantee the lifetime of
	// the source buffer.
	body := make([]byte, len(payload))
	copy(body, payload)
	return Part{Headers: headers, Body: body}, nil
}
