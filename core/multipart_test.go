package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payloads := []Payload{
		{Data: []byte("AA")},
		{Data: []byte("BBBB")},
	}
	boundary, body := EncodeMultipart(payloads)

	parts, err := DecodeMultipart(body, boundary)
	require.NoError(t, err)
	require.Len(t, parts, 2)

	assert.Equal(t, []byte("AA"), parts[0].Body)
	assert.Equal(t, []byte("BBBB"), parts[1].Body)
	for _, part := range parts {
		assert.Equal(t, MediaTypeOctetStream, part.ContentType())
	}
}

func TestEncodeMultipartWireFormat(t *testing.T) {
	boundary, body := EncodeMultipart([]Payload{
		{ContentType: MediaTypeDICOM, Data: []byte{0x00, 0x01, 0x02}},
	})

	expected := "--" + boundary + "\r\n" +
		"Content-Type: application/dicom\r\n" +
		"\r\n" +
		"\x00\x01\x02\r\n" +
		"--" + boundary + "--"
	assert.Equal(t, expected, string(body))
}

func TestEncodeMultipartBinaryPayloadWithCRLF(t *testing.T) {
	// Payload bytes that look like line terminators must survive untouched.
	payload := []byte("line1\r\n\r\nline2\r\n")
	boundary, body := EncodeMultipart([]Payload{{Data: payload}})

	parts, err := DecodeMultipart(body, boundary)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, payload, parts[0].Body)
}

func TestEncodeMultipartBoundaries(t *testing.T) {
	first, body := EncodeMultipart([]Payload{{Data: []byte("x")}})
	second, _ := EncodeMultipart([]Payload{{Data: []byte("x")}})

	assert.NotEqual(t, first, second)
	// One opening delimiter and one closing delimiter, nothing else.
	assert.Equal(t, 2, bytes.Count(body, []byte("--"+first)))
}

func TestEncodeMultipartNoPayloads(t *testing.T) {
	boundary, body := EncodeMultipart(nil)
	assert.Equal(t, "--"+boundary+"--", string(body))
}

func TestDecodeMultipartEmptyBody(t *testing.T) {
	parts, err := DecodeMultipart(nil, "whatever")
	require.NoError(t, err)
	assert.True(t, parts.Empty())
}

func TestDecodeMultipartHeaderCase(t *testing.T) {
	body := "--b\r\n" +
		"content-type: image/jpeg\r\n" +
		"Content-Location: http://server/studies/1\r\n" +
		"\r\n" +
		"DATA\r\n" +
		"--b--"

	parts, err := DecodeMultipart([]byte(body), "b")
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "image/jpeg", parts[0].Headers.Get("Content-Type"))
	assert.Equal(t, "http://server/studies/1", parts[0].Headers.Get("content-location"))
	assert.Equal(t, []byte("DATA"), parts[0].Body)
}

func TestDecodeMultipartSkipsPreambleAndEpilogue(t *testing.T) {
	body := "this is a preamble\r\n" +
		"--b\r\n" +
		"Content-Type: application/octet-stream\r\n" +
		"\r\n" +
		"PAYLOAD\r\n" +
		"--b--\r\n" +
		"trailing epilogue"

	parts, err := DecodeMultipart([]byte(body), "b")
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, []byte("PAYLOAD"), parts[0].Body)
}

func TestDecodeMultipartMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "no delimiter",
			body: "no delimiters at all",
		},
		{
			name: "missing closing delimiter",
			body: "--b\r\nContent-Type: application/dicom\r\n\r\nAA\r\n",
		},
		{
			name: "missing header body separator",
			body: "--b\r\nContent-Type: application/dicom\r\nAA--b--",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeMultipart([]byte(tt.body), "b")
			require.Error(t, err)
			assert.True(t, IsMalformedMultipartErr(err))
		})
	}
}

func TestDecodeMultipartOwnsPartBodies(t *testing.T) {
	boundary, body := EncodeMultipart([]Payload{{Data: []byte("AAAA")}})
	parts, err := DecodeMultipart(body, boundary)
	require.NoError(t, err)

	// Clobbering the source buffer must not reach into decoded parts.
	for i := range body {
		body[i] = 0xFF
	}
	assert.Equal(t, []byte("AAAA"), parts[0].Body)
}

func TestMultipartContentType(t *testing.T) {
	value := MultipartContentType(MediaTypeDICOM, "abc123")
	assert.Equal(t, "multipart/related; type=application/dicom; boundary=abc123", value)
}

func TestNewBoundary(t *testing.T) {
	boundary := NewBoundary()
	assert.Len(t, boundary, 32)
	assert.False(t, strings.Contains(boundary, "-"))
}
