/*
Package dicomweb_client provides the transport-encoding core of a DICOMweb client.

It builds the content-negotiation headers the protocol requires and encodes/decodes
the multipart/related message bodies that carry binary payloads (DICOM objects,
pixel frames, video, bulkdata) in a single exchange. Acceptable media types are
validated against per-resource supported-type tables, so a request that no known
server capability could satisfy is rejected before it is ever sent.

All operations are pure, synchronous transformations over plain data: the HTTP
exchange itself, authentication and retry policy belong to the surrounding
transport layer, which consumes the header values and byte buffers produced here.
The engine lives in the core subpackage; this package re-exports its entry points.
*/
package dicomweb_client
