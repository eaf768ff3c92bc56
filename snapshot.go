package shelf

import "io"

// SnapshotDecoder parses catalog and directory snapshots.
// Decoding errors are reported as EINVALID.
type SnapshotDecoder interface {
	DecodeCatalog(r io.Reader) (*Catalog, error)
	DecodeDirectory(r io.Reader) (*Directory, error)
}
