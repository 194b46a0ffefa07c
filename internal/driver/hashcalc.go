package driver

import (
	"crypto/sha256"
	"strconv"

	"nyanfmt/internal/project"
	"nyanfmt/internal/version"
)

// cacheSalt ties cache records to the formatter build: a new printer may
// disagree with what an old one considered canonical.
func cacheSalt() []string {
	return []string{"nyanfmt", version.Plain(), "schema", strconv.Itoa(int(diskCacheSchemaVersion))}
}

// contentKey hashes raw file bytes (before BOM/CRLF normalization, so a CRLF
// file never matches its LF twin).
func contentKey(raw []byte) project.Digest {
	return project.Combine(sha256.Sum256(raw), cacheSalt()...)
}
