package source

import "strconv"

// FileID indexes a File inside its FileSet.
type FileID uint32

// FileFlags record what Normalize did to the raw bytes.
type FileFlags uint8

const (
	FileVirtual        FileFlags = 1 << iota // added from memory, no path on disk
	FileHadBOM                               // leading UTF-8 BOM stripped
	FileNormalizedCRLF                       // \r\n rewritten to \n
	FileNormalizedNFC                        // e.g. decomposed Hangul jamo composed to 냥
)

// File is one loaded nyanlang source.
type File struct {
	ID      FileID
	Path    string
	Content []byte   // после нормализации
	LineIdx []uint32 // offsets of every '\n'
	Hash    [32]byte // sha256 of Content
	Flags   FileFlags
}

// LineCol is a 1-based position; Col counts bytes.
type LineCol struct {
	Line uint32
	Col  uint32
}

// Span is the half-open byte range [Start, End) of one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) Empty() bool { return s.End <= s.Start }
func (s Span) Len() uint32 { return s.End - s.Start }
func (s Span) String() string {
	return strconv.FormatUint(uint64(s.File), 10) + ":" +
		strconv.FormatUint(uint64(s.Start), 10) + "-" +
		strconv.FormatUint(uint64(s.End), 10)
}

// Cover grows s to include other; spans of another file leave s unchanged.
func (s Span) Cover(other Span) Span {
	if s.File == other.File {
		s.Start, s.End = min(s.Start, other.Start), max(s.End, other.End)
	}
	return s
}
