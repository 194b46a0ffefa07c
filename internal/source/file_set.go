package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet owns every file of one run and resolves spans to positions.
// Files are only appended, so a FileID stays valid for the whole run and
// concurrent readers are safe once loading has finished.
type FileSet struct {
	files   []File
	latest  map[string]FileID // путь -> последняя версия
	baseDir string
}

// NewFileSet creates an empty FileSet whose base dir is the working dir.
func NewFileSet() *FileSet {
	return &FileSet{latest: make(map[string]FileID)}
}

// SetBaseDir sets the directory that relative paths are printed against.
func (fs *FileSet) SetBaseDir(dir string) { fs.baseDir = dir }

// BaseDir returns the base dir, or the working dir when unset.
func (fs *FileSet) BaseDir() string {
	if fs.baseDir != "" {
		return fs.baseDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

// Add stores already normalized content. Re-adding a path creates a new
// version; GetLatest points at the newest one.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("too many files: %w", err))
	}
	id, clean := FileID(n), normalizePath(path)
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    clean,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	fs.latest[clean] = id
	return id
}

// Load reads path, applies Normalize and adds the result.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content, flags := Normalize(raw)
	return fs.Add(path, content, flags), nil
}

// AddVirtual adds in-memory text as is, without normalization.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

func (fs *FileSet) Get(id FileID) *File { return &fs.files[id] }

func (fs *FileSet) Len() int { return len(fs.files) }

// GetLatest returns the newest version of path.
func (fs *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fs.latest[normalizePath(path)]
	return id, ok
}

// Resolve maps both ends of span to line/column.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	idx := fs.files[span.File].LineIdx
	return toLineCol(idx, span.Start), toLineCol(idx, span.End)
}

// Normalize strips a UTF-8 BOM, rewrites CRLF to LF and composes to NFC,
// reporting each rewrite in the flags.
func Normalize(content []byte) ([]byte, FileFlags) {
	var flags FileFlags
	steps := []struct {
		apply func([]byte) ([]byte, bool)
		flag  FileFlags
	}{
		{removeBOM, FileHadBOM},
		{normalizeCRLF, FileNormalizedCRLF},
		{normalizeNFC, FileNormalizedNFC},
	}
	for _, step := range steps {
		var changed bool
		if content, changed = step.apply(content); changed {
			flags |= step.flag
		}
	}
	return content, flags
}

// GetLine returns line lineNum (1-based) without its '\n'; "" if absent.
func (f *File) GetLine(lineNum uint32) string {
	breaks := uint32(len(f.LineIdx)) // #nosec G115 -- bounded by Add
	if lineNum == 0 || lineNum > breaks+1 {
		return ""
	}
	var start uint32
	if lineNum > 1 {
		start = f.LineIdx[lineNum-2] + 1
	}
	end := uint32(len(f.Content)) // #nosec G115 -- bounded by Add
	if lineNum <= breaks {
		end = f.LineIdx[lineNum-1]
	}
	if start > end {
		return ""
	}
	return string(f.Content[start:end])
}

// FormatPath renders the path for diagnostics.
// mode: "absolute", "relative", "basename", "auto".
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
	case "relative":
		if baseDir == "" {
			baseDir, _ = os.Getwd()
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
	case "basename":
		return BaseName(f.Path)
	case "auto":
		// длинные абсолютные пути сокращаем до basename
		if len(f.Path) >= 40 && os.IsPathSeparator(f.Path[0]) {
			return BaseName(f.Path)
		}
	}
	return f.Path
}
