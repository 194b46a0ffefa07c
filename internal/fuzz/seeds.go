package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

// languageSeeds покрывают все виды токенов и все формы Code.
var languageSeeds = []string{
	"",
	"\n",
	" \t\n\n",
	`"hi"냥냥!?`,
	"냥?냥.,~-뀨!\n\n냐",
	"\n\"a\"\n\n\"b\"\n?!\n,.\n\n\"c\"",
	"\"only\"\n\n\n\"comments\"\n",
	"뀨 뀨\n\"x\"~-~-\n\"y\"",
	"\"\"",
	"\"a\"\r\n냥\r\n",
	"\"open",
	"냥 x 냐",
	"냥\n\n\n냐",
	"?냥",
	".냥",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds добавляет *.nyan файлы из testdata, если он есть.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".nyan" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
