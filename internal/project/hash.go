package project

import (
	"crypto/sha256"
)

// Digest - фиксированный 256 битный хеш (совместим с source.File.Hash)
type Digest [32]byte

// Combine строит хеш: H( content || salt1 || salt2 ... ).
// Соль (версия форматтера, схема кеша) делает ключ зависимым от программы,
// а не только от содержимого файла.
func Combine(content Digest, salts ...string) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, s := range salts {
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(s))
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
