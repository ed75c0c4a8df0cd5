package jpnphoneme

import (
	"io"
	"os"

	"github.com/go-mmap/mmap"
)

// Load memory-maps the artifact at path and decodes its header. The
// returned closer must be called once the LoadedTrie is no longer needed;
// it unmaps the file.
//
// LookupLongest needs random byte-offset access into the artifact, so Load
// reads the mapped region into a single []byte up front (one copy, at load
// time only) and hands that to Decode. Every query afterwards is against
// that slice with no further I/O.
func Load(path string) (*LoadedTrie, func() error, error) {
	f, err := mmap.Open(path)
	if err != nil {
		return nil, nil, newErr(KindIO, "open artifact %s: %w", path, err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		f.Close()
		return nil, nil, newErr(KindIO, "stat artifact %s: %w", path, err)
	}

	data := make([]byte, fi.Size())
	if _, err := io.ReadFull(f, data); err != nil {
		f.Close()
		return nil, nil, newErr(KindIO, "read artifact %s: %w", path, err)
	}

	lt, err := Decode(data)
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	return lt, f.Close, nil
}
