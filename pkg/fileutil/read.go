package fileutil

import (
	"io"
	"os"

	"github.com/nahidreza/folio/internal/errors"
)

// DefaultMaxSize bounds a single content file (1MB).
const DefaultMaxSize int64 = 1 << 20

// ErrFileTooLarge marks reads that exceeded their limit.
var ErrFileTooLarge = errors.New("file too large")

// ReadLimited reads path, refusing files larger than limit bytes. A limit
// of zero or less means DefaultMaxSize. The cause is kept, so
// errors.Is(err, fs.ErrNotExist) works on the result.
func ReadLimited(path string, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultMaxSize
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	if st, err := f.Stat(); err == nil {
		if st.IsDir() {
			return nil, errors.Newf("%s is a directory", path)
		}
		if st.Size() > limit {
			return nil, tooLarge(st.Size(), limit)
		}
	}

	// The file can grow between Stat and ReadAll.
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if int64(len(data)) > limit {
		return nil, tooLarge(int64(len(data)), limit)
	}
	return data, nil
}

func tooLarge(size, limit int64) error {
	return errors.Mark(errors.Newf("%d bytes exceeds the %d byte limit", size, limit), ErrFileTooLarge)
}
