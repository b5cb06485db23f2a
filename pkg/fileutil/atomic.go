// Package fileutil provides bounded reads for content files and atomic
// writes for exported bundles.
package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nahidreza/folio/internal/errors"
)

// Encoding selects the serialization used by WriteEncoded.
type Encoding string

const (
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
)

// ErrUnknownEncoding is returned for an Encoding other than JSON or YAML.
var ErrUnknownEncoding = errors.New("unknown encoding")

// AtomicWriteFile writes data to a file atomically using a temp file + rename pattern.
// Interrupted writes leave any previous file intact.
//
// The caller is responsible for ensuring the parent directory exists.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".folio-atomic-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()

	renamed := false
	defer func() {
		if !renamed {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}
	renamed = true

	return nil
}

// WriteEncoded serializes v with enc and writes it atomically to path with
// 0644 permissions. Output always ends in a newline.
func WriteEncoded(path string, v any, enc Encoding) error {
	data, err := Encode(v, enc)
	if err != nil {
		return err
	}
	return AtomicWriteFile(path, data, 0o644)
}

// Encode serializes v as indented JSON or as YAML.
func Encode(v any, enc Encoding) (data []byte, err error) {
	switch enc {
	case EncodingJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "marshaling JSON")
		}
	case EncodingYAML:
		// yaml.Marshal panics on unsupported types such as channels.
		defer func() {
			if r := recover(); r != nil {
				data, err = nil, errors.Newf("marshaling YAML: %v", r)
			}
		}()
		data, err = yaml.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(err, "marshaling YAML")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownEncoding, "%q", enc)
	}

	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data, nil
}

// Decode parses data encoded with enc into v.
func Decode(data []byte, v any, enc Encoding) error {
	switch enc {
	case EncodingJSON:
		return errors.Wrap(json.Unmarshal(data, v), "unmarshaling JSON")
	case EncodingYAML:
		return errors.Wrap(yaml.Unmarshal(data, v), "unmarshaling YAML")
	default:
		return errors.Wrapf(ErrUnknownEncoding, "%q", enc)
	}
}
