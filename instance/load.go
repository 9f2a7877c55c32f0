package instance

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/lvknap/knapsack"
)

// Format names an instance encoding.
type Format string

const (
	// FormatText is the whitespace "n capacity / value weight" encoding.
	FormatText Format = "text"
	// FormatYAML is the capacity/items YAML encoding.
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: format %q", ErrUnsupported, name)
	}
}

// Decode reads inst from r in the given format.
func Decode(r io.Reader, f Format) (knapsack.Instance, error) {
	switch f {
	case FormatText:
		return Parse(r)
	case FormatYAML:
		return ParseYAML(r)
	default:
		return knapsack.Instance{}, fmt.Errorf("%w: format %q", ErrUnsupported, f)
	}
}

// Encode writes inst to w in the given format.
func Encode(w io.Writer, inst knapsack.Instance, f Format) error {
	switch f {
	case FormatText:
		return Write(w, inst)
	case FormatYAML:
		return WriteYAML(w, inst)
	default:
		return fmt.Errorf("%w: format %q", ErrUnsupported, f)
	}
}

// compression is the optional outer layer of a file.
type compression int

const (
	compressNone compression = iota
	compressGzip
	compressZstd
)

// classify splits path into its compression layer and its inner format.
func classify(path string) (compression, Format) {
	name := strings.ToLower(filepath.Base(path))
	c := compressNone
	switch {
	case strings.HasSuffix(name, ".gz"):
		c = compressGzip
		name = strings.TrimSuffix(name, ".gz")
	case strings.HasSuffix(name, ".zst"):
		c = compressZstd
		name = strings.TrimSuffix(name, ".zst")
	}
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return c, FormatYAML
	default:
		return c, FormatText
	}
}

// Load reads the instance stored at path. A ".gz" or ".zst" suffix selects
// gzip or zstd decompression; the remaining extension selects the format.
func Load(path string) (knapsack.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return knapsack.Instance{}, fmt.Errorf("instance: open %s: %w", path, err)
	}
	defer f.Close()

	c, format := classify(path)
	var r io.Reader = f
	switch c {
	case compressGzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			return knapsack.Instance{}, fmt.Errorf("instance: gzip %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	case compressZstd:
		dec, err := zstd.NewReader(f)
		if err != nil {
			return knapsack.Instance{}, fmt.Errorf("instance: zstd %s: %w", path, err)
		}
		defer dec.Close()
		r = dec
	}

	inst, err := Decode(r, format)
	if err != nil {
		return knapsack.Instance{}, fmt.Errorf("%s: %w", path, err)
	}

	return inst, nil
}

// Save writes inst to path, compressing and encoding it according to the
// file name the same way Load decodes it.
func Save(path string, inst knapsack.Instance) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("instance: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("instance: close %s: %w", path, cerr)
		}
	}()

	c, format := classify(path)
	switch c {
	case compressGzip:
		gz := gzip.NewWriter(f)
		if err = Encode(gz, inst, format); err != nil {
			return err
		}
		return gz.Close()
	case compressZstd:
		enc, zerr := zstd.NewWriter(f)
		if zerr != nil {
			return fmt.Errorf("instance: zstd %s: %w", path, zerr)
		}
		if err = Encode(enc, inst, format); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	default:
		return Encode(f, inst, format)
	}
}
