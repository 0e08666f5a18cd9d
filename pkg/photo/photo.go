// Package photo converts downloaded camera images to another image format.
package photo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp" // register webp decoding
)

// DefaultQuality is the JPEG quality used when none is given.
const DefaultQuality = 95

// Options controls a conversion.
type Options struct {
	// Format is the output extension, e.g. "png" or "jpg".
	Format string
	// Quality is the JPEG quality (1-100); ignored for other formats.
	Quality int
	// AutoOrient applies the EXIF orientation tag while decoding.
	AutoOrient bool
	// PreserveTimes sets the output's modification time to the EXIF capture time.
	PreserveTimes bool
	// OnConvert is called after every successfully written file.
	OnConvert func(Result)
}

// Result describes one converted file.
type Result struct {
	Source string
	Output string
	Width  int
	Height int
	Size   int64
}

// Error is returned when a file cannot be decoded or encoded.
type Error struct {
	Op   string // "decode" or "encode"
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NormalizeFormat lower-cases the format and strips a leading dot.
func NormalizeFormat(format string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(format)), ".")
}

// Supported returns true if images can be written with the given extension.
func Supported(format string) bool {
	format = NormalizeFormat(format)
	if format == "" {
		return false
	}
	_, err := imaging.FormatFromExtension(format)
	return err == nil
}

// OutputPath returns <dst>/<stem of src>.<format>.
func OutputPath(src, dst, format string) string {
	name := filepath.Base(src)
	stem := name
	// leading dots do not start an extension: ".jpg" has none
	if strings.Contains(strings.TrimLeft(name, "."), ".") {
		stem = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return filepath.Join(dst, stem+"."+NormalizeFormat(format))
}

// ConvertDir converts every entry of src into dst. Entries are not filtered
// and sub-directories are not walked; the first failure stops the run.
func ConvertDir(src, dst string, opts Options) ([]Result, error) {
	entries, err := os.ReadDir(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", src, err)
	}

	var results []Result
	for _, entry := range entries {
		res, err := Convert(filepath.Join(src, entry.Name()), dst, opts)
		if err != nil {
			return results, err
		}
		results = append(results, *res)
		if opts.OnConvert != nil {
			opts.OnConvert(*res)
		}
	}

	return results, nil
}

// Convert decodes the image at path and writes it to dst in opts.Format,
// overwriting any existing file.
func Convert(path, dst string, opts Options) (*Result, error) {
	if !Supported(opts.Format) {
		return nil, &Error{Op: "encode", Path: path, Err: imaging.ErrUnsupportedFormat}
	}
	quality := opts.Quality
	if quality <= 0 {
		quality = DefaultQuality
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(opts.AutoOrient))
	if err != nil {
		return nil, &Error{Op: "decode", Path: path, Err: err}
	}

	out := OutputPath(path, dst, opts.Format)
	if err := imaging.Save(img, out, imaging.JPEGQuality(quality)); err != nil {
		return nil, &Error{Op: "encode", Path: out, Err: err}
	}

	if opts.PreserveTimes {
		if taken, err := captureTime(path); err == nil {
			if err := os.Chtimes(out, taken, taken); err != nil {
				log.WithError(err).Warnf("failed to set time on %s", out)
			}
		} else {
			log.WithError(err).Debugf("no capture time for %s", path)
		}
	}

	fi, err := os.Stat(out)
	if err != nil {
		return nil, &Error{Op: "encode", Path: out, Err: err}
	}

	return &Result{
		Source: path,
		Output: out,
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
		Size:   fi.Size(),
	}, nil
}

func captureTime(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, err
	}
	return x.DateTime()
}
