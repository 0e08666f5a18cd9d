// Package transfer downloads the photos from the camera and converts them.
package transfer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/blacktop/wslcam/internal/context"
	"github.com/blacktop/wslcam/internal/prompt"
	"github.com/blacktop/wslcam/pkg/photo"
	"github.com/dustin/go-humanize"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Pipe for the transfer.
//
// The staging directory only lives for the duration of Run.
type Pipe struct{}

func (Pipe) String() string { return "transferring photos" }

func (Pipe) Run(ctx *context.Context) error {
	tmp, err := os.MkdirTemp("", "wslcam_")
	if err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(tmp)

	if err := ctx.GPhoto.GetAllFiles(ctx, tmp); err != nil {
		return fmt.Errorf("error exporting photos: %w", err)
	}

	dest, err := destination(ctx)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0o750); err != nil {
		return fmt.Errorf("failed to create destination %s: %w", dest, err)
	}
	ctx.Destination = dest

	results, err := convert(ctx, tmp, dest)
	ctx.Converted = results
	if err != nil {
		return fmt.Errorf("failed to convert photos: %w", err)
	}

	var total int64
	for _, r := range results {
		total += r.Size
	}
	log.WithFields(log.Fields{
		"count": len(results),
		"size":  humanize.Bytes(uint64(total)),
	}).Infof("Saved photos to %s", dest)

	return nil
}

func destination(ctx *context.Context) (string, error) {
	if dest := strings.TrimSpace(ctx.Config.Destination); dest != "" {
		return filepath.Clean(dest), nil
	}
	dest, err := ctx.Prompt.Directory("Select a location to save the files", "./")
	if err != nil {
		if errors.Is(err, prompt.ErrInterrupted) {
			return "", fmt.Errorf("no destination selected")
		}
		return "", fmt.Errorf("no destination selected: %w", err)
	}
	dest = strings.TrimSpace(dest)
	if dest == "" {
		return "", fmt.Errorf("no destination selected")
	}
	return filepath.Clean(dest), nil
}

func convert(ctx *context.Context, src, dst string) ([]photo.Result, error) {
	entries, err := os.ReadDir(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", src, err)
	}
	if len(entries) == 0 {
		log.Warn("no photos found on the camera")
		return nil, nil
	}

	var out io.Writer = io.Discard
	if ctx.Progress != nil {
		out = ctx.Progress
	}
	p := mpb.NewWithContext(ctx, mpb.WithWidth(60), mpb.WithOutput(out))
	name := "      "
	bar := p.New(int64(len(entries)),
		mpb.BarStyle().Lbound("[").Filler("=").Tip(">").Padding("-").Rbound("|"),
		mpb.PrependDecorators(
			decor.Name(name, decor.WC{W: len(name), C: decor.DindentRight | decor.DextraSpace}),
			decor.OnComplete(decor.AverageETA(decor.ET_STYLE_GO, decor.WC{W: 4}), "✅ "),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("%d/%d"),
			decor.Name(" ] "),
		),
	)

	opts := ctx.Config.PhotoOptions()
	opts.OnConvert = func(r photo.Result) {
		log.WithFields(log.Fields{
			"size":   humanize.Bytes(uint64(r.Size)),
			"pixels": fmt.Sprintf("%dx%d", r.Width, r.Height),
		}).Debugf("converted %s", filepath.Base(r.Source))
		bar.Increment()
	}

	results, err := photo.ConvertDir(src, dst, opts)
	if err != nil {
		bar.Abort(false)
	}
	p.Wait()

	return results, err
}
