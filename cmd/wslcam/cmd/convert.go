/*
Copyright © 2025 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/apex/log"
	"github.com/blacktop/wslcam/internal/config"
	"github.com/blacktop/wslcam/internal/utils"
	"github.com/blacktop/wslcam/pkg/photo"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(convertCmd)
}

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <SRC> <DST>",
	Short: "Convert every image of a folder to another format",
	Example: heredoc.Doc(`
		# Convert photos that were already copied off the camera
		$ wslcam convert ./DCIM ./converted -f jpg --quality 90 --keep-time`),
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		src := filepath.Clean(args[0])
		dst := filepath.Clean(args[1])
		if err := os.MkdirAll(dst, 0o750); err != nil {
			return fmt.Errorf("failed to create %s: %w", dst, err)
		}

		opts := cfg.PhotoOptions()
		opts.OnConvert = func(r photo.Result) {
			utils.Indent(log.WithFields(log.Fields{
				"size":   humanize.Bytes(uint64(r.Size)),
				"pixels": fmt.Sprintf("%dx%d", r.Width, r.Height),
			}).Info, 2)(filepath.Base(r.Output))
		}

		results, err := photo.ConvertDir(src, dst, opts)
		if err != nil {
			return err
		}

		log.WithField("count", len(results)).Infof("Converted photos into %s", dst)

		return nil
	},
}
