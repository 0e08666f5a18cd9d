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
	stdctx "context"
	"errors"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/apex/log"
	"github.com/blacktop/wslcam/internal/config"
	"github.com/blacktop/wslcam/internal/context"
	"github.com/blacktop/wslcam/internal/pipeline"
	"github.com/blacktop/wslcam/internal/prompt"
	"github.com/blacktop/wslcam/internal/shell"
	"github.com/caarlos0/ctrlc"
	"github.com/gen2brain/beeep"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Attach the camera, download and convert every photo",
	Example: heredoc.Doc(`
		# Find the camera, ask where to save the photos and convert them to PNG
		$ wslcam run

		# Save JPEGs into a folder and empty the camera afterwards
		$ wslcam run -f jpg -o D:\Photos --delete

		# Use a camera that reports a different name
		$ wslcam run --name "Canon Digital Camera"`),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WrapWithCancel(cmd.Context(), cfg, shell.New(), prompt.Survey{})
	defer cancel()
	ctx.Progress = os.Stderr
	ctx.Notify = func(title, message string) error {
		return beeep.Notify(title, message, "")
	}

	start := time.Now()
	if err := pipeline.RunGuarded(ctx, cancel, func(ctx stdctx.Context, task func() error) error {
		return ctrlc.Default.Run(ctx, task)
	}); err != nil {
		if errors.As(err, &ctrlc.ErrorCtrlC{}) {
			log.Warn("Exiting...")
		}
		return err
	}

	log.WithField("took", time.Since(start).Round(time.Second)).Info("🎉 Done!")

	return nil
}
