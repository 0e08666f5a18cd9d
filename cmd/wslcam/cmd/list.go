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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/apex/log"
	"github.com/blacktop/wslcam/internal/colors"
	"github.com/blacktop/wslcam/internal/config"
	"github.com/blacktop/wslcam/internal/shell"
	"github.com/blacktop/wslcam/pkg/usbipd"
	"github.com/blacktop/wslcam/pkg/usbipd/usbids"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the USB ports usbipd can share with WSL",
	Example: heredoc.Doc(`
		# Show every port and which one looks like the camera
		$ wslcam list`),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		r := shell.New()
		r.Stdout = nil // only print the table

		ports, err := usbipd.NewClient(r).List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list USB ports: %w", err)
		}
		if ports.Len() == 0 {
			log.Warn("No USB ports found")
			return nil
		}

		camera, _ := usbipd.FindCamera(ports, cfg.KnownNames)

		var rows [][]string
		for _, port := range ports.Ports() {
			mark := ""
			if port.BusID == camera {
				mark = colors.BoldGreen().Sprint("camera")
			}
			rows = append(rows, []string{
				port.BusID,
				port.VIDPID,
				port.Device,
				usbids.Describe(port),
				colors.Attached(port.State, port.Attached()),
				mark,
			})
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderRow(false).
			Headers("BUSID", "VID:PID", "DEVICE", "USB ID", "STATE", "").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return lipgloss.NewStyle().Bold(true).Padding(0, 1)
				}
				return lipgloss.NewStyle().Padding(0, 1)
			})
		fmt.Println(t)

		return nil
	},
}
