/*
Copyright © 2022-2023 Matthew McKenna

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
	"runtime"
	"time"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/matthewmckenna/ios-extract/internal/commands/extract"
	"github.com/matthewmckenna/ios-extract/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var dryRun bool

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Resolve and report, but do not copy files")
	extractCmd.Flags().StringP("output-directory", "o", "", "Base directory for extracted output")
	extractCmd.Flags().String("databases", "", "Database catalogue manifest (JSON)")
	extractCmd.MarkFlagDirname("output-directory")
	extractCmd.MarkFlagFilename("databases", "json")
	viper.BindPFlag("output-directory", extractCmd.Flags().Lookup("output-directory"))
	viper.BindPFlag("databases", extractCmd.Flags().Lookup("databases"))
}

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:           "extract",
	Short:         "Copy the catalogued databases out of a backup",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {

		if Verbose {
			log.SetLevel(log.DebugLevel)
		}
		color.NoColor = !viper.GetBool("color")

		cfg, err := config.LoadConfig(runtime.GOOS)
		if err != nil {
			return err
		}

		if cfg.UUID == "" && !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("backup selection needs a terminal (set uuid in the config to skip it)")
		}

		report, err := extract.Run(cfg, &extract.Options{
			DryRun: dryRun,
			In:     os.Stdin,
			Out:    os.Stdout,
			Now:    time.Now,
		})
		if err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"copied":  len(report.Copied),
			"skipped": len(report.Skipped),
		}).Infof("done: %s", report.RunDirectory)

		return nil
	},
}
