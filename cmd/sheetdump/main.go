// Package main provides the CLI entry point for sheetdump.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetdump-go/pkg/sheetdump"
	"github.com/ukaji3/sheetdump-go/pkg/sheetdump/output"
)

const usageLine = "Usage: sheetdump <excel_file_path>"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the root command and maps its outcome to an exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	rootCmd := newRootCmd(stdout)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	log.SetOutput(stderr)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, sheetdump.ErrUsage) {
			fmt.Fprintln(stdout, usageLine)
			return 1
		}
		log.Errorf("sheetdump failed: %v", err)
		return 1
	}
	return 0
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	opts := sheetdump.DefaultOptions()
	var (
		verbose bool
		justify string
	)

	rootCmd := &cobra.Command{
		Use:   "sheetdump <excel_file_path>",
		Short: "Print every sheet of a spreadsheet as a text table",
		Long: `sheetdump lists the sheets of an Excel workbook (.xlsx or .xls)
and prints each sheet as an aligned text table, with empty cells
shown as blanks.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return sheetdump.ErrUsage
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Justify = output.Justify(justify)
			return sheetdump.Dump(stdout, args[0], opts)
		},
	}

	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")
	rootCmd.Flags().StringVar(&opts.Password, "password", "", "Password for encrypted workbooks")
	rootCmd.Flags().StringVar(&opts.Charset, "charset", "", "Code page for legacy .xls files (default: utf-8)")
	rootCmd.Flags().BoolVar(&opts.RawValues, "raw", false, "Print stored values instead of formatted text")
	rootCmd.Flags().StringVar(&justify, "justify", string(output.JustifyLeft), "Cell alignment: left or right")
	rootCmd.Flags().BoolVar(&opts.EastAsianWidth, "east-asian-width", false, "Count wide characters as two columns")

	return rootCmd
}
