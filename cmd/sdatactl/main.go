// Command sdatactl formats, validates, and snapshots sdata documents.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mabhi256/sdata/emit"
	"github.com/mabhi256/sdata/sdata"
	"github.com/mabhi256/sdata/snapshot"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sdatactl",
		Short:         "Format, validate, and snapshot sdata documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newFormatCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newSnapshotCmd())
	root.AddCommand(newWatchCmd())
	return root
}

func newFormatCmd() *cobra.Command {
	var inline bool
	var styleFilePath string

	cmd := &cobra.Command{
		Use:   "format <file>",
		Short: "Rewrite a document in canonical style",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := sdata.ReadSourceFile(args[0])
			if err != nil {
				return err
			}
			root, err := sdata.Parse(data)
			if err != nil {
				return err
			}

			cfg := emit.Default()
			switch {
			case styleFilePath != "":
				cfg, err = loadStyleFile(styleFilePath)
				if err != nil {
					return err
				}
			case inline:
				cfg = emit.Config{Style: emit.INLINE}
			}
			out, err := sdata.Emit(root, cfg)
			if err != nil {
				return err
			}
			return sdata.WriteSourceFile(args[0], out)
		},
	}

	cmd.Flags().BoolVar(&inline, "inline", false, "emit on a single line")
	cmd.Flags().StringVar(&styleFilePath, "style-file", "", "YAML file describing the output style")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Parse a document and report any diagnostic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := sdata.ReadSourceFile(args[0])
			if err != nil {
				return err
			}
			_, err = sdata.Parse(data)
			return err
		},
	}
}

func newSnapshotCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "snapshot <file>",
		Short: "Parse a document and write its CBOR snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := sdata.ReadSourceFile(args[0])
			if err != nil {
				return err
			}
			root, err := sdata.Parse(src)
			if err != nil {
				return err
			}
			data, err := snapshot.Encode(root)
			if err != nil {
				return err
			}
			if out == "" {
				out = args[0] + ".cbor"
			}
			return os.WriteFile(out, data, 0o644)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output path (default: <file>.cbor)")
	return cmd
}
