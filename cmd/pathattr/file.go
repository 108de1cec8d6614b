package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/marmos91/pathattr/pkg/fileinfo"
)

func newStatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stat <path>",
		Short: "Print the attributes of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			attr, err := a.helper.Stat(args[0])
			if err != nil {
				return err
			}

			return a.printer.print(attr, func(w io.Writer) error {
				return writeFileAttr(w, attr)
			})
		},
	}
}

// writeFileAttr prints attr as aligned "key: value" lines.
func writeFileAttr(w io.Writer, attr *fileinfo.FileAttr) error {
	rows := [][2]string{
		{"type", attr.Type.String()},
		{"mode", fmt.Sprintf("%04o", attr.Mode)},
		{"uid", strconv.FormatUint(uint64(attr.UID), 10)},
		{"gid", strconv.FormatUint(uint64(attr.GID), 10)},
		{"size", strconv.FormatUint(attr.Size, 10)},
		{"nlink", strconv.FormatUint(attr.Nlink, 10)},
		{"inode", strconv.FormatUint(attr.Inode, 10)},
		{"device", strconv.FormatUint(attr.Device, 10)},
		{"atime", attr.Atime.Format(time.RFC3339Nano)},
		{"mtime", attr.Mtime.Format(time.RFC3339Nano)},
		{"ctime", attr.Ctime.Format(time.RFC3339Nano)},
	}
	if !attr.Btime.IsZero() {
		rows = append(rows, [2]string{"btime", attr.Btime.Format(time.RFC3339Nano)})
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%-7s %s\n", row[0]+":", row[1]); err != nil {
			return err
		}
	}
	return nil
}

func newSizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "size <path>",
		Short: "Print the size of a file in bytes",
		Long: `Print the size of a file in bytes.

Unreadable files report size 0 rather than failing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			size := a.helper.FileSize(args[0])

			result := struct {
				Path string `json:"path" yaml:"path"`
				Size uint64 `json:"size" yaml:"size"`
			}{args[0], size}

			return a.printer.print(result, textLine(strconv.FormatUint(size, 10)))
		},
	}
}

func newTypeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "type <path>",
		Short: "Print the content type identifier of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, ok := a.helper.TypeIdentifier(args[0])
			if !ok {
				return errNoResult
			}

			result := struct {
				Path string `json:"path" yaml:"path"`
				Type string `json:"type" yaml:"type"`
			}{args[0], id}

			return a.printer.print(result, textLine(id))
		},
	}
}
