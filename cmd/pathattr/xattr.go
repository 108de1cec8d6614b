package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

// attributeValue is the printable form of one extended attribute.
//
// Value is only set when the data is valid UTF-8; Hex is always set.
type attributeValue struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	Hex   string `json:"hex" yaml:"hex"`
	Size  int    `json:"size" yaml:"size"`
}

func newAttributeValue(name string, data []byte) attributeValue {
	v := attributeValue{
		Name: name,
		Hex:  hex.EncodeToString(data),
		Size: len(data),
	}
	if utf8.Valid(data) {
		v.Value = string(data)
	}
	return v
}

func newXattrCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xattr",
		Short: "Read and write extended attributes",
	}

	cmd.AddCommand(
		newXattrGetCmd(a),
		newXattrSetCmd(a),
		newXattrRmCmd(a),
		newXattrLsCmd(a),
		newXattrExportCmd(a),
	)

	return cmd
}

func newXattrGetCmd(a *app) *cobra.Command {
	var asHex bool

	cmd := &cobra.Command{
		Use:   "get <path> <name>",
		Short: "Print the value of an extended attribute",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := a.helper.GetAttribute(args[0], args[1])
			if err != nil {
				return err
			}

			return a.printer.print(newAttributeValue(args[1], data), func(w io.Writer) error {
				if asHex {
					_, err := fmt.Fprintln(w, hex.EncodeToString(data))
					return err
				}
				_, err := w.Write(data)
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&asHex, "hex", false, "Print the value hex-encoded")

	return cmd
}

func newXattrSetCmd(a *app) *cobra.Command {
	var fromHex bool

	cmd := &cobra.Command{
		Use:   "set <path> <name> <value>",
		Short: "Create or replace an extended attribute",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			data := []byte(args[2])
			if fromHex {
				decoded, err := hex.DecodeString(args[2])
				if err != nil {
					return fmt.Errorf("invalid hex value: %w", err)
				}
				data = decoded
			}

			return a.helper.SetAttribute(args[0], args[1], data)
		},
	}

	cmd.Flags().BoolVar(&fromHex, "hex", false, "Decode the value from hex")

	return cmd
}

func newXattrRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <path> <name>",
		Aliases: []string{"remove"},
		Short:   "Remove an extended attribute",
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.helper.RemoveAttribute(args[0], args[1])
		},
	}
}

func newXattrLsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "ls <path>",
		Aliases: []string{"list"},
		Short:   "List extended attribute names",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			names, err := a.helper.ListAttributes(args[0])
			if err != nil {
				return err
			}

			return a.printer.print(names, func(w io.Writer) error {
				for _, name := range names {
					if _, err := fmt.Fprintln(w, name); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newXattrExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Print every extended attribute with its value",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			attrs, err := a.helper.ExportAttributes(args[0])
			if err != nil {
				return err
			}

			names := make([]string, 0, len(attrs))
			for name := range attrs {
				names = append(names, name)
			}
			sort.Strings(names)

			values := make([]attributeValue, 0, len(names))
			for _, name := range names {
				values = append(values, newAttributeValue(name, attrs[name]))
			}

			return a.printer.print(values, func(w io.Writer) error {
				for _, v := range values {
					shown := v.Value
					if shown == "" && v.Size > 0 {
						shown = "0x" + v.Hex
					}
					if _, err := fmt.Fprintf(w, "%s=%s\n", v.Name, shown); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
