package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newURLCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url",
		Short: "Take apart URL strings",
	}

	cmd.AddCommand(
		newURLQueryCmd(a),
		newURLRemoteCmd(a),
		newURLStripCmd(a),
	)

	return cmd
}

func newURLQueryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "query <url> <name>",
		Short: "Print the value of the first query item with the given name",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			value, ok := a.helper.QueryParam(args[0], args[1])
			if !ok {
				return errNoResult
			}

			result := struct {
				Name  string `json:"name" yaml:"name"`
				Value string `json:"value" yaml:"value"`
			}{args[1], value}

			return a.printer.print(result, textLine(value))
		},
	}
}

func newURLRemoteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remote <url>",
		Short: "Report whether a URL uses http or https",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			remote := a.helper.IsRemote(args[0])

			result := struct {
				URL    string `json:"url" yaml:"url"`
				Remote bool   `json:"remote" yaml:"remote"`
			}{args[0], remote}

			return a.printer.print(result, textLine(strconv.FormatBool(remote)))
		},
	}
}

func newURLStripCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strip <url>",
		Short: "Print a URL without its query and fragment",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			stripped := a.helper.RemovingFragment(args[0])

			result := struct {
				URL      string `json:"url" yaml:"url"`
				Stripped string `json:"stripped" yaml:"stripped"`
			}{args[0], stripped}

			return a.printer.print(result, textLine(stripped))
		},
	}
}
