package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marmos91/pathattr/pkg/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a configuration file with default values",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: ""},
		RunE: func(cc *cobra.Command, _ []string) error {
			configPath, err := cc.Flags().GetString("config")
			if err != nil {
				return err
			}

			var path string
			if configPath != "" {
				path, err = config.InitConfigAt(configPath, force)
			} else {
				path, err = config.InitConfig(force)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cc.OutOrStdout(), "Configuration written to %s\n", path)
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration file")

	return cmd
}
