package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the package metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := a.manifest
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name: %s\n", m.Name)
			fmt.Fprintf(out, "version: %s\n", m.Version)
			fmt.Fprintf(out, "author: %s <%s>\n", m.Author, m.AuthorEmail)
			fmt.Fprintf(out, "description: %s\n", m.Description)
			fmt.Fprintf(out, "zip_safe: %t\n", m.ZipSafe)
			for _, ext := range m.ExtModules {
				fmt.Fprintf(out, "extension: %s (%s)\n", ext.Name, ext.SourceDir)
			}
			return nil
		},
	}
}
