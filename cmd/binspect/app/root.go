// Package app implements the binspect commands.
package app

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the binspect command tree reading files from fs.
func NewRootCommand(fs afero.Fs) *cobra.Command {
	root := &cobra.Command{ //nolint:exhaustruct
		Use:           "binspect",
		Short:         "Inspect binary serializer payloads",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newDumpCommand(fs))

	return root
}
