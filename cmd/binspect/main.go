// Command binspect prints the tagged-field layout of binary payloads.
package main

import (
	"os"

	"github.com/spf13/afero"

	"github.com/tarantool/go-serializer/cmd/binspect/app"
)

func main() {
	if err := app.NewRootCommand(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}
