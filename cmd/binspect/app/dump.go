package app

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tarantool/go-serializer/binarycodec"
)

type dumpFlags struct {
	base64 bool
	raw    bool
}

func newDumpCommand(fs afero.Fs) *cobra.Command {
	var flags dumpFlags

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "dump <file>",
		Short: "Print version, header and fields of a payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := afero.ReadFile(fs, args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}

			if flags.base64 {
				data, err = base64.StdEncoding.DecodeString(string(bytes.TrimSpace(data)))
				if err != nil {
					return fmt.Errorf("failed to decode base64: %w", err)
				}
			}

			return dump(cmd.OutOrStdout(), data, flags.raw)
		},
	}

	cmd.Flags().BoolVar(&flags.base64, "base64", false, "the file holds the base64 text form of the payload")
	cmd.Flags().BoolVar(&flags.raw, "raw", false, "print field values as hex instead of decoding them")

	return cmd
}

func dump(w io.Writer, data []byte, raw bool) error {
	layout, err := binarycodec.ReadLayout(data)
	if err != nil {
		return err //nolint:wrapcheck
	}

	header, err := layout.Header()
	if err != nil {
		return err //nolint:wrapcheck
	}

	fmt.Fprintf(w, "version: %d\n", layout.Version)
	fmt.Fprintf(w, "value encoding: %s\n", header.ValueEncoding)
	fmt.Fprintf(w, "fingerprint: %s\n", hex.EncodeToString(header.Fingerprint))

	for _, field := range layout.Fields[1:] {
		if raw {
			fmt.Fprintf(w, "field %d (%d bytes): %s\n", field.Tag, len(field.Value), hex.EncodeToString(field.Value))
			continue
		}

		value, err := binarycodec.DecodeValue(header.ValueEncoding, field.Value)
		if err != nil {
			return fmt.Errorf("field %d: %w", field.Tag, err)
		}

		fmt.Fprintf(w, "field %d (%d bytes): %s\n", field.Tag, len(field.Value), formatValue(value))
	}

	return nil
}

func formatValue(value any) string {
	if text, ok := value.(string); ok {
		return strconv.Quote(text)
	}

	return fmt.Sprintf("%v", value)
}
