package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// emit writes result as YAML or, for the text format, through the text callback.
func (a *app) emit(cmd *cobra.Command, result any, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	switch format := a.v.GetString("output"); format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		text(w)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (use text or yaml)", format)
	}
}
