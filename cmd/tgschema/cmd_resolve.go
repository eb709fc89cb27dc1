package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tgschema/schema"
)

func newResolveCmd() *cobra.Command {
	var typeText string
	var href string
	var descriptionFile string
	var returns bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a type text and description into a field descriptor",
		RunE: func(cmd *cobra.Command, args []string) error {
			var descriptionHTML string
			if descriptionFile != "" {
				data, err := os.ReadFile(descriptionFile)
				if err != nil {
					return fmt.Errorf("read description: %w", err)
				}
				descriptionHTML = string(data)
			}

			var field *schema.Field
			if returns {
				field = schema.ResolveReturnType(descriptionHTML)
			} else {
				if typeText == "" {
					return fmt.Errorf("--type is required unless --returns is set")
				}
				info := schema.TypeInfo{Text: typeText}
				if href != "" {
					info.Links = []schema.TypeLink{{Text: typeText, Href: href}}
				}
				field = schema.ResolveType(info, descriptionHTML)
			}

			data, err := json.MarshalIndent(field, "", "  ")
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeText, "type", "t", "", "literal type text, e.g. \"Array of Integer\"")
	cmd.Flags().StringVar(&href, "href", "", "anchor the type text links to")
	cmd.Flags().StringVarP(&descriptionFile, "description-file", "d", "", "file holding the description HTML")
	cmd.Flags().BoolVar(&returns, "returns", false, "resolve the description's returns clause instead")

	return cmd
}
