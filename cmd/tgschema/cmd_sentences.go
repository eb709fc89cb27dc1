package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tgschema/sentence"
)

func newSentencesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sentences <file-or-html>",
		Short: "Parse a description fragment and dump its sentences",
		Long: "Parses an HTML description fragment into the sentence structure the " +
			"extraction grammar sees. The argument is a file path, or literal HTML " +
			"when no such file exists.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fragment := args[0]
			if data, err := os.ReadFile(fragment); err == nil {
				fragment = string(data)
			}

			sentences := sentence.ParseDescription(fragment)
			data, err := json.MarshalIndent(sentences, "", "  ")
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			fmt.Println(string(data))
			return nil
		},
	}
	return cmd
}
