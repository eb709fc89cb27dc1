package main

import (
	"fmt"
	"io"
	"os"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"tgschema/assemble"
	"tgschema/format"
	"tgschema/scrape"
)

var log = commonlog.GetLogger("tgschema")

func newGenerateCmd() *cobra.Command {
	var outputFormat string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "generate <url-or-file>",
		Short: "Scrape a documentation page and emit its schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], outputFormat, outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, yaml)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func runGenerate(cmd *cobra.Command, ref, outputFormat, outputPath string) error {
	pageHTML, err := scrape.Fetch(cmd.Context(), ref)
	if err != nil {
		return err
	}
	page, err := scrape.Parse(pageHTML)
	if err != nil {
		return err
	}
	log.Infof("scraped %d sections from %s", len(page.Sections), ref)

	conv := md.NewConverter("", true, nil)
	doc, err := assemble.Assemble(page, conv)
	if err != nil {
		return fmt.Errorf("assemble: %w", err)
	}
	log.Infof("assembled %d objects and %d methods", len(doc.Objects), len(doc.Methods))

	return writeDocument(doc, outputFormat, outputPath)
}

// writeDocument encodes the schema to stdout or to a file. A file is
// closed with its error checked, so a failed flush cannot pass for a
// successful write.
func writeDocument(doc *assemble.Document, outputFormat, outputPath string) error {
	var out io.Writer = os.Stdout
	var outFile *os.File
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
		outFile = f
	}

	var enc format.Encoder
	switch outputFormat {
	case "json":
		enc = format.NewJSONEncoder(out)
	case "yaml":
		enc = format.NewYAMLEncoder(out)
	default:
		return fmt.Errorf("unknown format: %s", outputFormat)
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if outFile != nil {
		if err := outFile.Close(); err != nil {
			return fmt.Errorf("close output: %w", err)
		}
	}
	return nil
}
