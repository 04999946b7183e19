package main

import (
	"fmt"

	"pagesum"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	content, err := deps.Extractor.Extract(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Error: %s\n", pagesum.ErrorMessage(err))
		return err
	}

	summary, err := deps.Summarizer.Summarize(deps.Ctx, content.Text, content.Images)
	if err != nil {
		// A summarization failure is reported in place of the summary;
		// the extracted content is still shown.
		summary = pagesum.ErrorMessage(err)
	}

	fmt.Fprintln(deps.Stdout, "Summary:")
	fmt.Fprintln(deps.Stdout, summary)
	fmt.Fprintln(deps.Stdout)

	fmt.Fprintln(deps.Stdout, "Extracted Images:")
	if len(content.Images) == 0 {
		fmt.Fprintln(deps.Stdout, "No images found.")
	} else {
		for _, img := range content.Images {
			fmt.Fprintln(deps.Stdout, img)
		}
	}
	fmt.Fprintln(deps.Stdout)

	fmt.Fprintln(deps.Stdout, "Extracted Text:")
	fmt.Fprintln(deps.Stdout, content.Text)

	return nil
}
