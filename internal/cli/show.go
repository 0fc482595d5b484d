package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/zeroclick/ddg/internal/instantanswer"
)

type ShowOptions struct {
	Query instantanswer.QueryOptions
	// AsJSON prints the typed response as indented JSON instead of text.
	AsJSON  bool
	NoColor bool
}

// Show queries the API and writes every populated section of the
// response to writer.
func Show(ctx context.Context, querier instantanswer.Querier, query string, opts ShowOptions, writer io.Writer) error {
	response, err := querier.Query(ctx, query, opts.Query)
	if err != nil {
		return fmt.Errorf("querier.Query > %w", err)
	}

	if opts.AsJSON {
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return fmt.Errorf("encoder.Encode > %w", err)
		}
		return nil
	}

	bold := color.New(color.Bold)
	if opts.NoColor {
		bold.DisableColor()
	}

	if response.Heading != "" {
		_, _ = bold.Fprintln(writer, response.Heading)
	}
	_, _ = fmt.Fprintf(writer, "kind: %s\n", response.Kind)

	if response.Answer.Text != "" {
		_, _ = bold.Fprint(writer, "answer: ")
		_, _ = fmt.Fprintln(writer, response.Answer.Text)
		if response.Answer.Type != "" {
			_, _ = fmt.Fprintf(writer, "  type: %s\n", response.Answer.Type)
		}
	}
	writeSection(writer, bold, "abstract", response.Abstract.Text, response.Abstract.URL, response.Abstract.Source)
	writeSection(writer, bold, "definition", response.Definition.Text, response.Definition.URL, response.Definition.Source)
	if response.Redirect != "" {
		_, _ = fmt.Fprintf(writer, "redirect: %s\n", response.Redirect)
	}
	writeTopics(writer, bold, "results", response.Results)
	writeTopics(writer, bold, "related topics", response.RelatedTopics)
	return nil
}

func writeSection(writer io.Writer, bold *color.Color, name, text, url, source string) {
	if text == "" {
		return
	}
	_, _ = bold.Fprintf(writer, "%s: ", name)
	_, _ = fmt.Fprintln(writer, text)
	if url != "" {
		_, _ = fmt.Fprintf(writer, "  url: %s\n", url)
	}
	if source != "" {
		_, _ = fmt.Fprintf(writer, "  source: %s\n", source)
	}
}

func writeTopics(writer io.Writer, bold *color.Color, name string, topics []instantanswer.Topic) {
	if len(topics) == 0 {
		return
	}
	_, _ = bold.Fprintf(writer, "%s:\n", name)
	for i, topic := range topics {
		_, _ = fmt.Fprintf(writer, "  %d. %s", i+1, topic.Text)
		if topic.URL != "" {
			_, _ = fmt.Fprintf(writer, " (%s)", topic.URL)
		}
		_, _ = fmt.Fprintln(writer)
	}
}
