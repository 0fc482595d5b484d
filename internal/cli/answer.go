// Package cli holds the command logic behind the ddg commands.
package cli

import (
	"context"
	"fmt"

	"github.com/zeroclick/ddg/internal/instantanswer"
)

const noResultsMessage = "Sorry, no results."

type AnswerOptions struct {
	Query instantanswer.QueryOptions
	// Priority is the order of fields checked for an answer. Defaults to
	// instantanswer.DefaultZCIPriority.
	Priority []string
	// ShowURLs appends the source URL to the answer when one exists.
	ShowURLs bool
	// WebFallback falls back to the redirect URL when no field has a text.
	WebFallback bool
}

// Answer returns the single best text answer for a query.
func Answer(ctx context.Context, querier instantanswer.Querier, query string, opts AnswerOptions) (string, error) {
	// the backslash prefix asks the API for the top result directly
	response, err := querier.Query(ctx, `\`+query, opts.Query)
	if err != nil {
		return "", fmt.Errorf("querier.Query > %w", err)
	}

	priority := opts.Priority
	if len(priority) == 0 {
		priority = instantanswer.DefaultZCIPriority
	}
	for _, field := range priority {
		text, url, err := response.Field(field)
		if err != nil {
			return "", fmt.Errorf("response.Field(%s) > %w", field, err)
		}
		if text == "" {
			continue
		}
		if opts.ShowURLs && url != "" {
			return fmt.Sprintf("%s (%s)", text, url), nil
		}
		return text, nil
	}

	if opts.WebFallback && response.Redirect != "" {
		return response.Redirect, nil
	}
	return noResultsMessage, nil
}
