package instantanswer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Response
	}{
		{
			name: "empty object decodes to nothing",
			body: `{}`,
			want: Response{
				Kind: KindNothing,
			},
		},
		{
			name: "missing list fields stay nil",
			body: `{"Heading": "DuckDuckGo"}`,
			want: Response{
				Kind:    KindNothing,
				Heading: "DuckDuckGo",
			},
		},
		{
			name: "abstract fields are grouped",
			body: `{"Heading": "DuckDuckGo", "AbstractURL": "http://x", "AbstractText": "y", "AbstractSource": "Wikipedia"}`,
			want: Response{
				Kind:    KindAnswer,
				Heading: "DuckDuckGo",
				Abstract: Abstract{
					Text:   "y",
					URL:    "http://x",
					Source: "Wikipedia",
				},
			},
		},
		{
			name: "answer with type",
			body: `{"Answer": "1 + 1 = 2", "AnswerType": "calc"}`,
			want: Response{
				Kind: KindCalc,
				Answer: Answer{
					Text: "1 + 1 = 2",
					Type: "calc",
				},
			},
		},
		{
			name: "definition fields are grouped",
			body: `{"Definition": "a word", "DefinitionURL": "http://d", "DefinitionSource": "Wordnik"}`,
			want: Response{
				Kind: KindDefinition,
				Definition: Definition{
					Text:   "a word",
					URL:    "http://d",
					Source: "Wordnik",
				},
			},
		},
		{
			name: "related topics keep their order",
			body: `{"RelatedTopics": [{"Text": "a", "FirstURL": "u1"}, {"Text": "b", "FirstURL": "u2"}]}`,
			want: Response{
				Kind: KindNothing,
				RelatedTopics: []Topic{
					{Text: "a", URL: "u1"},
					{Text: "b", URL: "u2"},
				},
			},
		},
		{
			name: "grouped related topics flatten one level",
			body: `{"RelatedTopics": [
				{"Text": "a", "FirstURL": "u1"},
				{"Name": "Places", "Topics": [
					{"Text": "b", "FirstURL": "u2"},
					{"Text": "c", "FirstURL": "u3"}
				]}
			]}`,
			want: Response{
				Kind: KindNothing,
				RelatedTopics: []Topic{
					{Text: "a", URL: "u1"},
					{Text: "b", URL: "u2"},
					{Text: "c", URL: "u3"},
				},
			},
		},
		{
			name: "topics without a text are skipped",
			body: `{"RelatedTopics": [{"FirstURL": "u1"}, {"Text": "b", "FirstURL": "u2"}]}`,
			want: Response{
				Kind:          KindNothing,
				RelatedTopics: []Topic{{Text: "b", URL: "u2"}},
			},
		},
		{
			name: "icon sizes accept empty strings",
			body: `{"Results": [{"Text": "Official site", "FirstURL": "http://o", "Icon": {"URL": "http://i", "Height": 16, "Width": ""}}]}`,
			want: Response{
				Kind: KindNothing,
				Results: []Topic{
					{
						Text: "Official site",
						URL:  "http://o",
						Icon: Icon{URL: "http://i", Height: 16},
					},
				},
			},
		},
		{
			name: "image sizes accept empty strings",
			body: `{"Image": "http://img", "ImageHeight": "", "ImageWidth": 200}`,
			want: Response{
				Kind:  KindNothing,
				Image: Image{URL: "http://img", Width: 200},
			},
		},
		{
			name: "redirect",
			body: `{"Redirect": "https://example.com/?q=x"}`,
			want: Response{
				Kind:     KindRedirect,
				Redirect: "https://example.com/?q=x",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Response
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveKind(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Kind
	}{
		{
			name: "redirect wins over everything",
			body: `{"Redirect": "https://x", "Answer": "42", "AnswerType": "calc", "Definition": "d", "AbstractText": "a", "Type": "D"}`,
			want: KindRedirect,
		},
		{
			name: "calc answer type",
			body: `{"Answer": "1 + 1 = 2", "AnswerType": "calc", "Definition": "d"}`,
			want: KindCalc,
		},
		{
			name: "non-calc answer type",
			body: `{"Answer": "172.217.0.0", "AnswerType": "ip"}`,
			want: KindAnswer,
		},
		{
			name: "answer type without a text does not count",
			body: `{"AnswerType": "calc", "Definition": "d"}`,
			want: KindDefinition,
		},
		{
			name: "definition wins over type letter",
			body: `{"Definition": "d", "Type": "D"}`,
			want: KindDefinition,
		},
		{
			name: "type letter A",
			body: `{"Type": "A", "AbstractText": "a"}`,
			want: KindAnswer,
		},
		{
			name: "type letter D",
			body: `{"Type": "D"}`,
			want: KindDisambiguation,
		},
		{
			name: "type letter C",
			body: `{"Type": "C"}`,
			want: KindCategory,
		},
		{
			name: "type letter N",
			body: `{"Type": "N"}`,
			want: KindName,
		},
		{
			name: "type letter E",
			body: `{"Type": "E"}`,
			want: KindExclusive,
		},
		{
			name: "abstract without a type letter is an answer",
			body: `{"Heading": "DuckDuckGo", "AbstractURL": "http://x", "AbstractText": "y"}`,
			want: KindAnswer,
		},
		{
			name: "unknown type letter with no other fields",
			body: `{"Type": "Z"}`,
			want: KindNothing,
		},
		{
			name: "empty object",
			body: `{}`,
			want: KindNothing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Response
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.want, got.Kind)
		})
	}
}

func TestResponse_ZCI(t *testing.T) {
	tests := []struct {
		name     string
		response Response
		want     string
	}{
		{
			name: "answer wins",
			response: Response{
				Answer:     Answer{Text: "42"},
				Abstract:   Abstract{Text: "an abstract"},
				Definition: Definition{Text: "a definition"},
				Results:    []Topic{{Text: "a result"}},
			},
			want: "42",
		},
		{
			name: "abstract before definition",
			response: Response{
				Abstract:   Abstract{Text: "an abstract"},
				Definition: Definition{Text: "a definition"},
			},
			want: "an abstract",
		},
		{
			name: "definition before results",
			response: Response{
				Definition: Definition{Text: "a definition"},
				Results:    []Topic{{Text: "a result"}},
			},
			want: "a definition",
		},
		{
			name: "first result as last resort",
			response: Response{
				Results: []Topic{{Text: "a result"}, {Text: "another"}},
			},
			want: "a result",
		},
		{
			name:     "all empty",
			response: Response{},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.response.ZCI())
		})
	}
}

func TestResponse_Field(t *testing.T) {
	response := Response{
		Answer:     Answer{Text: "42"},
		Abstract:   Abstract{Text: "an abstract", URL: "http://a"},
		Definition: Definition{Text: "a definition", URL: "http://d"},
		Results:    []Topic{{Text: "a result", URL: "http://r"}},
		RelatedTopics: []Topic{
			{Text: "topic one", URL: "http://t1"},
			{Text: "topic two", URL: "http://t2"},
		},
	}

	tests := []struct {
		name            string
		field           string
		wantText        string
		wantURL         string
		wantErrorString string
	}{
		{
			name:     "answer has no URL",
			field:    "answer",
			wantText: "42",
		},
		{
			name:     "abstract",
			field:    "abstract",
			wantText: "an abstract",
			wantURL:  "http://a",
		},
		{
			name:     "definition",
			field:    "definition",
			wantText: "a definition",
			wantURL:  "http://d",
		},
		{
			name:     "results defaults to the first entry",
			field:    "results",
			wantText: "a result",
			wantURL:  "http://r",
		},
		{
			name:     "related with an index",
			field:    "related.1",
			wantText: "topic two",
			wantURL:  "http://t2",
		},
		{
			name:  "index out of range is empty",
			field: "results.5",
		},
		{
			name:            "answer is not indexable",
			field:           "answer.0",
			wantErrorString: "not indexable",
		},
		{
			name:            "invalid index",
			field:           "results.x",
			wantErrorString: "invalid index",
		},
		{
			name:            "unknown field",
			field:           "heading",
			wantErrorString: "unknown field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotText, gotURL, err := response.Field(tt.field)
			if tt.wantErrorString != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrorString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, gotText)
			assert.Equal(t, tt.wantURL, gotURL)
		})
	}
}

func TestValidField(t *testing.T) {
	assert.True(t, ValidField("answer"))
	assert.True(t, ValidField("abstract"))
	assert.True(t, ValidField("definition"))
	assert.True(t, ValidField("results.0"))
	assert.True(t, ValidField("related.3"))
	assert.False(t, ValidField("answer.0"))
	assert.False(t, ValidField("heading"))
	assert.False(t, ValidField("results.-1"))
}
