// https://duckduckgo.com/api
package instantanswer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies which type of answer a response carries. It is computed
// once at decode time from which raw fields are populated.
type Kind string

const (
	KindRedirect       Kind = "redirect"
	KindCalc           Kind = "calc"
	KindAnswer         Kind = "answer"
	KindDisambiguation Kind = "disambiguation"
	KindCategory       Kind = "category"
	KindName           Kind = "name"
	KindExclusive      Kind = "exclusive"
	KindDefinition     Kind = "definition"
	KindNothing        Kind = "nothing"
)

// kindsByTypeLetter maps the API's one-letter Type field.
var kindsByTypeLetter = map[string]Kind{
	"A": KindAnswer,
	"D": KindDisambiguation,
	"C": KindCategory,
	"N": KindName,
	"E": KindExclusive,
}

type Response struct {
	Kind          Kind       `json:"kind"`
	Heading       string     `json:"heading,omitempty"`
	Entity        string     `json:"entity,omitempty"`
	Answer        Answer     `json:"answer"`
	Abstract      Abstract   `json:"abstract"`
	Definition    Definition `json:"definition"`
	Image         Image      `json:"image"`
	Redirect      string     `json:"redirect,omitempty"`
	Results       []Topic    `json:"results"`
	RelatedTopics []Topic    `json:"related_topics"`
}

type Answer struct {
	Text string `json:"text"`
	Type string `json:"type,omitempty"`
}

type Abstract struct {
	HTML   string `json:"html,omitempty"`
	Text   string `json:"text"`
	URL    string `json:"url,omitempty"`
	Source string `json:"source,omitempty"`
}

type Definition struct {
	Text   string `json:"text"`
	URL    string `json:"url,omitempty"`
	Source string `json:"source,omitempty"`
}

type Image struct {
	URL    string `json:"url,omitempty"`
	Height int    `json:"height,omitempty"`
	Width  int    `json:"width,omitempty"`
}

type Topic struct {
	Text   string `json:"text"`
	URL    string `json:"url"`
	Result string `json:"result,omitempty"`
	Icon   Icon   `json:"icon"`
}

type Icon struct {
	URL    string `json:"url,omitempty"`
	Height int    `json:"height,omitempty"`
	Width  int    `json:"width,omitempty"`
}

// rawResponse mirrors the API's flat key layout. Missing keys decode to
// zero values, never an error.
type rawResponse struct {
	Abstract         string    `json:"Abstract"`
	AbstractText     string    `json:"AbstractText"`
	AbstractURL      string    `json:"AbstractURL"`
	AbstractSource   string    `json:"AbstractSource"`
	Answer           string    `json:"Answer"`
	AnswerType       string    `json:"AnswerType"`
	Definition       string    `json:"Definition"`
	DefinitionURL    string    `json:"DefinitionURL"`
	DefinitionSource string    `json:"DefinitionSource"`
	Entity           string    `json:"Entity"`
	Heading          string    `json:"Heading"`
	Image            string    `json:"Image"`
	ImageHeight      size      `json:"ImageHeight"`
	ImageWidth       size      `json:"ImageWidth"`
	Redirect         string    `json:"Redirect"`
	RelatedTopics    topicList `json:"RelatedTopics"`
	Results          topicList `json:"Results"`
	Type             string    `json:"Type"`
}

func (r *Response) UnmarshalJSON(data []byte) error {
	var raw rawResponse
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}

	*r = Response{
		Heading: raw.Heading,
		Entity:  raw.Entity,
		Answer: Answer{
			Text: raw.Answer,
			Type: raw.AnswerType,
		},
		Abstract: Abstract{
			HTML:   raw.Abstract,
			Text:   raw.AbstractText,
			URL:    raw.AbstractURL,
			Source: raw.AbstractSource,
		},
		Definition: Definition{
			Text:   raw.Definition,
			URL:    raw.DefinitionURL,
			Source: raw.DefinitionSource,
		},
		Image: Image{
			URL:    raw.Image,
			Height: int(raw.ImageHeight),
			Width:  int(raw.ImageWidth),
		},
		Redirect:      raw.Redirect,
		Results:       []Topic(raw.Results),
		RelatedTopics: []Topic(raw.RelatedTopics),
	}
	r.Kind = resolveKind(raw)
	return nil
}

// resolveKind picks the single kind for a response. The order of the
// checks is fixed: callers rely on it when a response satisfies more than
// one category.
func resolveKind(raw rawResponse) Kind {
	if raw.Redirect != "" {
		return KindRedirect
	}
	if raw.AnswerType != "" && raw.Answer != "" {
		if raw.AnswerType == "calc" {
			return KindCalc
		}
		return KindAnswer
	}
	if raw.Definition != "" {
		return KindDefinition
	}
	if kind, ok := kindsByTypeLetter[raw.Type]; ok {
		return kind
	}
	if raw.AbstractText != "" || raw.AbstractURL != "" {
		return KindAnswer
	}
	return KindNothing
}

// DefaultZCIPriority is the order ZCI checks fields for a usable text.
var DefaultZCIPriority = []string{"answer", "abstract", "definition", "results.0"}

// ZCI returns the first non-empty text among the answer, the abstract,
// the definition and the first result, or "" when all of them are empty.
func (r Response) ZCI() string {
	for _, name := range DefaultZCIPriority {
		text, _, err := r.Field(name)
		if err != nil {
			continue
		}
		if text != "" {
			return text
		}
	}
	return ""
}

// Field returns the text and URL behind a priority entry such as
// "answer" or "results.0". List fields accept an index suffix and return
// empty strings when the index is out of range.
func (r Response) Field(name string) (string, string, error) {
	parts := strings.SplitN(name, ".", 2)
	index := -1
	if len(parts) > 1 {
		i, err := strconv.Atoi(parts[1])
		if err != nil || i < 0 {
			return "", "", fmt.Errorf("invalid index in field %q", name)
		}
		index = i
	}

	var topics []Topic
	switch parts[0] {
	case "answer":
		if index >= 0 {
			return "", "", fmt.Errorf("field %q is not indexable", parts[0])
		}
		return r.Answer.Text, "", nil
	case "abstract":
		if index >= 0 {
			return "", "", fmt.Errorf("field %q is not indexable", parts[0])
		}
		return r.Abstract.Text, r.Abstract.URL, nil
	case "definition":
		if index >= 0 {
			return "", "", fmt.Errorf("field %q is not indexable", parts[0])
		}
		return r.Definition.Text, r.Definition.URL, nil
	case "results":
		topics = r.Results
	case "related":
		topics = r.RelatedTopics
	default:
		return "", "", fmt.Errorf("unknown field %q", name)
	}

	if index < 0 {
		index = 0
	}
	if index >= len(topics) {
		return "", "", nil
	}
	return topics[index].Text, topics[index].URL, nil
}

// ValidField reports whether name can be used as a ZCI priority entry.
func ValidField(name string) bool {
	_, _, err := Response{}.Field(name)
	return err == nil
}

type rawIcon struct {
	URL    string `json:"URL"`
	Height size   `json:"Height"`
	Width  size   `json:"Width"`
}

type rawTopic struct {
	Text     string     `json:"Text"`
	FirstURL string     `json:"FirstURL"`
	Result   string     `json:"Result"`
	Icon     rawIcon    `json:"Icon"`
	Name     string     `json:"Name"`
	Topics   []rawTopic `json:"Topics"`
}

func (t rawTopic) toTopic() Topic {
	return Topic{
		Text:   t.Text,
		URL:    t.FirstURL,
		Result: t.Result,
		Icon: Icon{
			URL:    t.Icon.URL,
			Height: int(t.Icon.Height),
			Width:  int(t.Icon.Width),
		},
	}
}

// topicList flattens grouped related topics one level and drops entries
// without a text.
type topicList []Topic

func (l *topicList) UnmarshalJSON(data []byte) error {
	var entries []rawTopic
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}

	topics := make([]Topic, 0, len(entries))
	for _, entry := range entries {
		if len(entry.Topics) > 0 {
			// a grouped entry keeps its topics one level down
			for _, grouped := range entry.Topics {
				if grouped.Text == "" {
					continue
				}
				topics = append(topics, grouped.toTopic())
			}
			continue
		}
		if entry.Text == "" {
			continue
		}
		topics = append(topics, entry.toTopic())
	}
	*l = topics
	return nil
}

// size accepts the API's habit of sending either a number or an empty
// string for image dimensions.
type size int

func (s *size) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)
	if str == "" || str == "null" {
		*s = 0
		return nil
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return fmt.Errorf("strconv.Atoi(%s) > %w", str, err)
	}
	*s = size(n)
	return nil
}
