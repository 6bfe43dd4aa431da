// Package payloadschema validates external article payloads against
// the v1 JSON contract before they enter the pipeline.
package payloadschema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/misodaily/newsdesk/internal/pipeline"
)

//go:embed article.schema.json
var articleSchemaJSON string

// ArticlePayload is the decoded external article contract.
type ArticlePayload struct {
	Title       string `json:"title"`
	Snippet     string `json:"snippet,omitempty"`
	URL         string `json:"url,omitempty"`
	Source      string `json:"source"`
	Language    string `json:"language,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

var (
	compileOnce       sync.Once
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
)

// ValidateArticlePayload checks raw JSON against the v1 schema plus
// the semantic rules the schema cannot express, and returns the
// decoded payload.
func ValidateArticlePayload(payload json.RawMessage) (*ArticlePayload, error) {
	value, err := decodeStrictJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("decode payload JSON: %w", err)
	}

	schema, err := loadSchema()
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}

	if err := schema.Validate(value); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	normalized, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("normalize payload JSON: %w", err)
	}

	var item ArticlePayload
	if err := json.Unmarshal(normalized, &item); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}

	if err := validateSemantics(&item); err != nil {
		return nil, err
	}

	return &item, nil
}

// ToArticle converts the payload into a pipeline article. A missing or
// unparseable publish time becomes the zero time; the pipeline treats
// that as maximal time distance rather than failing the whole batch.
func (p *ArticlePayload) ToArticle() pipeline.Article {
	var published time.Time
	if raw := strings.TrimSpace(p.PublishedAt); raw != "" {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			published = parsed.UTC()
		}
	}
	return pipeline.Article{
		Title:       strings.TrimSpace(p.Title),
		Snippet:     strings.TrimSpace(p.Snippet),
		URL:         strings.TrimSpace(p.URL),
		Source:      strings.TrimSpace(p.Source),
		Language:    strings.TrimSpace(p.Language),
		PublishedAt: published,
	}
}

func loadSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource("article.schema.json", strings.NewReader(articleSchemaJSON)); err != nil {
			compiledSchemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}

		schema, err := compiler.Compile("article.schema.json")
		if err != nil {
			compiledSchemaErr = fmt.Errorf("compile schema: %w", err)
			return
		}
		compiledSchema = schema
	})
	return compiledSchema, compiledSchemaErr
}

func decodeStrictJSON(payload json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	if err := ensureSingleDocument(dec); err != nil {
		return nil, err
	}
	return value, nil
}

func ensureSingleDocument(dec *json.Decoder) error {
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("payload contains trailing data")
	}
	return nil
}

func validateSemantics(item *ArticlePayload) error {
	if strings.TrimSpace(item.Title) == "" {
		return fmt.Errorf("title must not be blank")
	}
	if strings.TrimSpace(item.Source) == "" {
		return fmt.Errorf("source must not be blank")
	}
	if raw := strings.TrimSpace(item.URL); raw != "" {
		parsed, err := url.Parse(raw)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("url %q is not an absolute URL", raw)
		}
	}
	return nil
}
