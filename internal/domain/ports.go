package domain

import "context"

type Catalog interface {
	All() []Property
	Get(id string) (Property, error)
	IDs() []string
}

// Assistant is the hosted generative model behind search ranking and chat.
type Assistant interface {
	RankProperties(ctx context.Context, query string, summaries []PropertySummary) ([]string, error)
	Chat(ctx context.Context, system string, history []ChatMessage, message string) (string, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// PropertySummary is the token-cheap projection of a listing sent to the model.
type PropertySummary struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// Read models

type ListingQuery struct {
	Category Category // empty = all
	Q        string
}

type SearchResult struct {
	Query      string     `json:"query"`
	Source     string     `json:"source"` // ai|cache|fallback|catalog
	MatchedIDs []string   `json:"matchedIds"`
	Items      []Property `json:"items"`
}

type ViewPage struct {
	View       string     `json:"view"`
	Title      string     `json:"title"`
	ScrollTop  int        `json:"scrollTop"`
	Query      string     `json:"query"`
	Properties []Property `json:"properties"`
}

type Inquiry struct {
	Reference string `json:"reference"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Href      string `json:"href"`
}
