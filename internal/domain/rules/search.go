package rules

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/v2/mapping"
)

// CatalogDocument is the searchable projection of one catalog category: its
// display name plus every rule keyword that feeds it. UI collaborators use
// this to drive category-picker search; it has no bearing on classification.
type CatalogDocument struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Keywords string `json:"keywords"`
}

// CatalogSearchResult is a search hit with its relevance score.
type CatalogSearchResult struct {
	Category Category
	Score    float64
}

// CatalogSearch provides full-text search over the category catalog using an
// in-memory Bleve index.
type CatalogSearch struct {
	index bleve.Index
}

// NewCatalogSearch indexes the catalog, folding in the keywords of every rule
// so "dosa place" style queries can still land on Food & Dining.
func NewCatalogSearch(rs *Ruleset) (*CatalogSearch, error) {
	index, err := bleve.NewMemOnly(buildCatalogMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog index: %w", err)
	}

	keywordsByCategory := make(map[string][]string)
	for _, rule := range rs.Rules() {
		keywordsByCategory[rule.Category] = append(keywordsByCategory[rule.Category], rule.Keyword)
	}

	batch := index.NewBatch()
	for _, c := range Catalog() {
		doc := CatalogDocument{
			ID:       c.ID,
			Name:     c.Name,
			Icon:     c.Icon,
			Keywords: strings.Join(keywordsByCategory[c.ID], " "),
		}
		if err := batch.Index(doc.ID, doc); err != nil {
			return nil, fmt.Errorf("failed to index category %s: %w", c.ID, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("failed to execute batch index: %w", err)
	}

	return &CatalogSearch{index: index}, nil
}

func buildCatalogMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = simple.Name

	keywordFieldMapping := bleve.NewTextFieldMapping()
	keywordFieldMapping.Analyzer = keyword.Name

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("id", keywordFieldMapping)
	docMapping.AddFieldMappingsAt("name", textFieldMapping)
	docMapping.AddFieldMappingsAt("keywords", textFieldMapping)
	docMapping.AddFieldMappingsAt("icon", keywordFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = docMapping
	indexMapping.DefaultAnalyzer = simple.Name
	return indexMapping
}

// Search runs a match query with typo tolerance and returns the best-scoring
// categories.
func (cs *CatalogSearch) Search(query string, limit int) ([]CatalogSearchResult, error) {
	if limit <= 0 {
		limit = 10
	}

	matchQuery := bleve.NewMatchQuery(query)
	matchQuery.SetFuzziness(1)

	searchRequest := bleve.NewSearchRequest(matchQuery)
	searchRequest.Size = limit

	return cs.run(searchRequest)
}

// SearchWithPrefix runs an autocomplete-style prefix query.
func (cs *CatalogSearch) SearchWithPrefix(prefix string, limit int) ([]CatalogSearchResult, error) {
	if limit <= 0 {
		limit = 10
	}

	searchRequest := bleve.NewSearchRequest(bleve.NewPrefixQuery(strings.ToLower(prefix)))
	searchRequest.Size = limit

	return cs.run(searchRequest)
}

func (cs *CatalogSearch) run(req *bleve.SearchRequest) ([]CatalogSearchResult, error) {
	searchResults, err := cs.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("catalog search failed: %w", err)
	}

	results := make([]CatalogSearchResult, 0, len(searchResults.Hits))
	for _, hit := range searchResults.Hits {
		category, ok := CategoryByID(hit.ID)
		if !ok {
			continue
		}
		results = append(results, CatalogSearchResult{Category: category, Score: hit.Score})
	}
	return results, nil
}

// Close releases the index.
func (cs *CatalogSearch) Close() error {
	return cs.index.Close()
}
