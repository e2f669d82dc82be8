package search

import (
	"fmt"
	"sort"
	"strings"

	"crypto-buddy/models"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/rs/zerolog/log"
)

// Index is an in-memory full-text index over asset names, symbols and
// descriptions.
type Index struct {
	index  bleve.Index
	assets map[string]models.Asset
	order  map[string]int
}

// indexedAsset is the document shape stored in bleve.
type indexedAsset struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}

func NewIndex(assets []models.Asset) (*Index, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	e := &Index{
		index:  index,
		assets: make(map[string]models.Asset, len(assets)),
		order:  make(map[string]int, len(assets)),
	}

	batch := index.NewBatch()
	for i, a := range assets {
		id := strings.ToLower(a.Name)
		e.assets[id] = a
		e.order[id] = i
		doc := indexedAsset{Name: a.Name, Symbol: a.Symbol, Description: a.Description}
		if err := batch.Index(id, doc); err != nil {
			index.Close()
			return nil, fmt.Errorf("failed to add %s to batch: %w", a.Name, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		index.Close()
		return nil, fmt.Errorf("failed to execute batch: %w", err)
	}
	log.Debug().Int("assets", len(assets)).Msg("asset index built")

	return e, nil
}

func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()

	assetMapping := bleve.NewDocumentMapping()

	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Store = false
	textFieldMapping.Index = true
	assetMapping.AddFieldMappingsAt("name", textFieldMapping)
	assetMapping.AddFieldMappingsAt("symbol", textFieldMapping)
	assetMapping.AddFieldMappingsAt("description", textFieldMapping)

	indexMapping.DefaultMapping = assetMapping

	return indexMapping
}

// Search ranks assets against free text. Symbol hits weigh most, then name,
// then description. Equal scores keep catalog order.
func (e *Index) Search(query string) ([]models.Asset, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	lower := strings.ToLower(query)

	symbolQuery := bleve.NewTermQuery(lower)
	symbolQuery.SetField("symbol")
	symbolQuery.SetBoost(10.0)

	namePrefix := bleve.NewPrefixQuery(lower)
	namePrefix.SetField("name")
	namePrefix.SetBoost(5.0)

	nameMatch := bleve.NewMatchQuery(query)
	nameMatch.SetField("name")
	nameMatch.SetFuzziness(1)
	nameMatch.SetBoost(3.0)

	descMatch := bleve.NewMatchQuery(query)
	descMatch.SetField("description")

	searchRequest := bleve.NewSearchRequest(bleve.NewDisjunctionQuery(symbolQuery, namePrefix, nameMatch, descMatch))
	searchRequest.Size = len(e.assets)

	searchResults, err := e.index.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	type scoredAsset struct {
		id    string
		score float64
	}
	scored := make([]scoredAsset, 0, len(searchResults.Hits))
	for _, hit := range searchResults.Hits {
		if _, ok := e.assets[hit.ID]; !ok {
			continue
		}
		scored = append(scored, scoredAsset{id: hit.ID, score: hit.Score})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return e.order[scored[i].id] < e.order[scored[j].id]
	})

	results := make([]models.Asset, 0, len(scored))
	for _, s := range scored {
		results = append(results, e.assets[s.id])
	}
	return results, nil
}

func (e *Index) Close() error {
	return e.index.Close()
}
