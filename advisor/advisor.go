// Package advisor computes recommendations over a catalog. Every method is a
// pure read of the catalog.
package advisor

import (
	"fmt"
	"sort"
	"strings"

	"crypto-buddy/catalog"
	"crypto-buddy/models"
	"crypto-buddy/search"
)

// Score weights for the long-term composite.
const (
	RisingBonus        = 3
	HighMarketCapBonus = 2
	MaxLongTermScore   = RisingBonus + HighMarketCapBonus + models.MaxSustainabilityScore
)

// TieBreak selects the winner among assets sharing the best score.
type TieBreak string

const (
	// TieBreakCatalog keeps the first asset in catalog order.
	TieBreakCatalog TieBreak = "catalog"
	// TieBreakAlphabetical keeps the asset whose name sorts first.
	TieBreakAlphabetical TieBreak = "alphabetical"
)

func ParseTieBreak(s string) (TieBreak, error) {
	switch TieBreak(strings.ToLower(s)) {
	case "", TieBreakCatalog:
		return TieBreakCatalog, nil
	case TieBreakAlphabetical:
		return TieBreakAlphabetical, nil
	}
	return "", fmt.Errorf("unknown tie break %q (want %s or %s)", s, TieBreakCatalog, TieBreakAlphabetical)
}

// ScorePart is one contribution to a long-term score.
type ScorePart struct {
	Label  string
	Points int
}

type Score struct {
	Asset models.Asset
	Total int
	Parts []ScorePart
}

// Comparison is an ordered pair of assets named in a query.
type Comparison struct {
	First  models.Asset
	Second models.Asset
}

type Advisor struct {
	catalog  *catalog.Catalog
	matcher  search.Matcher
	tieBreak TieBreak
}

type Option func(*Advisor)

func WithMatcher(m search.Matcher) Option {
	return func(a *Advisor) {
		if m != nil {
			a.matcher = m
		}
	}
}

func WithTieBreak(tb TieBreak) Option {
	return func(a *Advisor) {
		a.tieBreak = tb
	}
}

func New(c *catalog.Catalog, opts ...Option) *Advisor {
	a := &Advisor{
		catalog:  c,
		matcher:  search.SubstringMatcher{},
		tieBreak: TieBreakCatalog,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Catalog exposes the catalog the advisor reads.
func (a *Advisor) Catalog() *catalog.Catalog {
	return a.catalog
}

// MostSustainable returns the asset with the highest sustainability score.
func (a *Advisor) MostSustainable() models.Asset {
	return a.best(func(x models.Asset) int { return x.SustainabilityScore })
}

// Rising returns the assets whose price trend is rising, in catalog order.
func (a *Advisor) Rising() []models.Asset {
	return a.filter(func(x models.Asset) bool { return x.PriceTrend == models.TrendRising })
}

// LowEnergy returns the assets with low energy use, in catalog order.
func (a *Advisor) LowEnergy() []models.Asset {
	return a.filter(func(x models.Asset) bool { return x.EnergyUse == models.LevelLow })
}

// LongTermScore is 3 for a rising trend, plus 2 for a high market cap, plus
// the sustainability score.
func LongTermScore(x models.Asset) int {
	return ScoreBreakdown(x).Total
}

// ScoreBreakdown itemises LongTermScore.
func ScoreBreakdown(x models.Asset) Score {
	s := Score{Asset: x}
	if x.PriceTrend == models.TrendRising {
		s.Parts = append(s.Parts, ScorePart{Label: "Rising trend", Points: RisingBonus})
	}
	if x.MarketCap == models.LevelHigh {
		s.Parts = append(s.Parts, ScorePart{Label: "High market cap", Points: HighMarketCapBonus})
	}
	s.Parts = append(s.Parts, ScorePart{Label: "Sustainability", Points: x.SustainabilityScore})
	for _, p := range s.Parts {
		s.Total += p.Points
	}
	return s
}

// BestLongTerm returns the asset with the highest LongTermScore and that score.
func (a *Advisor) BestLongTerm() (models.Asset, int) {
	best := a.best(LongTermScore)
	return best, LongTermScore(best)
}

// Ranked returns the score breakdown of every asset, highest total first.
// Equal totals follow the tie break.
func (a *Advisor) Ranked() []Score {
	assets := a.catalog.Assets()
	scores := make([]Score, len(assets))
	for i, x := range assets {
		scores[i] = ScoreBreakdown(x)
	}
	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Total != scores[j].Total {
			return scores[i].Total > scores[j].Total
		}
		if a.tieBreak == TieBreakAlphabetical {
			return scores[i].Asset.Name < scores[j].Asset.Name
		}
		return false
	})
	return scores
}

// Compare returns the first two assets, in catalog order, whose names occur
// in the query. It fails with models.ErrInsufficientComparison when fewer
// than two are named.
func (a *Advisor) Compare(query string) (Comparison, error) {
	found := a.mentioned(query, 2)
	if len(found) < 2 {
		return Comparison{}, fmt.Errorf("%w: found %d in %q", models.ErrInsufficientComparison, len(found), query)
	}
	return Comparison{First: found[0], Second: found[1]}, nil
}

// Mentioned returns the first asset, in catalog order, whose name occurs in
// the query.
func (a *Advisor) Mentioned(query string) (models.Asset, bool) {
	found := a.mentioned(query, 1)
	if len(found) == 0 {
		return models.Asset{}, false
	}
	return found[0], true
}

// Details looks up an asset by name after title-casing it. An unknown name
// returns models.ErrAssetNotFound.
func (a *Advisor) Details(name string) (models.Asset, error) {
	title := models.TitleName(name)
	x, ok := a.catalog.Get(title)
	if !ok || x.Name != title {
		return models.Asset{}, fmt.Errorf("%w: %s", models.ErrAssetNotFound, title)
	}
	return x, nil
}

func (a *Advisor) mentioned(query string, limit int) []models.Asset {
	q := strings.ToLower(query)
	var found []models.Asset
	for _, x := range a.catalog.Assets() {
		if a.matcher.Contains(q, strings.ToLower(x.Name)) {
			found = append(found, x)
			if len(found) == limit {
				break
			}
		}
	}
	return found
}

func (a *Advisor) filter(keep func(models.Asset) bool) []models.Asset {
	out := []models.Asset{}
	for _, x := range a.catalog.Assets() {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}

// best returns the asset maximising score. The catalog is never empty.
func (a *Advisor) best(score func(models.Asset) int) models.Asset {
	assets := a.catalog.Assets()
	best := assets[0]
	bestScore := score(best)
	for _, x := range assets[1:] {
		s := score(x)
		switch {
		case s > bestScore:
			best, bestScore = x, s
		case s == bestScore && a.tieBreak == TieBreakAlphabetical && x.Name < best.Name:
			best = x
		}
	}
	return best
}
