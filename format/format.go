// Package format renders advisor results as the text shown to the user.
package format

import (
	"fmt"
	"io"
	"strings"

	"crypto-buddy/advisor"
	"crypto-buddy/models"
)

const (
	BotName = "CryptoBuddy"

	wideRule   = 60
	detailRule = 50
	tableRule  = 55
)

type Formatter struct {
	styles Styles
}

// New returns a formatter whose colours suit w. Non-terminal writers get
// plain text.
func New(w io.Writer) *Formatter {
	return &Formatter{styles: NewStyles(w)}
}

func (f *Formatter) Greeting() string {
	var b strings.Builder
	rule := strings.Repeat("=", wideRule)
	fmt.Fprintf(&b, "\n%s\n", rule)
	fmt.Fprintf(&b, "%s\n", f.styles.Banner.Render(fmt.Sprintf("🤖 Hey there! I'm %s, your crypto sidekick! 🚀", BotName)))
	fmt.Fprintf(&b, "%s\n", rule)
	b.WriteString("I can help you find cryptocurrencies based on:\n")
	b.WriteString("  💰 Profitability (trending coins)\n")
	b.WriteString("  🌱 Sustainability (eco-friendly options)\n")
	b.WriteString("  📊 Market cap and stability\n")
	b.WriteString("\nType 'help' for example questions or 'quit' to exit.\n")
	fmt.Fprintf(&b, "%s\n\n", rule)
	return b.String()
}

func (f *Formatter) Help() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", f.styles.Title.Render("📚 Here are some questions you can ask me:"))
	for _, q := range []string{
		"Which crypto is most sustainable?",
		"Show me rising cryptocurrencies",
		"What's the best long-term investment?",
		"Compare Bitcoin and Cardano",
		"List all cryptos",
		"Tell me about Ethereum",
		"Which has low energy use?",
	} {
		fmt.Fprintf(&b, "  • '%s'\n", q)
	}
	b.WriteString("\n")
	return b.String()
}

// List renders the whole catalog, one entry per asset.
func (f *Formatter) List(assets []models.Asset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n\n", f.styles.Title.Render("📋 Available Cryptocurrencies:"))
	for _, a := range assets {
		trend := "📊"
		if a.PriceTrend == models.TrendRising {
			trend = "📈"
		}
		eco := "⚡"
		if a.SustainabilityScore >= 7 {
			eco = "🌱"
		}
		fmt.Fprintf(&b, "%s %s %s (%s)\n", trend, eco, f.styles.Label.Render(a.Name), a.Symbol)
		fmt.Fprintf(&b, "   Price: %s | Sustainability: %d/10\n", Title(string(a.PriceTrend)), a.SustainabilityScore)
	}
	b.WriteString("\n")
	return b.String()
}

func (f *Formatter) Details(a models.Asset) string {
	var b strings.Builder
	rule := strings.Repeat("─", detailRule)
	fmt.Fprintf(&b, "\n%s\n", f.styles.Title.Render(fmt.Sprintf("💎 %s (%s) Details:", a.Name, a.Symbol)))
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "📝 %s\n", a.Description)
	fmt.Fprintf(&b, "📈 Price Trend: %s\n", Title(string(a.PriceTrend)))
	fmt.Fprintf(&b, "💰 Market Cap: %s\n", Title(string(a.MarketCap)))
	fmt.Fprintf(&b, "⚡ Energy Use: %s\n", Title(string(a.EnergyUse)))
	fmt.Fprintf(&b, "🌱 Sustainability Score: %d/10\n", a.SustainabilityScore)
	fmt.Fprintf(&b, "⚠️  Risk Level: %s\n", Title(string(a.RiskLevel)))
	fmt.Fprintf(&b, "%s\n\n", rule)
	return b.String()
}

func (f *Formatter) NotFound(name string) string {
	return "\n" + f.styles.Error.Render(fmt.Sprintf("❌ Sorry, I don't have data on %s yet!", name)) + "\n\n"
}

// AskWhich is shown when an "about" question names no known asset.
func (f *Formatter) AskWhich() string {
	return "\n❓ Which cryptocurrency would you like to know about?\n\n"
}

func (f *Formatter) MostSustainable(a models.Asset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", f.styles.Title.Render(fmt.Sprintf("🌱 Most Sustainable: %s (%s)", a.Name, a.Symbol)))
	fmt.Fprintf(&b, "Sustainability Score: %d/10\n", a.SustainabilityScore)
	fmt.Fprintf(&b, "Energy Use: %s\n", Title(string(a.EnergyUse)))
	fmt.Fprintf(&b, "💡 Why? %s\n", a.Description)
	b.WriteString("This is great for long-term, eco-conscious investing! 🌍\n\n")
	return b.String()
}

func (f *Formatter) Rising(assets []models.Asset) string {
	if len(assets) == 0 {
		return "\n📊 No cryptocurrencies are currently trending up.\n\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n\n", f.styles.Title.Render("📈 Rising Cryptocurrencies:"))
	for _, a := range assets {
		fmt.Fprintf(&b, "🚀 %s (%s)\n", f.styles.Label.Render(a.Name), a.Symbol)
		fmt.Fprintf(&b, "   Market Cap: %s\n", Title(string(a.MarketCap)))
		fmt.Fprintf(&b, "   Sustainability: %d/10\n", a.SustainabilityScore)
		fmt.Fprintf(&b, "   Risk: %s\n\n", Title(string(a.RiskLevel)))
	}
	return b.String()
}

func (f *Formatter) BestLongTerm(a models.Asset, score int) string {
	var b strings.Builder
	rule := strings.Repeat("─", detailRule)
	fmt.Fprintf(&b, "\n%s\n", f.styles.Title.Render(fmt.Sprintf("🎯 Best Long-Term Investment: %s (%s)", a.Name, a.Symbol)))
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "📊 Overall Score: %d/%d\n", score, advisor.MaxLongTermScore)
	fmt.Fprintf(&b, "📈 Trend: %s\n", Title(string(a.PriceTrend)))
	fmt.Fprintf(&b, "🌱 Sustainability: %d/10\n", a.SustainabilityScore)
	fmt.Fprintf(&b, "💰 Market Cap: %s\n", Title(string(a.MarketCap)))
	fmt.Fprintf(&b, "\n💡 %s\n", a.Description)
	fmt.Fprintf(&b, "%s\n\n", rule)
	return b.String()
}

// Scores renders the long-term breakdown of each asset in the given order.
func (f *Formatter) Scores(scores []advisor.Score) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n\n", f.styles.Title.Render("📊 Long-Term Scores:"))
	for _, s := range scores {
		fmt.Fprintf(&b, "%s: %d/%d points\n", f.styles.Label.Render(s.Asset.Name), s.Total, advisor.MaxLongTermScore)
		for _, p := range s.Parts {
			fmt.Fprintf(&b, "  • %s (+%d)\n", p.Label, p.Points)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (f *Formatter) Compare(c advisor.Comparison) string {
	var b strings.Builder
	x, y := c.First, c.Second
	fmt.Fprintf(&b, "\n%s\n\n", f.styles.Title.Render(fmt.Sprintf("⚖️  Comparing %s vs %s:", x.Name, y.Name)))
	row := func(metric, left, right string) {
		fmt.Fprintf(&b, "%-25s %-15s %-15s\n", metric, left, right)
	}
	row("Metric", x.Name, y.Name)
	fmt.Fprintf(&b, "%s\n", strings.Repeat("─", tableRule))
	row("Price Trend", string(x.PriceTrend), string(y.PriceTrend))
	row("Market Cap", string(x.MarketCap), string(y.MarketCap))
	row("Energy Use", string(x.EnergyUse), string(y.EnergyUse))
	row("Sustainability Score", fmt.Sprintf("%d/10", x.SustainabilityScore), fmt.Sprintf("%d/10", y.SustainabilityScore))
	row("Risk Level", string(x.RiskLevel), string(y.RiskLevel))
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("─", tableRule))
	return b.String()
}

func (f *Formatter) InsufficientComparison() string {
	return "\n" + f.styles.Error.Render("❌ Please mention two cryptocurrencies to compare!") + "\n\n"
}

func (f *Formatter) LowEnergy(assets []models.Asset) string {
	if len(assets) == 0 {
		return "\n" + f.styles.Error.Render("❌ No low-energy cryptocurrencies found.") + "\n\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n\n", f.styles.Title.Render("⚡ Low Energy Cryptocurrencies:"))
	for _, a := range assets {
		fmt.Fprintf(&b, "🌱 %s (%s)\n", f.styles.Label.Render(a.Name), a.Symbol)
		fmt.Fprintf(&b, "   Sustainability: %d/10\n", a.SustainabilityScore)
		fmt.Fprintf(&b, "   Trend: %s\n\n", Title(string(a.PriceTrend)))
	}
	return b.String()
}

// SearchResults renders full-text search hits.
func (f *Formatter) SearchResults(query string, assets []models.Asset) string {
	if len(assets) == 0 {
		return fmt.Sprintf("\n🔍 Nothing matches %q.\n\n", query)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n\n", f.styles.Title.Render(fmt.Sprintf("🔍 Results for %q:", query)))
	for _, a := range assets {
		fmt.Fprintf(&b, "• %s (%s): %s\n", f.styles.Label.Render(a.Name), a.Symbol, a.Description)
	}
	b.WriteString("\n")
	return b.String()
}

func (f *Formatter) Unrecognized() string {
	return "\n🤔 Hmm, I'm not sure what you're asking.\nType 'help' to see example questions!\n\n"
}

func (f *Formatter) Disclaimer() string {
	return f.styles.Warning.Render("⚠️  Reminder: Crypto is risky. Always do your own research! 💡") + "\n\n"
}

// Farewell is printed when the user ends the session with a command.
func (f *Formatter) Farewell() string {
	return "\n" + f.styles.Success.Render("👋 Thanks for chatting! Stay crypto-savvy! 🚀") + "\n\n"
}

// Goodbye is printed when the session is interrupted or input ends.
func (f *Formatter) Goodbye() string {
	return "\n\n" + f.styles.Success.Render("👋 Goodbye! Happy investing! 💰") + "\n\n"
}

func (f *Formatter) Oops(err error) string {
	return "\n" + f.styles.Error.Render(fmt.Sprintf("❌ Oops! Something went wrong: %v", err)) + "\n\n"
}

// Title capitalises each word of an attribute value, treating hyphens as
// word breaks: "medium-high" becomes "Medium-High".
func Title(s string) string {
	upper := true
	var b strings.Builder
	for _, r := range s {
		if upper {
			b.WriteString(strings.ToUpper(string(r)))
		} else {
			b.WriteRune(r)
		}
		upper = r == ' ' || r == '-'
	}
	return b.String()
}
