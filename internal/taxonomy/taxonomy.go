// Package taxonomy classifies donors into industries and bills into
// issue categories by keyword-substring matching. The keyword tables
// are static configuration, built once and never mutated.
package taxonomy

import (
	"strings"
)

// KeyOther is returned when no keyword set matches.
const KeyOther = "other"

// Industry keys, in fixed match-priority order.
const (
	IndustryPharma         = "pharmaceuticals"
	IndustryOilGas         = "oil_gas"
	IndustryTech           = "tech"
	IndustryFinance        = "finance"
	IndustryDefense        = "defense"
	IndustryHealthcare     = "healthcare"
	IndustryAgriculture    = "agriculture"
	IndustryTelecom        = "telecom"
	IndustryEducation      = "education"
	IndustryTransportation = "transportation"
	IndustryLabor          = "labor"
	IndustryEnvironment    = "environment"
)

// Bill category keys, in fixed match order.
const (
	CategoryHealthcare     = "healthcare"
	CategoryEconomy        = "economy"
	CategoryEducation      = "education"
	CategoryEnvironment    = "environment"
	CategoryImmigration    = "immigration"
	CategoryDefense        = "defense"
	CategoryInfrastructure = "infrastructure"
	CategoryJustice        = "justice"
	CategoryLabor          = "labor"
	CategoryTechnology     = "technology"
	CategoryEnergy         = "energy"
	CategoryAgriculture    = "agriculture"
)

type industryEntry struct {
	Key      string
	Name     string
	Keywords []string
}

type categoryEntry struct {
	Key      string
	Keywords []string
}

// Matching is priority-ordered, so these are slices rather than maps.
var industryTable = []industryEntry{
	{IndustryPharma, "Pharmaceuticals", []string{"pharma", "drug", "biotech", "pfizer", "merck", "novartis", "eli lilly", "astrazeneca"}},
	{IndustryOilGas, "Oil & Gas", []string{"oil", "gas", "petroleum", "drilling", "exxon", "chevron", "conocophillips", "halliburton"}},
	{IndustryTech, "Technology", []string{"tech", "software", "internet", "google", "microsoft", "apple", "amazon", "meta", "silicon"}},
	{IndustryFinance, "Finance & Banking", []string{"bank", "financ", "invest", "securities", "hedge", "goldman", "jpmorgan", "capital"}},
	{IndustryDefense, "Defense Contractors", []string{"defense", "aerospace", "lockheed", "boeing", "raytheon", "northrop", "general dynamics"}},
	{IndustryHealthcare, "Healthcare", []string{"health", "hospital", "medical", "clinic", "unitedhealth", "humana", "insurer"}},
	{IndustryAgriculture, "Agriculture", []string{"agri", "farm", "cargill", "monsanto", "archer daniels", "livestock"}},
	{IndustryTelecom, "Telecommunications", []string{"telecom", "wireless", "verizon", "at&t", "comcast", "t-mobile", "cable"}},
	{IndustryEducation, "Education", []string{"education", "university", "college", "school", "teacher"}},
	{IndustryTransportation, "Transportation", []string{"transport", "airline", "railroad", "trucking", "automotive", "motors"}},
	{IndustryLabor, "Labor Unions", []string{"union", "labor", "afl-cio", "teamsters", "seiu", "workers"}},
	{IndustryEnvironment, "Environmental Groups", []string{"environment", "climate", "conservation", "sierra", "renewable", "clean energy"}},
}

var categoryTable = []categoryEntry{
	{CategoryHealthcare, []string{"health", "medicare", "medicaid", "hospital", "prescription", "insurance", "medical"}},
	{CategoryEconomy, []string{"tax", "econom", "jobs", "business", "budget", "tariff", "trade"}},
	{CategoryEducation, []string{"education", "school", "student", "college", "teacher"}},
	{CategoryEnvironment, []string{"environment", "climate", "pollution", "emissions", "clean air", "clean water", "conservation"}},
	{CategoryImmigration, []string{"immigration", "border", "visa", "citizenship", "refugee", "asylum"}},
	{CategoryDefense, []string{"defense", "military", "armed forces", "veteran", "national security"}},
	{CategoryInfrastructure, []string{"infrastructure", "highway", "bridge", "transit", "broadband", "road"}},
	{CategoryJustice, []string{"justice", "crime", "police", "prison", "sentencing", "court"}},
	{CategoryLabor, []string{"labor", "worker", "union", "minimum wage", "overtime", "workplace"}},
	{CategoryTechnology, []string{"technology", "internet", "data privacy", "artificial intelligence", "cyber", "algorithm"}},
	{CategoryEnergy, []string{"energy", "oil", "gas", "drilling", "pipeline", "solar", "wind power"}},
	{CategoryAgriculture, []string{"agriculture", "farm", "crop", "livestock", "rural"}},
}

// relevance maps an industry to the bill categories whose outcomes it
// cares about. Industries absent here (and "other") have no related
// bills by definition.
var relevance = map[string][]string{
	IndustryPharma:         {CategoryHealthcare},
	IndustryOilGas:         {CategoryEnergy, CategoryEnvironment},
	IndustryTech:           {CategoryTechnology},
	IndustryFinance:        {CategoryEconomy},
	IndustryDefense:        {CategoryDefense},
	IndustryHealthcare:     {CategoryHealthcare},
	IndustryAgriculture:    {CategoryAgriculture},
	IndustryTelecom:        {CategoryTechnology},
	IndustryEducation:      {CategoryEducation},
	IndustryTransportation: {CategoryInfrastructure},
	IndustryLabor:          {CategoryLabor},
	IndustryEnvironment:    {CategoryEnvironment},
}

// Categorizer performs keyword classification over the static tables.
type Categorizer struct {
	industries []industryEntry
	categories []categoryEntry
	relevance  map[string][]string
}

// NewCategorizer creates a categorizer over the built-in tables.
func NewCategorizer() *Categorizer {
	return &Categorizer{
		industries: industryTable,
		categories: categoryTable,
		relevance:  relevance,
	}
}

// CategorizeDonor maps a donor to an industry key. An existing label
// from the finance collaborator is matched before the donor name.
// Matching is substring containment against lower-cased text; the first
// industry in priority order wins. Returns KeyOther when nothing hits.
func (c *Categorizer) CategorizeDonor(name, existingLabel string) string {
	if existingLabel != "" {
		label := strings.ToLower(existingLabel)
		for _, ind := range c.industries {
			if containsAny(label, ind.Keywords) {
				return ind.Key
			}
		}
	}

	donor := strings.ToLower(name)
	for _, ind := range c.industries {
		if containsAny(donor, ind.Keywords) {
			return ind.Key
		}
	}

	return KeyOther
}

// CategorizeBill maps a bill title plus optional summary to every
// matching issue category. Returns [KeyOther] when nothing hits.
func (c *Categorizer) CategorizeBill(title, summary string) []string {
	text := strings.ToLower(title)
	if summary != "" {
		text += " " + strings.ToLower(summary)
	}

	var matched []string
	for _, cat := range c.categories {
		if containsAny(text, cat.Keywords) {
			matched = append(matched, cat.Key)
		}
	}

	if len(matched) == 0 {
		return []string{KeyOther}
	}
	return matched
}

// RelevantCategories returns the bill categories an industry cares
// about, or nil for unmapped industries.
func (c *Categorizer) RelevantCategories(industryKey string) []string {
	return c.relevance[industryKey]
}

// IndustryRelated reports whether any of the bill categories fall in
// the industry's relevance set.
func (c *Categorizer) IndustryRelated(industryKey string, billCategories []string) bool {
	related := c.relevance[industryKey]
	for _, cat := range billCategories {
		for _, rel := range related {
			if cat == rel {
				return true
			}
		}
	}
	return false
}

// IndustryName returns the display name for an industry key, falling
// back to the key itself.
func (c *Categorizer) IndustryName(industryKey string) string {
	for _, ind := range c.industries {
		if ind.Key == industryKey {
			return ind.Name
		}
	}
	return industryKey
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
