package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeDonorByName(t *testing.T) {
	cat := NewCategorizer()

	tests := []struct {
		donor    string
		expected string
	}{
		{"Pfizer PAC", IndustryPharma},
		{"Exxon Employees", IndustryOilGas},
		{"Google LLC", IndustryTech},
		{"Goldman Sachs Group", IndustryFinance},
		{"Lockheed Martin PAC", IndustryDefense},
		{"Teamsters Local 120", IndustryLabor},
		{"Random Company", KeyOther},
		{"", KeyOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, cat.CategorizeDonor(tt.donor, ""), "donor %q", tt.donor)
	}
}

func TestCategorizeDonorPrefersExistingLabel(t *testing.T) {
	cat := NewCategorizer()

	// The finance collaborator's label wins over the donor name.
	got := cat.CategorizeDonor("Smith Family Trust", "Oil & Gas")
	assert.Equal(t, IndustryOilGas, got)

	// A label that matches nothing falls through to the name.
	got = cat.CategorizeDonor("Verizon Communications", "Unclassifiable")
	assert.Equal(t, IndustryTelecom, got)
}

func TestCategorizeDonorPriorityOrder(t *testing.T) {
	cat := NewCategorizer()

	// "pharma" outranks "health" because pharmaceuticals sits earlier
	// in the priority table.
	got := cat.CategorizeDonor("Pharma Health Alliance", "")
	assert.Equal(t, IndustryPharma, got)
}

func TestCategorizeBillMultipleCategories(t *testing.T) {
	cat := NewCategorizer()

	got := cat.CategorizeBill("Clean Energy Jobs Act", "Invests in solar energy and creates jobs")
	assert.Contains(t, got, CategoryEconomy)
	assert.Contains(t, got, CategoryEnergy)
}

func TestCategorizeBillFallback(t *testing.T) {
	cat := NewCategorizer()

	got := cat.CategorizeBill("Post Office Renaming Act", "")
	assert.Equal(t, []string{KeyOther}, got)
}

func TestCategorizeBillUsesSummary(t *testing.T) {
	cat := NewCategorizer()

	got := cat.CategorizeBill("H.R. 1234", "Expands medicare coverage for community hospitals")
	assert.Equal(t, []string{CategoryHealthcare}, got)
}

func TestRelevanceMap(t *testing.T) {
	cat := NewCategorizer()

	assert.Equal(t, []string{CategoryHealthcare}, cat.RelevantCategories(IndustryPharma))
	assert.ElementsMatch(t, []string{CategoryEnergy, CategoryEnvironment}, cat.RelevantCategories(IndustryOilGas))
	assert.Nil(t, cat.RelevantCategories(KeyOther))

	assert.True(t, cat.IndustryRelated(IndustryOilGas, []string{CategoryEnergy}))
	assert.False(t, cat.IndustryRelated(IndustryOilGas, []string{CategoryEducation}))
	assert.False(t, cat.IndustryRelated(KeyOther, []string{CategoryEnergy}))
}

func TestIndustryName(t *testing.T) {
	cat := NewCategorizer()

	assert.Equal(t, "Oil & Gas", cat.IndustryName(IndustryOilGas))
	assert.Equal(t, "unknown_key", cat.IndustryName("unknown_key"))
}
