// Package promises matches campaign promises against the voting record
// and classifies each one as kept, broken, in progress or not addressed.
package promises

import (
	"log"
	"sort"
	"strings"

	"civitrack/domain/civic"
	"civitrack/domain/core"
	"civitrack/domain/signal"
)

// Config holds the classifier's fixed thresholds.
type Config struct {
	// BrokenRate and InProgressRate are contradiction-rate cutoffs,
	// checked in that order.
	BrokenRate     float64
	InProgressRate float64
	// KeptMinSupport is the minimum supporting-vote count below the
	// in-progress cutoff required to call a promise kept.
	KeptMinSupport int
	// Evidence caps: contradicting votes first, then supporting.
	MaxContradictingEvidence int
	MaxSupportingEvidence    int
	// Keyword extraction bounds.
	MaxTextKeywords  int
	MinKeywordLength int
}

// DefaultConfig returns the standard promise thresholds.
func DefaultConfig() Config {
	return Config{
		BrokenRate:               0.7,
		InProgressRate:           0.4,
		KeptMinSupport:           3,
		MaxContradictingEvidence: 10,
		MaxSupportingEvidence:    5,
		MaxTextKeywords:          5,
		MinKeywordLength:         5,
	}
}

// categoryKeywords seeds the related-vote search per promise category.
var categoryKeywords = map[string][]string{
	"healthcare":     {"healthcare", "health", "medical", "medicare", "medicaid", "insurance", "hospital"},
	"economy":        {"economy", "tax", "jobs", "employment", "business", "income"},
	"education":      {"education", "school", "student", "college", "teacher"},
	"environment":    {"environment", "climate", "clean", "pollution", "renewable", "energy"},
	"immigration":    {"immigration", "border", "visa", "citizenship", "refugee"},
	"defense":        {"defense", "military", "veteran", "armed forces"},
	"infrastructure": {"infrastructure", "highway", "bridge", "broadband", "transportation"},
	"justice":        {"justice", "prison", "police", "crime", "court"},
	"labor":          {"labor", "worker", "wage", "union", "employment"},
}

// stopWords are common long words excluded from text-derived keywords.
var stopWords = map[string]bool{
	"about": true, "would": true, "should": true, "their": true,
	"there": true, "where": true, "these": true, "those": true,
}

// Stance indicator phrases in promise text.
var (
	proIndicators  = []string{"fight for", "support", "expand", "increase", "protect", "strengthen"}
	antiIndicators = []string{"fight against", "oppose", "reduce", "cut", "eliminate", "stop"}
)

// alignment is the per-vote stance classification.
type alignment int

const (
	alignNeutral alignment = iota
	alignSupports
	alignContradicts
)

// Analyzer classifies promises for one official.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates a promise analyzer.
func NewAnalyzer(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// Analyze evaluates every promise against the multi-year vote history.
// A nil promise snapshot degrades to an empty report.
func (a *Analyzer) Analyze(officialID core.OfficialID, promises *civic.PromiseSnapshot, votes []civic.VoteSnapshot) signal.PromiseReport {
	report := signal.PromiseReport{OfficialID: officialID, Promises: []signal.PromiseEvaluation{}}

	if promises == nil || len(promises.Items) == 0 {
		log.Printf("promises: official %s has no promise data, reporting empty summary", officialID)
		return report
	}

	for _, p := range promises.Items {
		report.Promises = append(report.Promises, a.evaluate(p, votes))
	}

	for _, eval := range report.Promises {
		switch eval.Status {
		case signal.PromiseKept:
			report.Summary.Kept++
		case signal.PromiseBroken:
			report.Summary.Broken++
		case signal.PromiseInProgress:
			report.Summary.InProgress++
		case signal.PromiseNotAddressed:
			report.Summary.NotAddressed++
		}
	}

	total := len(report.Promises)
	report.Summary.TotalPromises = total
	report.Summary.PromiseKeepingScore = core.Round1(core.Pct(float64(report.Summary.Kept), float64(total)))

	// Most-contradicted promises first; stable keeps input order on ties.
	sort.SliceStable(report.Promises, func(i, j int) bool {
		return report.Promises[i].TimesVotedAgainst > report.Promises[j].TimesVotedAgainst
	})

	return report
}

// evaluate classifies a single promise.
func (a *Analyzer) evaluate(p civic.Promise, votes []civic.VoteSnapshot) signal.PromiseEvaluation {
	keywords := a.keywords(p.Text, strings.ToLower(p.Category))
	related := findRelatedVotes(keywords, votes)

	var supporting, contradicting []civic.Vote
	for _, vote := range related {
		switch classifyAlignment(p.Text, vote.Vote) {
		case alignSupports:
			supporting = append(supporting, vote)
		case alignContradicts:
			contradicting = append(contradicting, vote)
		}
	}

	evidence := make([]signal.EvidenceVote, 0, len(contradicting)+len(supporting))
	for i, vote := range contradicting {
		if i >= a.cfg.MaxContradictingEvidence {
			break
		}
		evidence = append(evidence, evidenceVote(vote, true))
	}
	for i, vote := range supporting {
		if i >= a.cfg.MaxSupportingEvidence {
			break
		}
		evidence = append(evidence, evidenceVote(vote, false))
	}

	return signal.PromiseEvaluation{
		PromiseID:         p.ID,
		Category:          strings.ToLower(p.Category),
		PromiseText:       p.Text,
		SourceURL:         p.Source,
		Status:            a.status(len(supporting), len(contradicting)),
		Evidence:          evidence,
		TimesVotedAgainst: len(contradicting),
		TimesVotedFor:     len(supporting),
	}
}

// status applies the classification ladder. Order matters: no related
// votes short-circuits to not_addressed before any rate is computed.
func (a *Analyzer) status(supporting, contradicting int) signal.PromiseStatus {
	total := supporting + contradicting
	if total == 0 {
		return signal.PromiseNotAddressed
	}

	rate := float64(contradicting) / float64(total)
	switch {
	case rate >= a.cfg.BrokenRate:
		return signal.PromiseBroken
	case rate >= a.cfg.InProgressRate:
		return signal.PromiseInProgress
	case supporting >= a.cfg.KeptMinSupport:
		return signal.PromiseKept
	default:
		return signal.PromiseInProgress
	}
}

// keywords builds the search set: the category dictionary plus up to
// MaxTextKeywords long words lifted from the promise text.
func (a *Analyzer) keywords(text, category string) []string {
	keywords := append([]string{}, categoryKeywords[category]...)

	count := 0
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if count >= a.cfg.MaxTextKeywords {
			break
		}
		if len(word) < a.cfg.MinKeywordLength || stopWords[word] {
			continue
		}
		keywords = append(keywords, word)
		count++
	}

	return keywords
}

// findRelatedVotes returns votes whose title or summary contains any
// keyword, in snapshot order.
func findRelatedVotes(keywords []string, votes []civic.VoteSnapshot) []civic.Vote {
	var related []civic.Vote
	for _, ys := range votes {
		for _, vote := range ys.Votes {
			title := strings.ToLower(vote.Title)
			summary := strings.ToLower(vote.BillSummary)
			for _, kw := range keywords {
				if strings.Contains(title, kw) || strings.Contains(summary, kw) {
					related = append(related, vote)
					break
				}
			}
		}
	}
	return related
}

// classifyAlignment maps promise stance and vote value to a stance
// verdict. A promise matching both indicator lists takes the pro
// branch.
func classifyAlignment(promiseText string, vote civic.VoteValue) alignment {
	text := strings.ToLower(promiseText)
	pro := containsAny(text, proIndicators)
	anti := containsAny(text, antiIndicators)
	v := vote.Normalize()

	switch {
	case pro && v == civic.VoteYes:
		return alignSupports
	case pro && v == civic.VoteNo:
		return alignContradicts
	case anti && v == civic.VoteNo:
		return alignSupports
	case anti && v == civic.VoteYes:
		return alignContradicts
	}
	return alignNeutral
}

func evidenceVote(vote civic.Vote, contradicts bool) signal.EvidenceVote {
	return signal.EvidenceVote{
		VoteID:             vote.ID,
		BillName:           vote.Title,
		BillNumber:         vote.BillNumber,
		Vote:               string(vote.Vote),
		Date:               vote.Date,
		ContradictsPromise: contradicts,
	}
}

func containsAny(text string, indicators []string) bool {
	for _, ind := range indicators {
		if strings.Contains(text, ind) {
			return true
		}
	}
	return false
}
