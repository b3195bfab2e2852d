// Package scoring implements the personalization engine: firm-profile
// relevance calculation, batch relevance/priority scoring, watch-list
// matching and alert urgency scoring. Everything here is pure computation
// over in-memory values; the weights and keyword tables are product-tunable
// parameters, not load-bearing algorithmic constants.
package scoring

// Profile relevance signal weights (sector / firm type / jurisdiction / size).
const (
	sectorMatchWeight       = 0.4
	firmTypeMatchWeight     = 0.3
	jurisdictionMatchWeight = 0.2
	sizeMatchWeight         = 0.1
)

// Batch scorer contribution weights.
const (
	sectorScoreWeight        = 0.4
	focusAreaKeywordPoints   = 15
	businessModelPoints      = 10
	firmSizeKeywordPoints    = 12
	businessModelFactorFloor = 20
	firmSizeFactorFloor      = 15
	highSectorRelevanceFloor = 30
)

// RelevanceCutoff is the hard floor below which an update is dropped from
// the personalized feed.
const RelevanceCutoff = 20

// focusAreaKeywords maps a firm focus area to the keyword list counted
// against headline+impact text.
var focusAreaKeywords = map[string][]string{
	"Operational Resilience": {"operational", "resilience", "outsourcing", "business continuity", "incident"},
	"Consumer Protection":    {"consumer", "protection", "fair treatment", "vulnerable", "complaints"},
	"Market Conduct":         {"market conduct", "market abuse", "integrity", "trading", "manipulation"},
	"Capital Requirements":   {"capital", "basel", "prudential", "leverage", "liquidity"},
	"Reporting & Disclosure": {"reporting", "disclosure", "transparency", "data", "submission"},
	"ESG & Sustainability":   {"esg", "sustainability", "climate", "green", "environmental"},
	"Digital Innovation":     {"digital", "fintech", "innovation", "technology", "ai", "blockchain"},
	"Risk Management":        {"risk management", "risk assessment", "risk appetite", "governance"},
	"Regulatory Technology":  {"regtech", "technology", "automation", "digital transformation"},
}

// businessModelKeywords maps a business-model tag to its keyword list.
var businessModelKeywords = map[string][]string{
	"traditional": {"traditional", "established", "bank", "institution"},
	"digital":     {"digital", "online", "fintech", "technology", "app"},
	"hybrid":      {"hybrid", "digital transformation", "modernization"},
	"niche":       {"specialist", "niche", "boutique", "specialized"},
}

// riskAppetitePoints maps (risk posture, update urgency) to points added
// unconditionally to the relevance score. Conservative firms weight
// high-urgency items hardest; aggressive firms weight medium-urgency hardest.
var riskAppetitePoints = map[string]map[string]float64{
	"conservative": {"High": 25, "Medium": 15, "Low": 5},
	"moderate":     {"High": 20, "Medium": 20, "Low": 10},
	"aggressive":   {"High": 15, "Medium": 25, "Low": 15},
}

// unknownUrgencyPoints is the fallback when the update carries no recognized
// urgency tier.
const unknownUrgencyPoints = 10

// firmSizeKeywords maps a size tier to its keyword list. The systemic tier
// shares the large-firm row; the multinational row is kept for profiles
// imported from older data.
var firmSizeKeywords = map[string][]string{
	"small":         {"small firm", "sme", "proportionality", "simplified"},
	"medium":        {"medium", "mid-size", "regional"},
	"large":         {"large firm", "systemically important", "major", "tier 1"},
	"multinational": {"global", "international", "cross-border", "multinational"},
}

// firmSizeKeywordAliases folds profile size values without their own keyword
// row onto the nearest tier.
var firmSizeKeywordAliases = map[string]string{
	"micro":    "small",
	"systemic": "large",
}

// authorityImportance weights UK regulators for urgency scoring; unlisted
// authorities default to defaultAuthorityImportance.
var authorityImportance = map[string]int{
	"FCA":             10,
	"PRA":             10,
	"Bank of England": 9,
	"HM Treasury":     8,
	"ICO":             7,
	"FRC":             6,
}

const defaultAuthorityImportance = 5

// complianceActionTitles derives an action title from headline content.
// Order matters: the first matching substring wins.
var complianceActionTitles = []struct {
	Substring string
	Title     string
}{
	{"consultation", "Review and respond to consultation"},
	{"guidance", "Implement new guidance"},
	{"deadline", "Meet compliance deadline"},
	{"reporting", "Update reporting procedures"},
}

const defaultComplianceActionTitle = "Review regulatory update"

// riskCategoryKeywords buckets updates into the five fixed risk categories.
// An update can contribute to more than one category.
var riskCategoryKeywords = map[string][]string{
	"Operational Risk":  {"operational", "system", "technology", "outsourcing", "resilience"},
	"Compliance Risk":   {"compliance", "regulatory", "requirement", "rule", "obligation"},
	"Reputational Risk": {"reputation", "conduct", "consumer", "fine", "enforcement"},
	"Financial Risk":    {"capital", "liquidity", "financial", "prudential", "solvency"},
	"Strategic Risk":    {"strategic", "business model", "competition", "innovation", "market"},
}

// riskCategoryOrder fixes a stable output order before score sorting.
var riskCategoryOrder = []string{
	"Operational Risk",
	"Compliance Risk",
	"Reputational Risk",
	"Financial Risk",
	"Strategic Risk",
}
