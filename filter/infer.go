package filter

import (
	"regexp"
	"strings"
	"time"
)

// sectionPatterns capture explicit section and article references in queries.
var sectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)section\s+(\d+)`), // Section 302
	regexp.MustCompile(`(?i)sec\.?\s*(\d+)`),  // Sec 302 or Sec. 302
	regexp.MustCompile(`(?i)s\.?\s*(\d+)`),    // S 302 or S. 302
	regexp.MustCompile(`(?i)article\s+(\d+)`), // Article 14
	regexp.MustCompile(`(?i)art\.?\s*(\d+)`),  // Art 14 or Art. 14
}

// InferFilters classifies a free-text query into metadata filters: legal
// domain, jurisdiction, court type, recency, explicit section numbers, and
// named acts. Each inferred facet becomes one Filter with its fixed boost.
// The reference time anchors the "recent" year-range facet.
func InferFilters(query string, now time.Time) []Filter {
	var filters []Filter
	q := strings.ToLower(query)

	if domain := inferDomain(q); domain != "" {
		filters = append(filters, Filter{
			Field:    "legal_domain",
			Operator: OpEquals,
			Value:    domain,
			Boost:    domainBoost,
		})
	}

	if jurisdiction := firstMatch(q, jurisdictionClusters); jurisdiction != "" {
		filters = append(filters, Filter{
			Field:    "jurisdiction",
			Operator: OpEquals,
			Value:    jurisdiction,
			Boost:    jurisdictionBoost,
		})
	}

	if court := firstMatch(q, courtClusters); court != "" {
		filters = append(filters, Filter{
			Field:    "court_type",
			Operator: OpEquals,
			Value:    court,
			Boost:    courtBoost,
		})
	}

	if strings.Contains(q, "recent") || strings.Contains(q, "latest") {
		min := float64(now.Year() - 5)
		max := float64(now.Year())
		filters = append(filters, Filter{
			Field:    "year",
			Operator: OpRange,
			Value:    Range{Min: &min, Max: &max},
			Boost:    yearRangeBoost,
		})
	}

	if sections := extractSections(q); len(sections) > 0 {
		filters = append(filters, Filter{
			Field:    "section_number",
			Operator: OpIn,
			Value:    sections,
			Boost:    sectionBoost, // exact section matches outrank everything else
		})
	}

	if act := firstMatch(q, actClusters); act != "" {
		filters = append(filters, Filter{
			Field:    "act_name",
			Operator: OpContains,
			Value:    act,
			Boost:    actNameBoost,
		})
	}

	return filters
}

// inferDomain picks the domain with the highest keyword-hit count.
// Ties break by cluster enumeration order.
func inferDomain(query string) string {
	best := ""
	bestHits := 0
	for _, cluster := range domainClusters {
		hits := 0
		for _, kw := range cluster.keywords {
			if strings.Contains(query, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best = cluster.name
			bestHits = hits
		}
	}
	return best
}

// firstMatch returns the first cluster any of whose keywords appears in the query.
func firstMatch(query string, clusters []keywordCluster) string {
	for _, cluster := range clusters {
		for _, kw := range cluster.keywords {
			if strings.Contains(query, kw) {
				return cluster.name
			}
		}
	}
	return ""
}

// extractSections collects all section/article numbers mentioned in the
// query, deduplicated in first-seen order.
func extractSections(query string) []string {
	seen := make(map[string]bool)
	var sections []string
	for _, pattern := range sectionPatterns {
		for _, m := range pattern.FindAllStringSubmatch(query, -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				sections = append(sections, m[1])
			}
		}
	}
	return sections
}
