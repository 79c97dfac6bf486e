package usecase

import (
	"log"
	"strings"

	"github.com/pricecheck/backend/internal/domain"
)

// defaultMinSharedKeywords is the keyword overlap required when a name has
// more than three keywords
const defaultMinSharedKeywords = 3

// MatchConfig holds configuration for the matching service
type MatchConfig struct {
	// MinSharedKeywords caps the number of keywords a candidate must share
	MinSharedKeywords int
	// RequireKeyword makes a match require at least one shared keyword.
	// A target with no keywords then only matches identical normalized names.
	RequireKeyword     bool
	EnableDebugLogging bool
}

// MatchingService decides which listings from different retailers
// represent the same product
type MatchingService struct {
	minSharedKeywords  int
	requireKeyword     bool
	enableDebugLogging bool
}

// NewMatchingService creates a new matching service with the given configuration
func NewMatchingService(config MatchConfig) *MatchingService {
	minShared := config.MinSharedKeywords
	if minShared <= 0 {
		minShared = defaultMinSharedKeywords
	}

	return &MatchingService{
		minSharedKeywords:  minShared,
		requireKeyword:     config.RequireKeyword,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// FindMatches returns every listing in catalogue, in catalogue order, that
// is in the target's category and shares enough keywords with it. The
// target itself is always part of the result when it is in catalogue.
func (s *MatchingService) FindMatches(target domain.Listing, catalogue []domain.Listing) []domain.Listing {
	normalized := make([]string, len(catalogue))
	for i, candidate := range catalogue {
		if candidate.Category == target.Category {
			normalized[i] = Normalize(candidate.Name)
		}
	}

	indices := s.matchIndices(target, catalogue, normalized)
	matches := make([]domain.Listing, 0, len(indices))
	for _, i := range indices {
		matches = append(matches, catalogue[i])
	}
	return matches
}

// matchIndices does the work of FindMatches against names already
// normalized, so a whole-catalogue pass normalizes each name once
func (s *MatchingService) matchIndices(target domain.Listing, catalogue []domain.Listing, normalized []string) []int {
	targetName := Normalize(target.Name)
	keywords := keywordsOf(targetName)
	threshold := s.threshold(len(keywords))

	if s.enableDebugLogging {
		log.Printf("[MATCH] Target: %q (category: %q) keywords=%v threshold=%d",
			target.Name, target.Category, keywords, threshold)
	}

	var indices []int
	for i, candidate := range catalogue {
		if candidate.Category != target.Category {
			continue
		}

		if len(keywords) == 0 && s.requireKeyword {
			if normalized[i] == targetName {
				indices = append(indices, i)
			}
			continue
		}

		matchCount := countContained(keywords, normalized[i])
		if matchCount >= threshold {
			if s.enableDebugLogging {
				log.Printf("[MATCH] Accepted: %q (%s) matched=%d", candidate.Name, candidate.Retailer, matchCount)
			}
			indices = append(indices, i)
		}
	}

	return indices
}

// threshold is min(minSharedKeywords, keywords-1). Without RequireKeyword
// it can drop to 0 or -1, which accepts every candidate in the category.
func (s *MatchingService) threshold(keywordCount int) int {
	threshold := min(s.minSharedKeywords, keywordCount-1)
	if s.requireKeyword && threshold < 1 {
		threshold = 1
	}
	return threshold
}

// countContained counts the keywords that appear as substrings of name
func countContained(keywords []string, name string) int {
	count := 0
	for _, k := range keywords {
		if strings.Contains(name, k) {
			count++
		}
	}
	return count
}
