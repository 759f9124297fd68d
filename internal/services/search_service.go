package services

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync/atomic"
	"unicode"

	"Klutterbox/internal/models"
	"Klutterbox/internal/repository"
	lru "github.com/hashicorp/golang-lru/v2"
)

// searchResultLimit caps every search tier.
const searchResultLimit = 200

const searchCacheSize = 512

// SearchService resolves a free-text query plus an optional box filter into
// a ranked, size-bounded item list.
//
// Tier order: prefix-OR match, then prefix-AND match, then substring LIKE.
// OR before AND looks backwards but is intentional: an empty OR result means
// no token prefix-matched anything, and the narrower AND retry exists for
// leniency on multi-token queries before giving up on the index entirely.
type SearchService interface {
	Search(q, boxCode string) ([]models.Item, error)
	// InvalidateCache must be called after any item or box-code mutation.
	InvalidateCache()
}

type searchServiceImpl struct {
	itemRepo   repository.ItemRepository
	logService LogService
	cache      *lru.Cache[[32]byte, []models.Item]
	generation atomic.Uint64
}

func NewSearchService(itemRepo repository.ItemRepository, logService LogService) SearchService {
	cache, err := lru.New[[32]byte, []models.Item](searchCacheSize)
	if err != nil {
		panic(fmt.Sprintf("failed to create search cache: %v", err))
	}
	return &searchServiceImpl{
		itemRepo:   itemRepo,
		logService: logService,
		cache:      cache,
	}
}

func (s *searchServiceImpl) Search(q, boxCode string) ([]models.Item, error) {
	q = strings.TrimSpace(q)
	boxCode = strings.TrimSpace(boxCode)
	if q == "" && boxCode == "" {
		return []models.Item{}, nil
	}

	key := s.cacheKey(q, boxCode)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	tokens := Tokenize(q)
	var rows []models.Item
	var err error
	switch {
	case len(tokens) > 0:
		rows, err = s.itemRepo.SearchMatch(buildMatchExpr(tokens, " OR "), boxCode, searchResultLimit)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			rows, err = s.itemRepo.SearchMatch(buildMatchExpr(tokens, " "), boxCode, searchResultLimit)
			if err != nil {
				return nil, err
			}
		}
		if len(rows) == 0 {
			rows, err = s.itemRepo.SearchLike(tokens, boxCode, searchResultLimit)
			if err != nil {
				return nil, err
			}
		}
	case boxCode != "":
		rows, err = s.itemRepo.List(boxCode, searchResultLimit, 0)
		if err != nil {
			return nil, err
		}
	}

	if rows == nil {
		rows = []models.Item{}
	}
	s.cache.Add(key, rows)
	return rows, nil
}

// InvalidateCache bumps the generation counter, orphaning every cached
// result; the LRU evicts the stale entries over time.
func (s *searchServiceImpl) InvalidateCache() {
	s.generation.Add(1)
}

func (s *searchServiceImpl) cacheKey(q, boxCode string) [32]byte {
	return sha256.Sum256([]byte(fmt.Sprintf("%d|%s|%s", s.generation.Load(), q, boxCode)))
}

// Tokenize splits the query on whitespace, strips punctuation and symbol
// runes from each token and drops anything left empty.
func Tokenize(q string) []string {
	fields := strings.Fields(q)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		cleaned := strings.Map(func(r rune) rune {
			if unicode.IsPunct(r) || unicode.IsSymbol(r) {
				return -1
			}
			return r
		}, field)
		if cleaned != "" {
			tokens = append(tokens, cleaned)
		}
	}
	return tokens
}

// buildMatchExpr turns tokens into an FTS5 expression of quoted prefix
// terms, e.g. ["hex", "wrench"] -> `"hex"* OR "wrench"*`. A bare space
// separator means implicit AND.
func buildMatchExpr(tokens []string, separator string) string {
	terms := make([]string, 0, len(tokens))
	for _, token := range tokens {
		terms = append(terms, fmt.Sprintf("\"%s\"*", token))
	}
	return strings.Join(terms, separator)
}
