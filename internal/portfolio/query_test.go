package portfolio_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HendryAvila/portfolio-mcp/internal/portfolio"
	"github.com/HendryAvila/portfolio-mcp/internal/portfolio/portfoliotest"
)

// ─── Store ───────────────────────────────────────────────────────────────────

func TestNewStore_CopiesInput(t *testing.T) {
	records := portfoliotest.Records()
	store := portfolio.NewStore(records)

	records[0].Title = "mutated"
	records[0].Keywords[0] = "mutated"

	got := store.Records()
	assert.Equal(t, "Srikanth Karthikeyan - Full Stack & Cloud Engineer", got[0].Title)
	assert.Equal(t, "profile", got[0].Keywords[0])
}

func TestStore_RecordsReturnsCopy(t *testing.T) {
	store := portfoliotest.Store()

	got := store.Records()
	got[0] = portfolio.Record{ID: 42}

	assert.Equal(t, int64(1), store.Records()[0].ID)
}

func TestNewStore_NilKeywordsBecomeEmpty(t *testing.T) {
	store := portfolio.NewStore([]portfolio.Record{{ID: 1, Category: "X", Title: "t"}})

	kw := store.Records()[0].Keywords
	require.NotNil(t, kw)
	assert.Empty(t, kw)
}

// ─── Search ──────────────────────────────────────────────────────────────────

func TestSearch_FixtureQueries(t *testing.T) {
	store := portfoliotest.Store()

	tests := []struct {
		query string
		want  []int64
	}{
		{"cloud", []int64{1, 6, 7}},
		{"devops", []int64{1, 2, 7}},
		{"python", []int64{5}},
		{"nonexistent", []int64{}},
		{"CLOUD", []int64{1, 6, 7}},
		{"social media", []int64{4}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			res := store.Search(tt.query, "", portfolio.DefaultSearchLimit)
			assert.Equal(t, tt.want, portfoliotest.IDs(res.Results))
			assert.Equal(t, len(res.Results), res.ResultsCount)
		})
	}
}

func TestSearch_EchoesOriginalQueryAndAll(t *testing.T) {
	res := portfoliotest.Store().Search("Cloud", "", 10)

	assert.Equal(t, "Cloud", res.Query)
	assert.Equal(t, "all", res.Category)
}

func TestSearch_EmptyQueryReturnsPrefix(t *testing.T) {
	store := portfoliotest.Store()

	for limit := 0; limit <= store.Len()+2; limit++ {
		res := store.Search("", "", limit)
		want := limit
		if want > store.Len() {
			want = store.Len()
		}
		assert.Equal(t, portfoliotest.IDs(store.Records()[:want]), portfoliotest.IDs(res.Results), "limit %d", limit)
	}
}

func TestSearch_ZeroAndNegativeLimit(t *testing.T) {
	store := portfoliotest.Store()

	for _, limit := range []int{0, -1, math.MinInt32} {
		res := store.Search("cloud", "", limit)
		assert.Empty(t, res.Results)
		assert.NotNil(t, res.Results)
		assert.Equal(t, 0, res.ResultsCount)
	}
}

func TestSearch_LimitTruncatesInStoreOrder(t *testing.T) {
	res := portfoliotest.Store().Search("cloud", "", 2)

	assert.Equal(t, []int64{1, 6}, portfoliotest.IDs(res.Results))
	assert.Equal(t, 2, res.ResultsCount)
}

func TestSearch_CategoryFilterIgnoresCase(t *testing.T) {
	store := portfoliotest.Store()

	tests := []struct {
		category string
		want     int
	}{
		{"Contact", 2},
		{"contact", 2},
		{"CONTACT", 2},
		{"Tech Stack", 2},
		{"tech stack", 2},
		{"Experience", 1},
		{"NonExistent", 0},
		{"Tech", 0}, // whole-string equality, not substring
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			res := store.Search("", tt.category, 10)
			assert.Len(t, res.Results, tt.want)
			assert.Equal(t, tt.category, res.Category)
			for _, r := range res.Results {
				assert.Equal(t, strings.ToLower(tt.category), strings.ToLower(r.Category))
			}
		})
	}
}

func TestSearch_CategoryAndQueryCombined(t *testing.T) {
	res := portfoliotest.Store().Search("cloud", "tech stack", 10)

	assert.Equal(t, []int64{6}, portfoliotest.IDs(res.Results))
}

func TestSearch_KeywordsAreJoinedWithSpaces(t *testing.T) {
	store := portfolio.NewStore([]portfolio.Record{
		{ID: 1, Category: "X", Title: "alpha", Description: "beta", Keywords: []string{"gamma", "delta"}},
	})

	assert.Len(t, store.Search("beta gamma", "", 10).Results, 1)
	assert.Len(t, store.Search("alpha beta", "", 10).Results, 1)
	assert.Empty(t, store.Search("betagamma", "", 10).Results)
}

func TestSearch_EmptyStore(t *testing.T) {
	res := portfolio.NewStore(nil).Search("", "", 10)

	assert.Equal(t, 0, res.ResultsCount)
	assert.NotNil(t, res.Results)
}

// ─── Categories ──────────────────────────────────────────────────────────────

func TestCategories_FirstOccurrenceOrder(t *testing.T) {
	res := portfoliotest.Store().Categories()

	assert.Equal(t, []string{
		"Profile Summary", "Current Position", "Contact", "Tech Stack", "Experience", "Education",
	}, res.Categories)
	assert.Equal(t, 8, res.TotalItems)
}

func TestCategories_CaseSensitiveDistinct(t *testing.T) {
	store := portfolio.NewStore([]portfolio.Record{
		{ID: 1, Category: "Tech Stack"},
		{ID: 2, Category: "TECH STACK"},
		{ID: 3, Category: "Tech Stack"},
	})

	res := store.Categories()
	assert.Equal(t, []string{"Tech Stack", "TECH STACK"}, res.Categories)
	assert.Equal(t, 3, res.TotalItems)
}

func TestCategories_EmptyStore(t *testing.T) {
	res := portfolio.NewStore(nil).Categories()

	assert.NotNil(t, res.Categories)
	assert.Empty(t, res.Categories)
	assert.Equal(t, 0, res.TotalItems)
}

// ─── Item ────────────────────────────────────────────────────────────────────

func TestItem_Found(t *testing.T) {
	rec, err := portfoliotest.Store().Item(3)

	require.NoError(t, err)
	assert.Equal(t, "Email", rec.Title)
	assert.Equal(t, "Contact", rec.Category)
}

func TestItem_NotFound(t *testing.T) {
	store := portfoliotest.Store()

	for _, id := range []int64{999, 0, -1, math.MaxInt64} {
		_, err := store.Item(id)
		require.Error(t, err)
		assert.True(t, errors.Is(err, portfolio.ErrNotFound))

		var nf *portfolio.NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, id, nf.ID)
	}
}

func TestItem_NotFoundMessage(t *testing.T) {
	_, err := portfoliotest.Store().Item(999)

	assert.EqualError(t, err, "Portfolio item with ID 999 not found")
}

func TestItem_EmptyStore(t *testing.T) {
	_, err := portfolio.NewStore(nil).Item(1)

	assert.ErrorIs(t, err, portfolio.ErrNotFound)
}

func TestItem_DuplicateIDReturnsFirst(t *testing.T) {
	store := portfolio.NewStore([]portfolio.Record{
		{ID: 1, Title: "first"},
		{ID: 1, Title: "second"},
	})

	rec, err := store.Item(1)
	require.NoError(t, err)
	assert.Equal(t, "first", rec.Title)
}

// ─── Contact ─────────────────────────────────────────────────────────────────

func TestContact_Fixture(t *testing.T) {
	res := portfoliotest.Store().Contact()

	assert.Equal(t, []int64{3, 4}, portfoliotest.IDs(res.Contact))
}

func TestContact_ExactCaseOnly(t *testing.T) {
	store := portfolio.NewStore([]portfolio.Record{
		{ID: 1, Category: "contact"},
		{ID: 2, Category: "Contact"},
		{ID: 3, Category: "CONTACT"},
	})

	assert.Equal(t, []int64{2}, portfoliotest.IDs(store.Contact().Contact))

	// search treats the same category filter case-insensitively
	assert.Len(t, store.Search("", "contact", 10).Results, 3)
}

func TestContact_EmptyStore(t *testing.T) {
	res := portfolio.NewStore(nil).Contact()

	assert.NotNil(t, res.Contact)
	assert.Empty(t, res.Contact)
}

// ─── TechStack ───────────────────────────────────────────────────────────────

func TestTechStack_All(t *testing.T) {
	res := portfoliotest.Store().TechStack("")

	assert.Equal(t, []int64{5, 6}, portfoliotest.IDs(res.TechStack))
	assert.Equal(t, "all", res.FilterType)
}

func TestTechStack_FilterByTitle(t *testing.T) {
	store := portfoliotest.Store()

	res := store.TechStack("cloud")
	require.Len(t, res.TechStack, 1)
	assert.Equal(t, "Cloud Platforms", res.TechStack[0].Title)
	assert.Equal(t, "cloud", res.FilterType)

	// description and keywords are not consulted
	assert.Empty(t, store.TechStack("aws").TechStack)
}

func TestTechStack_FilterIsSubsetOfAll(t *testing.T) {
	store := portfoliotest.Store()
	all := portfoliotest.IDs(store.TechStack("").TechStack)

	for _, typ := range []string{"cloud", "PROGRAMMING", "lang", "nothing", "a"} {
		for _, id := range portfoliotest.IDs(store.TechStack(typ).TechStack) {
			assert.Contains(t, all, id, "type %q", typ)
		}
	}
}

func TestTechStack_ExactCategoryCase(t *testing.T) {
	store := portfolio.NewStore([]portfolio.Record{
		{ID: 1, Category: "tech stack", Title: "Cloud"},
		{ID: 2, Category: "Tech Stack", Title: "Cloud"},
	})

	assert.Equal(t, []int64{2}, portfoliotest.IDs(store.TechStack("").TechStack))
}
