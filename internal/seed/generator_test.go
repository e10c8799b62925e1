// ABOUTME: Tests for the account and prospect/activity synthesizers.
// ABOUTME: Uses fixed seeds and a fixed clock so every property is checked on reproducible data.

package seed

import (
	"context"
	"errors"
	"math/rand"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/crmseed/internal/model"
)

var fixedNow = time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC)

func testGenerator(seed int64, opts ...Option) *Generator {
	base := []Option{
		WithSource(rand.New(rand.NewSource(seed))),
		WithClock(func() time.Time { return fixedNow }),
	}
	return NewGenerator(append(base, opts...)...)
}

func mustParseDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	require.NoError(t, err, "date %q", s)
	return d
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// scriptedSource replays fixed values so tests can assert exact outputs.
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) Intn(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		panic("scripted value out of range")
	}
	return v
}

func (s *scriptedSource) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestScriptedSource_ExactChoices(t *testing.T) {
	g := NewGenerator(WithSource(&scriptedSource{ints: []int{0, 2, 3}}))
	assert.Equal(t, "Advanced Industries", g.companyName())

	g = NewGenerator(WithSource(&scriptedSource{ints: []int{3, 25, 4}}))
	assert.Equal(t, "Z-Analytics", g.companyName())

	g = NewGenerator(WithSource(&scriptedSource{ints: []int{1, 0}}))
	assert.Equal(t, 1_000_000, g.revenue())

	g = NewGenerator(WithSource(&scriptedSource{ints: []int{2, 0, 0, 2}, floats: []float64{0.9}}))
	assert.Equal(t, "jsmith@outlook.com", g.contactEmail("acme"))

	g = NewGenerator(WithSource(&scriptedSource{ints: []int{0, 0, 6}, floats: []float64{0.1}}))
	assert.Equal(t, "contact@acme.com", g.contactEmail("acme"))
}

func TestAccounts_CountAndIDs(t *testing.T) {
	accounts, err := testGenerator(1).Accounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, AccountCount)

	seen := map[model.AccountID]bool{}
	pattern := regexp.MustCompile(`^ACC\d{4}$`)
	for i, a := range accounts {
		assert.Regexp(t, pattern, string(a.AccountID))
		assert.Equal(t, model.FormatAccountID(i+1), a.AccountID)
		assert.False(t, seen[a.AccountID], "duplicate %s", a.AccountID)
		seen[a.AccountID] = true
	}
}

func TestAccounts_ContactsAndNotesInvariants(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 99} {
		accounts, err := testGenerator(seed).Accounts(context.Background())
		require.NoError(t, err)

		for _, a := range accounts {
			require.GreaterOrEqual(t, len(a.Contacts), MinContacts)
			require.LessOrEqual(t, len(a.Contacts), MaxContacts)
			assert.LessOrEqual(t, len(a.Notes), MaxNotes)

			primaries := 0
			ids := map[model.ContactID]bool{}
			for i, c := range a.Contacts {
				if c.Primary {
					primaries++
					assert.Equal(t, 0, i, "%s: primary contact must be first", a.AccountID)
				}
				ids[c.ContactID] = true
				assert.Contains(t, c.Email, "@")
			}
			assert.Equal(t, 1, primaries, "%s primary count", a.AccountID)

			for i, n := range a.Notes {
				assert.True(t, ids[n.RelatedContact], "%s: note %s references foreign contact", a.AccountID, n.NoteID)
				age := daysBetween(mustParseDate(t, n.Date), fixedNow)
				assert.GreaterOrEqual(t, age, 0)
				assert.LessOrEqual(t, age, noteWindowDays-i*noteWindowStep, "note %d too old", i)
				assert.NotContains(t, n.Content, "{")
				assert.Contains(t, agents, n.Author)
			}
		}
	}
}

func TestAccounts_FieldShapes(t *testing.T) {
	accounts, err := testGenerator(7).Accounts(context.Background())
	require.NoError(t, err)

	phone := regexp.MustCompile(`^\+[1-9]\d{3}\d{3}\d{4}$`)
	for _, a := range accounts {
		slug := domainSlug(a.CompanyName)
		assert.Equal(t, "https://www."+slug+".com", a.Website)
		assert.Equal(t, "info@"+slug+".com", a.Email)
		assert.Regexp(t, phone, a.Phone)
		assert.GreaterOrEqual(t, a.EmployeeCount, 5)
		assert.LessOrEqual(t, a.EmployeeCount, 10_000)

		inTier := false
		for _, tier := range revenueTiers {
			if a.AnnualRevenue >= tier[0] && a.AnnualRevenue <= tier[1] {
				inTier = true
			}
		}
		assert.True(t, inTier, "revenue %d outside every tier", a.AnnualRevenue)

		if a.Address.Country == "United States" {
			assert.Contains(t, statesUS, a.Address.State)
			assert.Contains(t, citiesUS, a.Address.City)
		} else {
			assert.Empty(t, a.Address.State)
			assert.Equal(t, a.Address.Country+" City", a.Address.City)
		}
		assert.Len(t, a.Address.Zip, 5)

		assert.LessOrEqual(t, daysBetween(mustParseDate(t, a.CreatedDate), fixedNow), accountAgeDays)
		assert.LessOrEqual(t, daysBetween(mustParseDate(t, a.LastContactDate), fixedNow), accountContactDays)
	}
}

func TestAccounts_DeterministicForSeed(t *testing.T) {
	a1, err := testGenerator(42).Accounts(context.Background())
	require.NoError(t, err)
	a2, err := testGenerator(42).Accounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a1, a2)

	a3, err := testGenerator(43).Accounts(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, a1, a3)
}

func TestAccounts_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testGenerator(1).Accounts(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFillNote_FillsEveryPlaceholder(t *testing.T) {
	g := testGenerator(5)
	contact := model.Contact{FirstName: "Mary", LastName: "Lopez"}
	for _, tmpl := range noteTemplates {
		out := g.fillNote(tmpl, contact)
		assert.NotContains(t, out, "{", "unfilled placeholder in %q", out)
		assert.Contains(t, out, "Mary Lopez")
	}
}

type upperWriter struct{ calls int }

func (w *upperWriter) Rewrite(_ context.Context, _ *model.Account, draft string) (string, error) {
	w.calls++
	return strings.ToUpper(draft), nil
}

type failingWriter struct{}

func (failingWriter) Rewrite(context.Context, *model.Account, string) (string, error) {
	return "", errors.New("quota exceeded")
}

func TestAccounts_NoteWriter(t *testing.T) {
	w := &upperWriter{}
	accounts, err := testGenerator(3, WithNoteWriter(w)).Accounts(context.Background())
	require.NoError(t, err)

	notes := 0
	for _, a := range accounts {
		for _, n := range a.Notes {
			notes++
			assert.Equal(t, strings.ToUpper(n.Content), n.Content)
		}
	}
	assert.Equal(t, notes, w.calls)
}

func TestAccounts_NoteWriterFailureKeepsTemplate(t *testing.T) {
	plain, err := testGenerator(3).Accounts(context.Background())
	require.NoError(t, err)
	fallback, err := testGenerator(3, WithNoteWriter(failingWriter{})).Accounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, plain, fallback)
}

func TestSample_DistinctItems(t *testing.T) {
	src := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		k := between(src, 1, 3)
		got := sample(src, prospectInterests, k)
		require.Len(t, got, k)
		seen := map[string]bool{}
		for _, s := range got {
			assert.False(t, seen[s], "duplicate interest %q", s)
			seen[s] = true
		}
	}
	assert.Len(t, sample(src, []int{1, 2}, 5), 2)
}

func TestBetween_Inclusive(t *testing.T) {
	src := rand.New(rand.NewSource(3))
	sawLo, sawHi := false, false
	for i := 0; i < 500; i++ {
		v := between(src, 1, 3)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 3)
		sawLo = sawLo || v == 1
		sawHi = sawHi || v == 3
	}
	assert.True(t, sawLo)
	assert.True(t, sawHi)
}
