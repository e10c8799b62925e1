// ABOUTME: Tests for prospect derivation, the deal-status table, and activity field rules.
// ABOUTME: Runs the full pipeline on seeded accounts and checks every documented invariant.

package seed

import (
	"context"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/crmseed/internal/model"
)

func generatePipeline(t *testing.T, seed int64) ([]model.Account, []model.Prospect, []model.Activity) {
	t.Helper()
	g := testGenerator(seed)
	accounts, err := g.Accounts(context.Background())
	require.NoError(t, err)
	prospects, activities, err := g.Prospects(context.Background(), accounts)
	require.NoError(t, err)
	return accounts, prospects, activities
}

func TestTermsFor_Table(t *testing.T) {
	tests := []struct {
		status string
		want   dealTerms
	}{
		{model.StatusClosedWon, dealTerms{10_000, 500_000, 100, 100}},
		{model.StatusNegotiation, dealTerms{10_000, 500_000, 70, 95}},
		{model.StatusProposal, dealTerms{10_000, 500_000, 50, 70}},
		{model.StatusOpportunity, dealTerms{5_000, 100_000, 30, 50}},
		{model.StatusQualifiedLead, dealTerms{5_000, 100_000, 10, 30}},
		{model.StatusClosedLost, dealTerms{1_000, 50_000, 0, 0}},
		{model.StatusLead, dealTerms{1_000, 50_000, 1, 10}},
		{model.StatusOnHold, dealTerms{1_000, 50_000, 1, 10}},
		{"Something New", dealTerms{1_000, 50_000, 1, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, termsFor(tt.status))
		})
	}
}

func TestProspects_StatusConditionalValues(t *testing.T) {
	g := testGenerator(21)
	acct := &model.Account{AccountID: "ACC0001", CompanyName: "Elite Systems"}
	require.NoError(t, acct.AddContact(model.Contact{ContactID: "c1", FirstName: "Jane", LastName: "Doe"}))

	seen := map[string]bool{}
	for i := 1; i <= 2000; i++ {
		p := g.Prospect(acct, model.FormatProspectID(i))
		seen[p.Status] = true
		terms := termsFor(p.Status)

		assert.GreaterOrEqual(t, p.EstimatedValue, terms.valueMin, p.Status)
		assert.LessOrEqual(t, p.EstimatedValue, terms.valueMax, p.Status)

		switch p.Status {
		case model.StatusClosedWon:
			assert.Equal(t, 100, p.Probability)
		case model.StatusClosedLost:
			assert.Equal(t, 0, p.Probability)
		default:
			assert.GreaterOrEqual(t, p.Probability, terms.probMin, p.Status)
			assert.LessOrEqual(t, p.Probability, terms.probMax, p.Status)
		}

		assert.NotEmpty(t, p.Interests)
		assert.LessOrEqual(t, len(p.Interests), maxInterests)
	}
	assert.Len(t, seen, len(prospectStatuses), "every status should appear over 2000 draws")
}

func TestProspect_CopiesAccountContact(t *testing.T) {
	acct := &model.Account{AccountID: "ACC0002", CompanyName: "Tech Group"}
	require.NoError(t, acct.AddContact(model.Contact{
		ContactID: "c1", FirstName: "Linda", LastName: "Moore", Title: "CFO",
		Email: "linda.moore@techgroup.com", Phone: "+15551234567",
	}))

	p := testGenerator(4).Prospect(acct, "PROS0001")
	assert.Equal(t, model.AccountID("ACC0002"), p.AccountID)
	assert.Equal(t, "Linda", p.FirstName)
	assert.Equal(t, "Moore", p.LastName)
	assert.Equal(t, "CFO", p.Title)
	assert.Equal(t, "linda.moore@techgroup.com", p.Email)
	assert.Equal(t, "+15551234567", p.Phone)
}

func TestProspect_SynthesizesContactWhenAccountHasNone(t *testing.T) {
	acct := &model.Account{AccountID: "ACC0003", CompanyName: "Q-Consulting"}

	p := testGenerator(8).Prospect(acct, "PROS0001")
	assert.Contains(t, fallbackFirstNames, p.FirstName)
	assert.Contains(t, fallbackLastNames, p.LastName)
	assert.Contains(t, fallbackTitles, p.Title)
	assert.Regexp(t, regexp.MustCompile(`^[a-z]+\.[a-z]+@qconsulting\.com$`), p.Email)
	assert.NotEmpty(t, p.Phone)
}

func TestProspects_IDsAndLinks(t *testing.T) {
	accounts, prospects, activities := generatePipeline(t, 12)

	perAccount := map[model.AccountID]int{}
	for i, p := range prospects {
		assert.Equal(t, model.FormatProspectID(i+1), p.ProspectID)
		perAccount[p.AccountID]++
	}
	for _, a := range accounts {
		n := perAccount[a.AccountID]
		assert.GreaterOrEqual(t, n, MinProspects, a.AccountID)
		assert.LessOrEqual(t, n, MaxProspects, a.AccountID)
	}

	owner := map[model.ProspectID]model.Prospect{}
	for _, p := range prospects {
		owner[p.ProspectID] = p
	}
	perProspect := map[model.ProspectID]int{}
	for i, act := range activities {
		assert.Equal(t, model.FormatActivityID(i+1), act.ActivityID)
		p, ok := owner[act.ProspectID]
		require.True(t, ok, "activity %s has unknown prospect", act.ActivityID)
		assert.Equal(t, p.AccountID, act.AccountID)
		assert.Equal(t, p.AssignedTo, act.AssignedTo)
		perProspect[act.ProspectID]++
	}
	for _, p := range prospects {
		n := perProspect[p.ProspectID]
		assert.GreaterOrEqual(t, n, MinActivities, p.ProspectID)
		assert.LessOrEqual(t, n, MaxActivities, p.ProspectID)
	}

	ds := model.Dataset{Accounts: accounts, Prospects: prospects, Activities: activities}
	assert.NoError(t, ds.Validate())
}

func TestActivities_StatusDependentFields(t *testing.T) {
	_, _, activities := generatePipeline(t, 30)
	timePattern := regexp.MustCompile(`^(0[89]|1[0-7]):(00|15|30|45)$`)
	today := time.Date(fixedNow.Year(), fixedNow.Month(), fixedNow.Day(), 0, 0, 0, 0, time.UTC)

	var completed, scheduled int
	for _, act := range activities {
		switch act.Status {
		case model.ActivityCompleted:
			completed++
			require.NotNil(t, act.Outcome, act.ActivityID)
			require.NotNil(t, act.Notes, act.ActivityID)
			assert.Contains(t, activityOutcomes, *act.Outcome)
			assert.NotEmpty(t, *act.Notes)
			assert.NotContains(t, *act.Notes, "{")
		default:
			assert.Nil(t, act.Outcome, act.ActivityID)
			assert.Nil(t, act.Notes, act.ActivityID)
		}

		if act.Status == model.ActivityScheduled {
			scheduled++
			require.NotNil(t, act.Time, act.ActivityID)
			assert.Regexp(t, timePattern, *act.Time)
			d := mustParseDate(t, act.Date)
			assert.True(t, d.After(today), "scheduled %s on %s is not in the future", act.ActivityID, act.Date)
			assert.LessOrEqual(t, daysBetween(today, d), scheduledAheadDays)
		} else {
			assert.Nil(t, act.Time, act.ActivityID)
			assert.False(t, mustParseDate(t, act.Date).After(fixedNow), "%s dated in the future", act.ActivityID)
		}

		if timedActivityTypes[act.Type] {
			require.NotNil(t, act.DurationMinutes, act.ActivityID)
			assert.Contains(t, durationsMinutes, *act.DurationMinutes)
		} else {
			assert.Nil(t, act.DurationMinutes, act.ActivityID)
		}

		assert.Contains(t, activityPriorities, act.Priority)
		assert.NotContains(t, act.Description, "{")
	}
	assert.Positive(t, completed)
	assert.Positive(t, scheduled)
}

func TestActivity_RecencyByIndex(t *testing.T) {
	g := testGenerator(77)
	p := &model.Prospect{ProspectID: "PROS0001", AccountID: "ACC0001", FirstName: "Sarah"}

	for i := 0; i < 500; i++ {
		index := i % 6
		act := g.Activity(p, model.FormatActivityID(i+1), index)
		if act.Status == model.ActivityScheduled {
			continue
		}
		age := daysBetween(mustParseDate(t, act.Date), fixedNow)
		if index < recentActivityCount {
			assert.LessOrEqual(t, age, recentActivityDays, "index %d", index)
		} else {
			assert.LessOrEqual(t, age, olderActivityDays, "index %d", index)
		}
	}
}

func TestActivity_DescriptionMentionsProspect(t *testing.T) {
	g := NewGenerator(WithSource(rand.New(rand.NewSource(9))))
	p := &model.Prospect{ProspectID: "PROS0001", AccountID: "ACC0001", FirstName: "Thomas"}
	for i := 0; i < 50; i++ {
		act := g.Activity(p, model.FormatActivityID(i+1), i)
		assert.Contains(t, act.Description, "Thomas")
	}
}

func TestFillProspect(t *testing.T) {
	got := fillProspect("Difficult {activity} with {first_name} about {choice}.", "Karen", "Demo", "pricing")
	assert.Equal(t, "Difficult demo with Karen about pricing.", got)
}

func TestProspects_RejectsMalformedAccountID(t *testing.T) {
	_, _, err := testGenerator(1).Prospects(context.Background(), []model.Account{{AccountID: "nope"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed id")
}

func TestPipeline_EndToEndFiftyAccounts(t *testing.T) {
	accounts, prospects, activities := generatePipeline(t, 2024)
	require.Len(t, accounts, AccountCount)

	sum := 0
	for _, a := range accounts {
		sum += len((&model.Dataset{Prospects: prospects}).ProspectsFor(a.AccountID))
	}
	assert.Equal(t, len(prospects), sum)

	byID := map[model.ProspectID]model.AccountID{}
	for _, p := range prospects {
		byID[p.ProspectID] = p.AccountID
	}
	for _, act := range activities {
		assert.Equal(t, byID[act.ProspectID], act.AccountID)
	}
}
