// ABOUTME: Prospect/activity synthesizer: derives pipeline records from existing accounts.
// ABOUTME: Deal value and probability follow a fixed status table; activity fields depend on status and type.

package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/2389/crmseed/internal/model"
)

// dealTerms bounds estimated value and probability for a prospect status.
// Equal probability bounds mean a fixed value.
type dealTerms struct {
	valueMin, valueMax int
	probMin, probMax   int
}

var dealTable = map[string]dealTerms{
	model.StatusClosedWon:     {10_000, 500_000, 100, 100},
	model.StatusNegotiation:   {10_000, 500_000, 70, 95},
	model.StatusProposal:      {10_000, 500_000, 50, 70},
	model.StatusOpportunity:   {5_000, 100_000, 30, 50},
	model.StatusQualifiedLead: {5_000, 100_000, 10, 30},
	model.StatusClosedLost:    {1_000, 50_000, 0, 0},
}

// defaultTerms covers Lead, On Hold and anything unlisted.
var defaultTerms = dealTerms{1_000, 50_000, 1, 10}

func termsFor(status string) dealTerms {
	if t, ok := dealTable[status]; ok {
		return t
	}
	return defaultTerms
}

const (
	prospectAgeDays     = 365
	prospectContactDays = 30
	recentActivityDays  = 7
	olderActivityDays   = 90
	scheduledAheadDays  = 30
	recentActivityCount = 2
	maxInterests        = 3
)

// Prospects derives prospects and their activities from the given accounts.
// Prospect and activity ids are sequential across the whole run.
func (g *Generator) Prospects(ctx context.Context, accounts []model.Account) ([]model.Prospect, []model.Activity, error) {
	var (
		prospects  = []model.Prospect{}
		activities = []model.Activity{}
		nextPros   = 1
		nextAct    = 1
	)

	for i := range accounts {
		if err := ctx.Err(); err != nil {
			return nil, nil, eris.Wrap(err, "seed: prospects")
		}
		acct := &accounts[i]
		if !acct.AccountID.Valid() {
			return nil, nil, eris.Errorf("seed: account %d has malformed id %q", i, acct.AccountID)
		}

		for n := between(g.src, MinProspects, MaxProspects); n > 0; n-- {
			p := g.Prospect(acct, model.FormatProspectID(nextPros))
			nextPros++
			prospects = append(prospects, p)

			for j, m := 0, between(g.src, MinActivities, MaxActivities); j < m; j++ {
				activities = append(activities, g.Activity(&p, model.FormatActivityID(nextAct), j))
				nextAct++
			}
		}
	}

	g.log.Debug("generated prospects",
		zap.Int("prospects", len(prospects)), zap.Int("activities", len(activities)))
	return prospects, activities, nil
}

// Prospect builds one prospect for acct, copying a random contact when the account has any.
func (g *Generator) Prospect(acct *model.Account, id model.ProspectID) model.Prospect {
	p := model.NewProspectFor(acct, id)

	if len(acct.Contacts) > 0 {
		c := pick(g.src, acct.Contacts)
		p.FirstName, p.LastName = c.FirstName, c.LastName
		p.Email, p.Phone, p.Title = c.Email, c.Phone, c.Title
	} else {
		p.FirstName = pick(g.src, fallbackFirstNames)
		p.LastName = pick(g.src, fallbackLastNames)
		p.Email = fmt.Sprintf("%s.%s@%s.com",
			strings.ToLower(p.FirstName), strings.ToLower(p.LastName), domainSlug(acct.CompanyName))
		p.Phone = g.phone()
		p.Title = pick(g.src, fallbackTitles)
	}

	p.Status = pick(g.src, prospectStatuses)
	terms := termsFor(p.Status)
	p.EstimatedValue = between(g.src, terms.valueMin, terms.valueMax)
	if terms.probMin == terms.probMax {
		p.Probability = terms.probMin
	} else {
		p.Probability = between(g.src, terms.probMin, terms.probMax)
	}

	p.Source = pick(g.src, prospectSources)
	p.CreatedDate = g.daysAgo(prospectAgeDays)
	p.LastContactDate = g.daysAgo(prospectContactDays)
	p.Interests = sample(g.src, prospectInterests, between(g.src, 1, maxInterests))
	p.AssignedTo = pick(g.src, agents)
	p.NextStep = pick(g.src, nextSteps)
	return p
}

// Activity builds the index-th activity for p. The first recentActivityCount
// activities fall within the last week; scheduled ones are always in the future.
func (g *Generator) Activity(p *model.Prospect, id model.ActivityID, index int) model.Activity {
	act := model.NewActivityFor(p, id)
	act.Type = pick(g.src, activityTypes)
	act.Status = pick(g.src, activityStatuses)

	switch {
	case act.Status == model.ActivityScheduled:
		act.Date = g.daysAhead(1, scheduledAheadDays)
	case index < recentActivityCount:
		act.Date = g.daysAgo(recentActivityDays)
	default:
		act.Date = g.daysAgo(olderActivityDays)
	}

	act.Description = fillProspect(pick(g.src, activityDescriptions[act.Type]), p.FirstName, act.Type, "")

	if act.Status == model.ActivityCompleted {
		outcome := pick(g.src, activityOutcomes)
		tmpl := pick(g.src, outcomeNotes[outcome])
		var choice string
		if len(tmpl.choices) > 0 {
			choice = pick(g.src, tmpl.choices)
		}
		notes := fillProspect(tmpl.text, p.FirstName, act.Type, choice)
		act.Outcome, act.Notes = &outcome, &notes
	}

	if act.Status == model.ActivityScheduled {
		t := fmt.Sprintf("%02d:%02d", between(g.src, 8, 17), pick(g.src, quarterHours))
		act.Time = &t
	}

	act.Priority = pick(g.src, activityPriorities)

	if timedActivityTypes[act.Type] {
		d := pick(g.src, durationsMinutes)
		act.DurationMinutes = &d
	}
	return act
}

func fillProspect(tmpl, firstName, activityType, choice string) string {
	return strings.NewReplacer(
		"{first_name}", firstName,
		"{activity}", strings.ToLower(activityType),
		"{choice}", choice,
	).Replace(tmpl)
}
