// ABOUTME: Account synthesizer: companies with addresses, contacts, and templated notes.
// ABOUTME: Produces exactly AccountCount accounts with sequential ACC ids.

package seed

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/2389/crmseed/internal/model"
)

// Revenue tiers; a tier is picked first, then an amount inside it.
var revenueTiers = [][2]int{
	{10_000, 999_999},
	{1_000_000, 9_999_999},
	{10_000_000, 999_999_999},
}

const (
	companyEmailShare  = 0.7
	accountAgeDays     = 1825
	accountContactDays = 90
	noteWindowDays     = 365
	noteWindowStep     = 60
)

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// Accounts generates the full account set.
func (g *Generator) Accounts(ctx context.Context) ([]model.Account, error) {
	accounts := make([]model.Account, 0, AccountCount)
	for i := 1; i <= AccountCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "seed: accounts")
		}
		acct, err := g.Account(ctx, model.FormatAccountID(i))
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acct)
	}
	g.log.Debug("generated accounts", zap.Int("count", len(accounts)))
	return accounts, nil
}

// Account generates one account with its embedded contacts and notes.
func (g *Generator) Account(ctx context.Context, id model.AccountID) (model.Account, error) {
	name := g.companyName()
	slug := domainSlug(name)

	acct := model.Account{
		AccountID:   id,
		CompanyName: name,
		Industry:    pick(g.src, industries),
		CompanyType: pick(g.src, companyTypes),
		Address:     g.address(),
		Contacts:    []model.Contact{},
		Notes:       []model.Note{},
	}

	for i, n := 0, between(g.src, MinContacts, MaxContacts); i < n; i++ {
		if err := acct.AddContact(g.contact(slug)); err != nil {
			return model.Account{}, eris.Wrap(err, "seed: add contact")
		}
	}

	for i, n := 0, between(g.src, MinNotes, MaxNotes); i < n; i++ {
		note := g.note(ctx, &acct, i)
		if err := acct.AddNote(note); err != nil {
			return model.Account{}, eris.Wrap(err, "seed: add note")
		}
	}

	acct.AnnualRevenue = g.revenue()
	acct.EmployeeCount = between(g.src, 5, 10_000)
	acct.Website = "https://www." + slug + ".com"
	acct.Phone = g.phone()
	acct.Email = "info@" + slug + ".com"
	acct.Status = pick(g.src, accountStatuses)
	acct.CreatedDate = g.daysAgo(accountAgeDays)
	acct.LastContactDate = g.daysAgo(accountContactDays)
	acct.AccountOwner = pick(g.src, agents)

	return acct, nil
}

func (g *Generator) companyName() string {
	switch g.src.Intn(4) {
	case 0:
		return pick(g.src, companyPrefixes) + " " + pick(g.src, companySuffixes)
	case 1:
		return pick(g.src, companyPrefixes) + " " + pick(g.src, companyDescriptors) + " " + pick(g.src, companySuffixes)
	case 2:
		return pick(g.src, companyPrefixes) + pick(g.src, companySuffixes)
	default:
		return pick(g.src, letters) + "-" + pick(g.src, companyDescriptors)
	}
}

// domainSlug turns a company name into the host part of its domain.
func domainSlug(company string) string {
	s := strings.ToLower(company)
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "-", "")
}

func (g *Generator) address() model.Address {
	country := pick(g.src, countries)

	var state, city string
	if country == "United States" {
		state = pick(g.src, statesUS)
		city = pick(g.src, citiesUS)
	} else {
		city = country + " City"
	}

	return model.Address{
		Street:  fmt.Sprintf("%d %s %s", between(g.src, 1, 9999), pick(g.src, streetNames), pick(g.src, streetSuffixes)),
		City:    city,
		State:   state,
		Zip:     strconv.Itoa(between(g.src, 10000, 99999)),
		Country: country,
	}
}

func (g *Generator) phone() string {
	return fmt.Sprintf("+%d%d%d%d",
		between(g.src, 1, 9), between(g.src, 100, 999), between(g.src, 100, 999), between(g.src, 1000, 9999))
}

func (g *Generator) revenue() int {
	tier := pick(g.src, revenueTiers)
	return between(g.src, tier[0], tier[1])
}

func (g *Generator) contact(slug string) model.Contact {
	return model.Contact{
		ContactID: model.ContactID(newUUID(g.src)),
		FirstName: pick(g.src, firstNames),
		LastName:  pick(g.src, lastNames),
		Title:     pick(g.src, titles),
		Email:     g.contactEmail(slug),
		Phone:     g.phone(),
	}
}

// contactEmail uses the company domain 70% of the time and a public mailbox otherwise.
func (g *Generator) contactEmail(slug string) string {
	domain := slug + ".com"
	if !chance(g.src, companyEmailShare) {
		domain = pick(g.src, publicEmailDomains)
	}

	first := strings.ToLower(pick(g.src, firstNames))
	last := strings.ToLower(pick(g.src, lastNames))
	var local string
	switch g.src.Intn(7) {
	case 0:
		local = first + "." + last
	case 1:
		local = first + last
	case 2:
		local = first[:1] + last
	case 3:
		local = "info"
	case 4:
		local = "sales"
	case 5:
		local = "support"
	default:
		local = "contact"
	}
	return local + "@" + domain
}

// note builds the index-th note. Later indexes get a shorter look-back window,
// so earlier notes spread over the full year and later ones cluster nearer today.
func (g *Generator) note(ctx context.Context, acct *model.Account, index int) model.Note {
	contact := pick(g.src, acct.Contacts)
	date := g.daysAgo(noteWindowDays - index*noteWindowStep)
	content := g.fillNote(pick(g.src, noteTemplates), contact)

	if g.notes != nil {
		rewritten, err := g.notes.Rewrite(ctx, acct, content)
		if err != nil {
			g.log.Warn("note rewrite failed, keeping template text",
				zap.String("account_id", string(acct.AccountID)), zap.Error(err))
		} else if rewritten != "" {
			content = rewritten
		}
	}

	return model.Note{
		NoteID:         model.NoteID(newUUID(g.src)),
		Date:           date,
		Author:         pick(g.src, agents),
		Content:        content,
		RelatedContact: contact.ContactID,
	}
}

// fillNote substitutes a fresh random value for every placeholder in tmpl.
func (g *Generator) fillNote(tmpl string, contact model.Contact) string {
	return placeholderPattern.ReplaceAllStringFunc(tmpl, func(m string) string {
		key := m[1 : len(m)-1]
		switch key {
		case "contact_name":
			return contact.FullName()
		case "days":
			return strconv.Itoa(between(g.src, 3, 30))
		case "date":
			return g.daysAhead(30, 365)
		}
		if words, ok := noteVocab[key]; ok {
			return pick(g.src, words)
		}
		return m
	})
}
