// ABOUTME: Dataset bundles accounts, prospects, and activities from one generation run.
// ABOUTME: Validate checks every cross-record reference structurally.

package model

import (
	"errors"

	"github.com/rotisserie/eris"
)

// ErrBrokenReference is returned when a record points at something that does not exist.
var ErrBrokenReference = eris.New("broken reference")

// Dataset is the output of one generation run.
type Dataset struct {
	Accounts   []Account
	Prospects  []Prospect
	Activities []Activity
}

// Account returns the account with the given id.
func (d *Dataset) Account(id AccountID) (*Account, bool) {
	for i := range d.Accounts {
		if d.Accounts[i].AccountID == id {
			return &d.Accounts[i], true
		}
	}
	return nil, false
}

// Prospect returns the prospect with the given id.
func (d *Dataset) Prospect(id ProspectID) (*Prospect, bool) {
	for i := range d.Prospects {
		if d.Prospects[i].ProspectID == id {
			return &d.Prospects[i], true
		}
	}
	return nil, false
}

// ProspectsFor returns the prospects linked to an account, in generation order.
func (d *Dataset) ProspectsFor(id AccountID) []Prospect {
	out := []Prospect{}
	for _, p := range d.Prospects {
		if p.AccountID == id {
			out = append(out, p)
		}
	}
	return out
}

// ActivitiesForProspect returns the activities linked to a prospect.
func (d *Dataset) ActivitiesForProspect(id ProspectID) []Activity {
	out := []Activity{}
	for _, a := range d.Activities {
		if a.ProspectID == id {
			out = append(out, a)
		}
	}
	return out
}

// ActivitiesForAccount returns the activities linked to an account across all its prospects.
func (d *Dataset) ActivitiesForAccount(id AccountID) []Activity {
	out := []Activity{}
	for _, a := range d.Activities {
		if a.AccountID == id {
			out = append(out, a)
		}
	}
	return out
}

// Validate reports every id collision and dangling reference in the dataset.
// A nil return means the dataset is referentially sound.
func (d *Dataset) Validate() error {
	var errs []error

	accounts := make(map[AccountID]bool, len(d.Accounts))
	for i := range d.Accounts {
		a := &d.Accounts[i]
		if accounts[a.AccountID] {
			errs = append(errs, eris.Wrapf(ErrDuplicateID, "account %s", a.AccountID))
		}
		accounts[a.AccountID] = true
		errs = append(errs, validateAccount(a)...)
	}

	prospects := make(map[ProspectID]AccountID, len(d.Prospects))
	for _, p := range d.Prospects {
		if _, dup := prospects[p.ProspectID]; dup {
			errs = append(errs, eris.Wrapf(ErrDuplicateID, "prospect %s", p.ProspectID))
		}
		prospects[p.ProspectID] = p.AccountID
		if !accounts[p.AccountID] {
			errs = append(errs, eris.Wrapf(ErrBrokenReference, "prospect %s: account %s", p.ProspectID, p.AccountID))
		}
	}

	activities := make(map[ActivityID]bool, len(d.Activities))
	for _, act := range d.Activities {
		if activities[act.ActivityID] {
			errs = append(errs, eris.Wrapf(ErrDuplicateID, "activity %s", act.ActivityID))
		}
		activities[act.ActivityID] = true

		owner, ok := prospects[act.ProspectID]
		switch {
		case !ok:
			errs = append(errs, eris.Wrapf(ErrBrokenReference, "activity %s: prospect %s", act.ActivityID, act.ProspectID))
		case owner != act.AccountID:
			errs = append(errs, eris.Wrapf(ErrBrokenReference, "activity %s: account %s, prospect %s belongs to %s",
				act.ActivityID, act.AccountID, act.ProspectID, owner))
		}
	}

	return errors.Join(errs...)
}

func validateAccount(a *Account) []error {
	var errs []error

	contacts := make(map[ContactID]bool, len(a.Contacts))
	primaries := 0
	for i, c := range a.Contacts {
		if contacts[c.ContactID] {
			errs = append(errs, eris.Wrapf(ErrDuplicateID, "account %s: contact %s", a.AccountID, c.ContactID))
		}
		contacts[c.ContactID] = true
		if c.Primary {
			primaries++
			if i != 0 {
				errs = append(errs, eris.Errorf("account %s: primary contact %s is not the first contact", a.AccountID, c.ContactID))
			}
		}
	}
	if len(a.Contacts) > 0 && primaries != 1 {
		errs = append(errs, eris.Errorf("account %s: %d primary contacts, want 1", a.AccountID, primaries))
	}

	for _, n := range a.Notes {
		if !contacts[n.RelatedContact] {
			errs = append(errs, eris.Wrapf(ErrUnknownContact, "account %s: note %s references %q", a.AccountID, n.NoteID, n.RelatedContact))
		}
	}
	return errs
}
