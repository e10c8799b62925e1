// ABOUTME: Account, Contact, and Note records with their embedded relationships.
// ABOUTME: AddContact and AddNote enforce the primary-contact and note-reference invariants.

package model

import (
	"github.com/rotisserie/eris"
)

var (
	// ErrUnknownContact is returned when a note references a contact its account does not own.
	ErrUnknownContact = eris.New("contact does not belong to account")
	// ErrDuplicateID is returned when an id is reused within its scope.
	ErrDuplicateID = eris.New("duplicate id")
)

// Address is a postal address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// Contact is a person at an account. The first contact added is the primary one.
type Contact struct {
	ContactID ContactID `json:"contact_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Title     string    `json:"title"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Primary   bool      `json:"primary"`
}

// FullName returns "First Last".
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Note is a dated remark on an account, tied to one of its contacts.
type Note struct {
	NoteID         NoteID    `json:"note_id"`
	Date           string    `json:"date"`
	Author         string    `json:"author"`
	Content        string    `json:"content"`
	RelatedContact ContactID `json:"related_contact"`
}

// Account is a company record. Contacts and notes are embedded, not referenced.
type Account struct {
	AccountID       AccountID `json:"account_id"`
	CompanyName     string    `json:"company_name"`
	Industry        string    `json:"industry"`
	CompanyType     string    `json:"company_type"`
	AnnualRevenue   int       `json:"annual_revenue"`
	EmployeeCount   int       `json:"employee_count"`
	Website         string    `json:"website"`
	Address         Address   `json:"address"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	Status          string    `json:"status"`
	CreatedDate     string    `json:"created_date"`
	LastContactDate string    `json:"last_contact_date"`
	AccountOwner    string    `json:"account_owner"`
	Contacts        []Contact `json:"contacts"`
	Notes           []Note    `json:"notes"`
}

// AddContact appends c, marking it primary only if it is the account's first contact.
func (a *Account) AddContact(c Contact) error {
	if _, ok := a.Contact(c.ContactID); ok {
		return eris.Wrapf(ErrDuplicateID, "account %s: contact %s", a.AccountID, c.ContactID)
	}
	c.Primary = len(a.Contacts) == 0
	a.Contacts = append(a.Contacts, c)
	return nil
}

// AddNote appends n after checking that its related contact belongs to this account.
func (a *Account) AddNote(n Note) error {
	if _, ok := a.Contact(n.RelatedContact); !ok {
		return eris.Wrapf(ErrUnknownContact, "account %s: note %s references %q", a.AccountID, n.NoteID, n.RelatedContact)
	}
	a.Notes = append(a.Notes, n)
	return nil
}

// Contact looks up one of the account's contacts by id.
func (a *Account) Contact(id ContactID) (Contact, bool) {
	for _, c := range a.Contacts {
		if c.ContactID == id {
			return c, true
		}
	}
	return Contact{}, false
}
