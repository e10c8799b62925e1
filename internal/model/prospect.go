// ABOUTME: Prospect and Activity records for the sales pipeline.
// ABOUTME: Constructors stamp back-references from the parent record so links cannot drift.

package model

// Prospect statuses.
const (
	StatusLead          = "Lead"
	StatusQualifiedLead = "Qualified Lead"
	StatusOpportunity   = "Opportunity"
	StatusProposal      = "Proposal"
	StatusNegotiation   = "Negotiation"
	StatusClosedWon     = "Closed Won"
	StatusClosedLost    = "Closed Lost"
	StatusOnHold        = "On Hold"
)

// Activity statuses.
const (
	ActivityCompleted  = "Completed"
	ActivityScheduled  = "Scheduled"
	ActivityCancelled  = "Cancelled"
	ActivityPostponed  = "Postponed"
	ActivityInProgress = "In Progress"
	ActivityPending    = "Pending"
)

// Prospect is a person at an account being worked through the sales pipeline.
type Prospect struct {
	ProspectID      ProspectID `json:"prospect_id"`
	AccountID       AccountID  `json:"account_id"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Title           string     `json:"title"`
	Status          string     `json:"status"`
	Source          string     `json:"source"`
	CreatedDate     string     `json:"created_date"`
	LastContactDate string     `json:"last_contact_date"`
	EstimatedValue  int        `json:"estimated_value"`
	Probability     int        `json:"probability"`
	Interests       []string   `json:"interests"`
	AssignedTo      string     `json:"assigned_to"`
	NextStep        string     `json:"next_step"`
}

// NewProspectFor starts a prospect linked to the given account.
func NewProspectFor(a *Account, id ProspectID) Prospect {
	return Prospect{ProspectID: id, AccountID: a.AccountID}
}

// Activity is a dated interaction with a prospect. Time, Outcome, Notes and
// DurationMinutes are nil when they do not apply and serialize as null.
type Activity struct {
	ActivityID      ActivityID `json:"activity_id"`
	ProspectID      ProspectID `json:"prospect_id"`
	AccountID       AccountID  `json:"account_id"`
	Type            string     `json:"type"`
	Description     string     `json:"description"`
	Date            string     `json:"date"`
	Time            *string    `json:"time"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	AssignedTo      string     `json:"assigned_to"`
	Outcome         *string    `json:"outcome"`
	Notes           *string    `json:"notes"`
	DurationMinutes *int       `json:"duration_minutes"`
}

// NewActivityFor starts an activity linked to the prospect and the prospect's account.
func NewActivityFor(p *Prospect, id ActivityID) Activity {
	return Activity{
		ActivityID: id,
		ProspectID: p.ProspectID,
		AccountID:  p.AccountID,
		AssignedTo: p.AssignedTo,
	}
}
