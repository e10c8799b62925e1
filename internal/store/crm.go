// ABOUTME: Bulk import of a generated dataset into the SQLite tables.
// ABOUTME: Runs in one transaction so a failed export leaves the database untouched.

package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/rotisserie/eris"

	"github.com/2389/crmseed/internal/model"
)

// Tables lists the CRM tables in dependency order.
var Tables = []string{"accounts", "contacts", "notes", "prospects", "activities"}

// Import inserts every record of ds. Foreign keys are enforced, so a dataset
// with dangling references is rejected as a whole.
func (s *Store) Import(ctx context.Context, ds *model.Dataset) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "store: begin import")
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for i := range ds.Accounts {
		if err = insertAccount(ctx, tx, &ds.Accounts[i]); err != nil {
			return err
		}
	}
	for i := range ds.Prospects {
		if err = insertProspect(ctx, tx, &ds.Prospects[i]); err != nil {
			return err
		}
	}
	for i := range ds.Activities {
		if err = insertActivity(ctx, tx, &ds.Activities[i]); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return eris.Wrap(err, "store: commit import")
	}
	return nil
}

func insertAccount(ctx context.Context, tx *sql.Tx, a *model.Account) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO accounts (account_id, company_name, industry, company_type, annual_revenue, employee_count,
			website, street, city, state, zip, country, phone, email, status, created_date, last_contact_date, account_owner)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, a.AccountID, a.CompanyName, a.Industry, a.CompanyType, a.AnnualRevenue, a.EmployeeCount,
		a.Website, a.Address.Street, a.Address.City, a.Address.State, a.Address.Zip, a.Address.Country,
		a.Phone, a.Email, a.Status, a.CreatedDate, a.LastContactDate, a.AccountOwner)
	if err != nil {
		return eris.Wrapf(err, "store: insert account %s", a.AccountID)
	}

	for _, c := range a.Contacts {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO contacts (contact_id, account_id, first_name, last_name, title, email, phone, is_primary)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, c.ContactID, a.AccountID, c.FirstName, c.LastName, c.Title, c.Email, c.Phone, c.Primary)
		if err != nil {
			return eris.Wrapf(err, "store: insert contact %s", c.ContactID)
		}
	}

	for _, n := range a.Notes {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO notes (note_id, account_id, related_contact, date, author, content)
			VALUES (?, ?, ?, ?, ?, ?)
		`, n.NoteID, a.AccountID, n.RelatedContact, n.Date, n.Author, n.Content)
		if err != nil {
			return eris.Wrapf(err, "store: insert note %s", n.NoteID)
		}
	}
	return nil
}

func insertProspect(ctx context.Context, tx *sql.Tx, p *model.Prospect) error {
	interests, err := json.Marshal(p.Interests)
	if err != nil {
		return eris.Wrapf(err, "store: encode interests for %s", p.ProspectID)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO prospects (prospect_id, account_id, first_name, last_name, email, phone, title, status, source,
			created_date, last_contact_date, estimated_value, probability, interests, assigned_to, next_step)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ProspectID, p.AccountID, p.FirstName, p.LastName, p.Email, p.Phone, p.Title, p.Status, p.Source,
		p.CreatedDate, p.LastContactDate, p.EstimatedValue, p.Probability, string(interests), p.AssignedTo, p.NextStep)
	if err != nil {
		return eris.Wrapf(err, "store: insert prospect %s", p.ProspectID)
	}
	return nil
}

func insertActivity(ctx context.Context, tx *sql.Tx, a *model.Activity) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO activities (activity_id, prospect_id, account_id, type, description, date, time, status,
			priority, assigned_to, outcome, notes, duration_minutes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, a.ActivityID, a.ProspectID, a.AccountID, a.Type, a.Description, a.Date, a.Time, a.Status,
		a.Priority, a.AssignedTo, a.Outcome, a.Notes, a.DurationMinutes)
	if err != nil {
		return eris.Wrapf(err, "store: insert activity %s", a.ActivityID)
	}
	return nil
}

// Counts returns the number of rows in each CRM table.
func (s *Store) Counts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(Tables))
	for _, table := range Tables {
		var n int
		// table names come from the fixed Tables list
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return nil, eris.Wrapf(err, "store: count %s", table)
		}
		counts[table] = n
	}
	return counts, nil
}

// ProspectStatusCounts returns how many prospects sit in each pipeline status.
func (s *Store) ProspectStatusCounts(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM prospects GROUP BY status`)
	if err != nil {
		return nil, eris.Wrap(err, "store: prospect status counts")
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, eris.Wrap(err, "store: scan status count")
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// AccountSummary is one row of an account search. PrimaryContact is empty
// for accounts without contacts.
type AccountSummary struct {
	AccountID      string
	CompanyName    string
	Industry       string
	PrimaryContact string
}

// SearchAccounts finds accounts whose company name contains q, ignoring case.
// Wildcards in q match literally.
func (s *Store) SearchAccounts(ctx context.Context, q string) ([]AccountSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.account_id, a.company_name, a.industry,
			COALESCE(c.first_name || ' ' || c.last_name, '')
		FROM accounts a
		LEFT JOIN contacts c ON c.account_id = a.account_id AND c.is_primary = 1
		WHERE a.company_name LIKE ? ESCAPE '\'
		ORDER BY a.account_id
	`, "%"+escapeSQLLike(q)+"%")
	if err != nil {
		return nil, eris.Wrap(err, "store: search accounts")
	}
	defer rows.Close()

	var out []AccountSummary
	for rows.Next() {
		var a AccountSummary
		if err := rows.Scan(&a.AccountID, &a.CompanyName, &a.Industry, &a.PrimaryContact); err != nil {
			return nil, eris.Wrap(err, "store: scan account")
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
