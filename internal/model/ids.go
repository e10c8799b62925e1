// ABOUTME: Typed identifiers for every CRM record kind.
// ABOUTME: Sequential ids use fixed zero-padded prefixes (ACC0001, PROS0001, ACT0001).

package model

import (
	"fmt"
	"regexp"
)

type (
	AccountID  string
	ContactID  string
	NoteID     string
	ProspectID string
	ActivityID string
)

const (
	AccountPrefix  = "ACC"
	ProspectPrefix = "PROS"
	ActivityPrefix = "ACT"
)

var (
	accountIDPattern  = regexp.MustCompile(`^ACC\d{4,}$`)
	prospectIDPattern = regexp.MustCompile(`^PROS\d{4,}$`)
	activityIDPattern = regexp.MustCompile(`^ACT\d{4,}$`)
)

// FormatAccountID returns the n-th account id, e.g. 1 -> ACC0001.
func FormatAccountID(n int) AccountID {
	return AccountID(fmt.Sprintf("%s%04d", AccountPrefix, n))
}

// FormatProspectID returns the n-th prospect id, e.g. 1 -> PROS0001.
func FormatProspectID(n int) ProspectID {
	return ProspectID(fmt.Sprintf("%s%04d", ProspectPrefix, n))
}

// FormatActivityID returns the n-th activity id, e.g. 1 -> ACT0001.
func FormatActivityID(n int) ActivityID {
	return ActivityID(fmt.Sprintf("%s%04d", ActivityPrefix, n))
}

// Valid reports whether id has the ACC0001 shape.
func (id AccountID) Valid() bool { return accountIDPattern.MatchString(string(id)) }

// Valid reports whether id has the PROS0001 shape.
func (id ProspectID) Valid() bool { return prospectIDPattern.MatchString(string(id)) }

// Valid reports whether id has the ACT0001 shape.
func (id ActivityID) Valid() bool { return activityIDPattern.MatchString(string(id)) }
