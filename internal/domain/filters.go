package domain

import "time"

// Page size bounds for ledger listings, shared by the HTTP boundary
// and the repository so the reported limit is the applied one.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// TransactionFilter narrows ledger listings. Zero values mean "no
// constraint"; Limit outside [1, MaxPageLimit] is normalized.
type TransactionFilter struct {
	MemberID *int64
	Kind     string
	From     *time.Time
	To       *time.Time
	Search   string
	Page     int
	Limit    int
}
