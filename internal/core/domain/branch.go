package domain

import "time"

// BankBranch is a physical or logical bank location. Accounts reference it as
// their home branch and transactions as their originating branch.
type BankBranch struct {
	BranchID    int64
	BankName    string
	BranchName  string
	BankAddress string
	CreatedAt   time.Time
}

// Label renders the "Bank - Branch" string used in transaction histories.
func (b BankBranch) Label() string {
	return b.BankName + " - " + b.BranchName
}
