package models

import "time"

// BankBranch is the DB row shape for the bank_branches table.
type BankBranch struct {
	BranchID    int64     `db:"branch_id"`
	BankName    string    `db:"bank_name"`
	BranchName  string    `db:"branch_name"`
	BankAddress string    `db:"bank_address"`
	CreatedAt   time.Time `db:"created_at"`
}
