package dto

import "github.com/quickquid/quickquid_backend/internal/core/domain"

// CreateBranchRequest defines the data needed to create a new bank branch.
type CreateBranchRequest struct {
	BankName    string `json:"bankName" binding:"required"`
	BranchName  string `json:"branchName" binding:"required"`
	BankAddress string `json:"bankAddress" binding:"required"`
}

// BranchResponse defines the data returned for a bank branch.
type BranchResponse struct {
	ID          int64  `json:"id"`
	BankName    string `json:"bankName"`
	BranchName  string `json:"branchName"`
	BankAddress string `json:"bankAddress"`
}

// ToBranchResponse converts a domain.BankBranch to BranchResponse DTO.
func ToBranchResponse(b *domain.BankBranch) BranchResponse {
	return BranchResponse{
		ID:          b.BranchID,
		BankName:    b.BankName,
		BranchName:  b.BranchName,
		BankAddress: b.BankAddress,
	}
}

// ToBranchResponses converts a slice of domain branches to DTOs.
func ToBranchResponses(branches []domain.BankBranch) []BranchResponse {
	res := make([]BranchResponse, len(branches))
	for i := range branches {
		res[i] = ToBranchResponse(&branches[i])
	}
	return res
}
