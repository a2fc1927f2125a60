// Package consts provides operation name constants used in log correlation.
package consts

// Operation names.
const (
	// Worktree operations.
	CreateWorktree   = "CreateWorktree"
	RemoveWorktree   = "RemoveWorktree"
	CheckoutWorktree = "CheckoutWorktree"
	PullWorktree     = "PullWorktree"
	ListWorktrees    = "ListWorktrees"

	// Repository operations.
	CloneRepository  = "CloneRepository"
	ListRepositories = "ListRepositories"
	InspectRemote    = "InspectRemote"
)
