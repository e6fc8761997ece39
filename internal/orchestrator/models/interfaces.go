package models

// PolicyService decides if a requested function call is allowed.
// Implementations must be pure: no side effects, no mutation of the policy,
// identical input always yields an identical decision.
type PolicyService interface {
	CheckCall(req FunctionCallRequest) Decision
}
