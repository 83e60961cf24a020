package tax

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidTaxPolicy marks a policy with a malformed name or a rate
// outside [0,100].
var ErrInvalidTaxPolicy = errors.New("invalid tax policy")

// Policy is a named percentage tax. At most one policy is active at a time;
// activation deactivates all others in the same database transaction.
type Policy struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Rate      float64   `json:"rate"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the policy against ErrInvalidTaxPolicy conditions.
func (p *Policy) Validate() error {
	if p.Name == "" {
		return ErrInvalidTaxPolicy
	}
	if p.Rate < 0 || p.Rate > 100 {
		return ErrInvalidTaxPolicy
	}
	return nil
}

// CreatePolicyRequest is the payload for creating a tax policy.
type CreatePolicyRequest struct {
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}
