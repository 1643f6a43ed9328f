package entities

import "time"

const PlanPro = "pro"

// User holds the quota state of a pool owner. The identity itself lives in
// the external identity provider; ID is its uid.
type User struct {
	ID                string     `json:"id"`
	Plan              string     `json:"plan"`
	ProExpirationDate *time.Time `json:"pro_expiration_date,omitempty"`
	FreePoolsCreated  int        `json:"free_pools_created"`
}

// IsPro reports an active pro plan at now.
func (u User) IsPro(now time.Time) bool {
	return u.Plan == PlanPro && u.ProExpirationDate != nil && u.ProExpirationDate.After(now)
}
