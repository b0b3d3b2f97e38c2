package userprofile

import (
	"time"

	"github.com/uptrace/bun"
)

// Goal values from onboarding.
const (
	GoalLoseWeight  = "emagrecer"
	GoalHypertrophy = "hipertrofia"
	GoalMaintain    = "manter"
)

// Profile represents a user profile row. The ID is the external auth
// provider's user id.
type Profile struct {
	bun.BaseModel `bun:"table:profiles"`

	ID        string    `bun:"id,pk" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Goal      string    `bun:"goal,notnull" json:"goal"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}
