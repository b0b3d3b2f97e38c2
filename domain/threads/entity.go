// Package threads persists the binding between a user and their assistant
// conversation thread.
package threads

import (
	"time"

	"github.com/uptrace/bun"
)

// Thread binds one user to one remote assistant thread. The binding is a
// keyed map with last-writer-wins semantics; a rare concurrent creation can
// abandon a stray remote thread, which is harmless.
type Thread struct {
	bun.BaseModel `bun:"table:ai_threads"`

	UserID    string    `bun:"user_id,pk" json:"user_id"`
	ThreadID  string    `bun:"thread_id,notnull" json:"thread_id"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}
