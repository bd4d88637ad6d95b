package sessions

import (
	"github.com/stocktrail/stocktrail/users"
)

// Session is the ephemeral per-connection authenticated context. It is
// created by login, carried by a cookie-keyed lookup on every gated request,
// and destroyed by logout. Sessions are never persisted.
type Session struct {
	AccountID int        // Primary-store id of the account
	Username  string     // Account username at login time
	Role      users.Role // Role captured from the account at login time
}
