package model

// CircleID identifies a circle. IDs are dense and assigned monotonically,
// starting at 1.
type CircleID uint32

// WalletID identifies a player account. The ledger treats it as an opaque
// string; the host environment owns its format and authentication.
type WalletID string

// Circle is a password-gated group with one creator and zero or more joiners.
type Circle struct {
	ID           CircleID     `json:"circle_id"`
	Name         string       `json:"name"`
	Creator      WalletID     `json:"creator"`
	PasswordHash PasswordHash `json:"password_hash"`

	// MemberCount is the number of joiners; the creator is not counted.
	MemberCount uint32 `json:"member_count"`

	// Betrayed is terminal: once true it never reverts. Betrayer is set
	// iff Betrayed.
	Betrayed bool      `json:"betrayed"`
	Betrayer *WalletID `json:"betrayer,omitempty"`

	TotalKaleEarned Amount `json:"total_kale_earned"`
}

// CircleInfo is the read-side projection of a Circle. It omits the password
// hash.
type CircleInfo struct {
	ID              CircleID `json:"circle_id"`
	Name            string   `json:"name"`
	Creator         WalletID `json:"creator"`
	MemberCount     uint32   `json:"member_count"`
	Betrayed        bool     `json:"betrayed"`
	TotalKaleEarned Amount   `json:"total_kale_earned"`
}

// Info returns the circle's public projection.
func (c *Circle) Info() CircleInfo {
	return CircleInfo{
		ID:              c.ID,
		Name:            c.Name,
		Creator:         c.Creator,
		MemberCount:     c.MemberCount,
		Betrayed:        c.Betrayed,
		TotalKaleEarned: c.TotalKaleEarned,
	}
}
