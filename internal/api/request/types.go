package request

// CreateCircleRequest is the request body for creating a circle.
// PasswordHash is the hex-encoded SHA-256 digest of the circle password;
// the plaintext never travels with creation.
type CreateCircleRequest struct {
	Name         string `json:"name"`
	PasswordHash string `json:"password_hash"`
}

// SetPasswordRequest is the request body for rotating a circle password
type SetPasswordRequest struct {
	PasswordHash string `json:"password_hash"`
}

// JoinCircleRequest is the request body for joining a circle
type JoinCircleRequest struct {
	Password string `json:"password"`
}

// BetrayCircleRequest is the request body for betraying a circle
type BetrayCircleRequest struct {
	Password string `json:"password"`
}

// HarvestRequest is the request body for running a harvest batch.
// Index selects which window of circles to process.
type HarvestRequest struct {
	Index uint32 `json:"index"`
}
