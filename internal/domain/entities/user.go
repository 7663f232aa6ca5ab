package entities

// User is the logged-in requester. There is at most one per session and it is
// never persisted; login here is a simulation, not an identity check.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
