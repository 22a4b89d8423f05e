package user

// User is an admin panel account.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}
