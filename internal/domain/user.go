package domain

// User is a person issues can be assigned to and who can author comments.
type User struct {
	ID    int64
	Name  string
	Email string
}
