package models

// LoginResult is what a successful credential exchange yields: the opaque
// bearer token and the profile of the user it was issued to.
type LoginResult struct {
	Token string
	User  User
}

// PersistedSession is the (token, user) pair kept by the local token store.
// It is written and read as a unit.
type PersistedSession struct {
	Token string
	User  User
}
