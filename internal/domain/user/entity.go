package user

// User represents a customer account in the shop.
type User struct {
	ID        int64  // ID is the generated unique identifier
	FirstName string // FirstName is the given name
	LastName  string // LastName is the family name
	Email     string // Email is the contact address, not required to be unique
	Password  string // Password is stored exactly as supplied
}

// Patch holds the fields of a partial update. A nil field is left untouched.
type Patch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

// Apply copies every supplied field of the patch onto u.
func (p Patch) Apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
}
