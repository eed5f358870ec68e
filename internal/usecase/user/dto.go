package user

// CreateUserRequest represents the request payload for creating a new user.
type CreateUserRequest struct {
	FirstName string `validate:"max=255"`
	LastName  string `validate:"max=255"`
	Email     string `validate:"max=255"`
	Password  string `validate:"max=255"`
}

// UpdateUserRequest represents a partial update. Nil fields are not changed.
type UpdateUserRequest struct {
	ID        int64   `validate:"gt=0"`
	FirstName *string `validate:"omitempty,max=255"`
	LastName  *string `validate:"omitempty,max=255"`
	Email     *string `validate:"omitempty,max=255"`
	Password  *string `validate:"omitempty,max=255"`
}

// GetUserRequest represents the request payload for retrieving a user.
type GetUserRequest struct {
	ID int64
}

// DeleteUserRequest represents the request payload for deleting a user.
type DeleteUserRequest struct {
	ID int64
}

// User represents a user DTO (Data Transfer Object) for API responses.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Password  string
}
