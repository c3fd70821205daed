/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/


package sdk

import "time"

// SignInRequest authenticates with an identifier (email, phone number or
// username) and a password.
type SignInRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// NewIdentifier is the identifier part of a new account.
type NewIdentifier struct {
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber,omitempty" validate:"omitempty,phone"`
	Username    string `json:"username" validate:"required,lowercase,min=3,max=48,username"`
}

// NewIdentity is the profile part of a new account.
type NewIdentity struct {
	DisplayName string `json:"displayName" validate:"required,name"`
}

// CreateUserRequest creates an account. It is also the sign-up payload.
type CreateUserRequest struct {
	Identifier NewIdentifier `json:"identifier"`
	Identity   NewIdentity   `json:"identity"`
	Password   string        `json:"password" validate:"required,password"`
}

// IdentifierPatch changes identifier fields. Empty fields are left as is.
type IdentifierPatch struct {
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber,omitempty" validate:"omitempty,phone"`
	Username    string `json:"username,omitempty" validate:"omitempty,lowercase,min=3,max=48,username"`
}

// IdentityPatch changes profile fields. Empty fields are left as is.
type IdentityPatch struct {
	DisplayName string     `json:"displayName,omitempty" validate:"omitempty,name"`
	FirstName   string     `json:"firstName,omitempty" validate:"omitempty,name"`
	LastName    string     `json:"lastName,omitempty" validate:"omitempty,name"`
	Bio         string     `json:"bio,omitempty" validate:"omitempty,bio"`
	Pronouns    string     `json:"pronouns,omitempty"`
	BirthDate   *time.Time `json:"birthDate,omitempty"`
}

// UserPatch is a partial update of a user.
type UserPatch struct {
	Identifier *IdentifierPatch `json:"identifier,omitempty"`
	Identity   *IdentityPatch   `json:"identity,omitempty"`
	Password   string           `json:"password,omitempty" validate:"omitempty,password"`
}

// UpdateUserRequest is a UserPatch addressed to one user.
type UpdateUserRequest struct {
	UserID     string           `path:"userId" json:"-"`
	Identifier *IdentifierPatch `json:"identifier,omitempty"`
	Identity   *IdentityPatch   `json:"identity,omitempty"`
	Password   string           `json:"password,omitempty" validate:"omitempty,password"`
}

// Patch returns the body of r.
func (r UpdateUserRequest) Patch() UserPatch {
	return UserPatch{Identifier: r.Identifier, Identity: r.Identity, Password: r.Password}
}

// UserRequest addresses one user by id.
type UserRequest struct {
	UserID string `path:"userId" json:"-"`
}

// CheckUserRequest asks whether identifier is taken. With Suggestions set
// the server proposes free alternatives.
type CheckUserRequest struct {
	Identifier  string `path:"identifier" json:"-"`
	Suggestions bool   `query:"suggestions,omitempty" json:"-"`
}

// RefreshRequest exchanges a refresh token for a new session.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// UserIDRequest addresses one user by id over RPC.
type UserIDRequest struct {
	ID string `json:"id" validate:"required"`
}

// EmailRequest looks a user up by email over RPC.
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// IdentifierRequest checks an identifier over RPC.
type IdentifierRequest struct {
	Identifier string `json:"identifier" validate:"required"`
}

// UpdateUserCommand is the RPC form of UpdateUserRequest.
type UpdateUserCommand struct {
	ID   string    `json:"id" validate:"required"`
	Data UserPatch `json:"data"`
}
