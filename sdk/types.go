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

// Role is the access level of a user.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleDeveloper Role = "developer"
	RoleAdmin     Role = "admin"
)

// Provider identifies an identity provider.
type Provider string

const (
	ProviderLocal   Provider = "local"
	ProviderDiscord Provider = "discord"
	ProviderGoogle  Provider = "google"
	ProviderApple   Provider = "apple"
	ProviderSpotify Provider = "spotify"
	ProviderTiktok  Provider = "tiktok"
	ProviderTwitch  Provider = "twitch"
	ProviderTwitter Provider = "twitter"
)

// OAuthProviders lists the providers reachable through an OAuth2 redirect,
// in declaration order. ProviderLocal is not one of them.
var OAuthProviders = []Provider{
	ProviderDiscord,
	ProviderGoogle,
	ProviderApple,
	ProviderSpotify,
	ProviderTiktok,
	ProviderTwitch,
	ProviderTwitter,
}

// OAuthProvider is one entry of the providers listing.
type OAuthProvider struct {
	ID   Provider `json:"id"`
	Name string   `json:"name"`
	URL  string   `json:"url"`
}

// Identifier holds the ways a user can be looked up.
type Identifier struct {
	Email            string `json:"email,omitempty"`
	PhoneNumber      string `json:"phoneNumber,omitempty"`
	Username         string `json:"username"`
	StripeCustomerID string `json:"stripeCustomerId,omitempty"`
}

// Identity is the public profile of a user.
type Identity struct {
	DisplayName string     `json:"displayName"`
	Bio         string     `json:"bio,omitempty"`
	FirstName   string     `json:"firstName,omitempty"`
	LastName    string     `json:"lastName,omitempty"`
	FullName    string     `json:"fullName,omitempty"`
	Pronouns    string     `json:"pronouns,omitempty"`
	BirthDate   *time.Time `json:"birthDate,omitempty"`
}

// Address is a postal address attached to a user.
type Address struct {
	Type      string `json:"type"`
	IsDefault bool   `json:"isDefault"`
	Address   string `json:"address"`
	ZipCode   string `json:"zipCode"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

// Verification records when a contact channel was confirmed.
type Verification struct {
	Verified   bool       `json:"verified"`
	VerifiedAt *time.Time `json:"verifiedAt"`
}

// UserMetadata carries server-maintained facts about a user.
type UserMetadata struct {
	Verification struct {
		Email       Verification `json:"email"`
		PhoneNumber Verification `json:"phoneNumber"`
	} `json:"verification"`
}

// User is the user record returned by the API. The password hash is never
// part of it.
type User struct {
	ID         string       `json:"id"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
	Identifier Identifier   `json:"identifier"`
	Identity   Identity     `json:"identity"`
	Role       Role         `json:"role"`
	Addresses  []Address    `json:"addresses,omitempty"`
	Metadata   UserMetadata `json:"metadata"`
}

// Existence answers an availability check for an identifier.
type Existence struct {
	Exists      bool              `json:"exists"`
	Identifier  map[string]string `json:"identifier"`
	Suggestions []string          `json:"suggestions,omitempty"`
}

// Session is the token pair issued by the RPC auth service.
type Session struct {
	UserID       string `json:"userId"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Empty is the request or response of operations that carry nothing.
type Empty struct{}
