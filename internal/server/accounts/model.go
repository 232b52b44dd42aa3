package accounts

import "time"

// WorkEntry is one position in an account's work history.
type WorkEntry struct {
	Company string `json:"company" bson:"company"`
	Title   string `json:"title" bson:"title"`
	Start   string `json:"start" bson:"start"`
	End     string `json:"end,omitempty" bson:"end,omitempty"`
	Current bool   `json:"current,omitempty" bson:"current,omitempty"`
}

// EducationEntry is one entry in an account's education history.
type EducationEntry struct {
	School string `json:"school" bson:"school"`
	Degree string `json:"degree" bson:"degree"`
	Field  string `json:"field" bson:"field"`
}

// Profile is the editable, replace-only payload owned 1:1 by an Account.
// Skills and Interests preserve insertion order and never contain duplicates.
type Profile struct {
	WorkHistory []WorkEntry      `json:"workHistory" bson:"workHistory"`
	Education   []EducationEntry `json:"education" bson:"education"`
	Skills      []string         `json:"skills" bson:"skills"`
	Interests   []string         `json:"interests" bson:"interests"`
	UpdatedAt   time.Time        `json:"updatedAt" bson:"updatedAt"`
}

// EmptyProfile returns the default profile: four empty (non-nil) sequences,
// so JSON renderings show [] rather than null.
func EmptyProfile() Profile {
	return Profile{
		WorkHistory: []WorkEntry{},
		Education:   []EducationEntry{},
		Skills:      []string{},
		Interests:   []string{},
	}
}

// Account is the stored record. Email is the normalized natural key; every
// adapter enforces at most one account per email. The bson _id tag makes the
// email the document id in the mongo adapter, which is what gives inserts
// their native uniqueness there.
type Account struct {
	ID             string    `json:"id" bson:"id"`
	Email          string    `json:"email" bson:"_id"`
	FullName       string    `json:"fullName" bson:"fullName"`
	Headline       string    `json:"headline" bson:"headline"`
	PasswordDigest string    `json:"passwordDigest" bson:"passwordDigest"`
	Profile        Profile   `json:"profile" bson:"profile"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}

// PublicView is the subset of Account safe to return to callers.
// The password digest never leaves the accounts package.
type PublicView struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Headline string `json:"headline"`
}

func (a *Account) PublicView() PublicView {
	return PublicView{
		ID:       a.ID,
		FullName: a.FullName,
		Email:    a.Email,
		Headline: a.Headline,
	}
}
