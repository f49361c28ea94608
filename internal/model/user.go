package model

// UserProfile is keyed by the caller-supplied user id (usually the id issued
// by the client's identity provider), not by a store-generated one.
type UserProfile struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"displayName"`
	CreatedAt   *Timestamp `json:"createdAt"`
}

// ProfileFields carries the fields supplied to an upsert. A nil pointer means
// "not supplied" and leaves any stored value untouched.
type ProfileFields struct {
	Email       *string
	DisplayName *string
}

// ProfileWrite is the response to an upsert: the id plus exactly the fields
// written by that call. CreatedAt is a server timestamp and is not resolved
// in the write response.
type ProfileWrite struct {
	ID          string     `json:"id"`
	Email       *string    `json:"email,omitempty"`
	DisplayName *string    `json:"displayName,omitempty"`
	CreatedAt   *Timestamp `json:"createdAt"`
}
