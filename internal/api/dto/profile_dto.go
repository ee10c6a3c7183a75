package dto

// UpdateProfileRequest carries a partial profile update. The user binding is
// not accepted; a user/id key in the payload is ignored.
type UpdateProfileRequest struct {
	Contact            *string `json:"contact"`
	Department         *string `json:"department"`
	RealName           *string `json:"realName"`
	AccessLevel        *string `json:"accessLevel"`
	ProjectAccessLevel *string `json:"projectAccessLevel"`
}

// ProfileResponse is the enumerated profile view.
type ProfileResponse struct {
	ID                 string `json:"id"`
	User               string `json:"user"`
	Contact            string `json:"contact"`
	Department         string `json:"department"`
	RealName           string `json:"realName"`
	AccessLevel        string `json:"accessLevel"`
	ProjectAccessLevel string `json:"projectAccessLevel"`
}
