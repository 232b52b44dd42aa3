package httpapi

import "github.com/dmitrijs2005/linkhub/internal/server/accounts"

type signUpRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Headline string `json:"headline"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Email       string                    `json:"email"`
	WorkHistory []accounts.WorkEntry      `json:"workHistory"`
	Education   []accounts.EducationEntry `json:"education"`
	Skills      []string                  `json:"skills"`
	Interests   []string                  `json:"interests"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type signUpResponse struct {
	Message string              `json:"message"`
	Profile accounts.PublicView `json:"profile"`
}

type signInResponse struct {
	Message     string              `json:"message"`
	Token       string              `json:"token"`
	Profile     accounts.PublicView `json:"profile"`
	ProfileData accounts.Profile    `json:"profileData"`
}

type profileResponse struct {
	ProfileData accounts.Profile `json:"profileData"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
