package http

import (
	"team-calendar/internal/session"
)

type userResp struct {
	Email     string `json:"email"`
	HasTokens bool   `json:"hasTokens"`
}

type meResp struct {
	User         *userResp `json:"user"` // null when unauthenticated
	Timezone     string    `json:"timezone"`
	TimezoneAbbr string    `json:"timezoneAbbr"`
}

func newMeResp(out session.MeOutput) meResp {
	resp := meResp{
		Timezone:     out.Timezone,
		TimezoneAbbr: out.TimezoneAbbr,
	}
	if out.User != nil {
		resp.User = &userResp{
			Email:     out.User.Email,
			HasTokens: out.User.HasTokens,
		}
	}
	return resp
}
