package handler

import (
	checkinshandler "gym-membership-go/internal/transport/httpserver/handler/checkins"
	commonhandler "gym-membership-go/internal/transport/httpserver/handler/common"
	membershandler "gym-membership-go/internal/transport/httpserver/handler/members"
	membershipshandler "gym-membership-go/internal/transport/httpserver/handler/memberships"
)

type Handlers struct {
	Common      *commonhandler.Handlers
	Members     *membershandler.Handlers
	Memberships *membershipshandler.Handlers
	CheckIns    *checkinshandler.Handlers
}

func New(common *commonhandler.Handlers, members *membershandler.Handlers, memberships *membershipshandler.Handlers, checkIns *checkinshandler.Handlers) *Handlers {
	return &Handlers{
		Common:      common,
		Members:     members,
		Memberships: memberships,
		CheckIns:    checkIns,
	}
}
