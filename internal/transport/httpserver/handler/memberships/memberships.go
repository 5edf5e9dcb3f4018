package memberships

import (
	"net/http"

	membershipsdomain "gym-membership-go/internal/domain/memberships"
	commonhandler "gym-membership-go/internal/transport/httpserver/handler/common"

	"github.com/go-chi/chi/v5"
)

type assignPlanRequest struct {
	MemberID  string `json:"memberId"`
	PlanID    string `json:"planId"`
	StartDate string `json:"startDate"`
}

type cancelMembershipRequest struct {
	CancelledAt string `json:"cancelledAt"`
}

func (h *Handlers) ListPlans(w http.ResponseWriter, r *http.Request) {
	items, err := h.Plans.ListPlans(r.Context())
	if err != nil {
		commonhandler.WriteFailure(w, h.log, "plans.list", err)
		return
	}

	response := make([]commonhandler.PlanResponse, 0, len(items))
	for _, item := range items {
		response = append(response, commonhandler.ToPlanResponse(item))
	}

	commonhandler.WriteJSON(w, http.StatusOK, response)
}

func (h *Handlers) AssignPlan(w http.ResponseWriter, r *http.Request) {
	var req assignPlanRequest
	if err := commonhandler.DecodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}

	memberID, err := commonhandler.ParseID(req.MemberID, "member id")
	if err != nil {
		commonhandler.WriteValidation(w, err.Error())
		return
	}
	planID, err := commonhandler.ParseID(req.PlanID, "plan id")
	if err != nil {
		commonhandler.WriteValidation(w, err.Error())
		return
	}
	startDate, err := commonhandler.ParseDate(req.StartDate, "startDate")
	if err != nil {
		commonhandler.WriteValidation(w, err.Error())
		return
	}

	membership, err := h.Memberships.AssignPlan(r.Context(), membershipsdomain.AssignPlanInput{
		MemberID:  memberID,
		PlanID:    planID,
		StartDate: startDate,
	})
	if err != nil {
		commonhandler.WriteFailure(w, h.log, "memberships.assign", err, "member_id", memberID, "plan_id", planID)
		return
	}

	commonhandler.WriteJSON(w, http.StatusCreated, commonhandler.ToMembershipResponse(membership))
}

func (h *Handlers) CancelMembership(w http.ResponseWriter, r *http.Request) {
	id, err := commonhandler.ParseID(chi.URLParam(r, "id"), "membership id")
	if err != nil {
		commonhandler.WriteValidation(w, err.Error())
		return
	}

	var req cancelMembershipRequest
	if err := commonhandler.DecodeJSON(r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w)
		return
	}
	cancelledAt, err := commonhandler.ParseDate(req.CancelledAt, "cancelledAt")
	if err != nil {
		commonhandler.WriteValidation(w, err.Error())
		return
	}

	membership, err := h.Memberships.CancelMembership(r.Context(), id, cancelledAt)
	if err != nil {
		commonhandler.WriteFailure(w, h.log, "memberships.cancel", err, "membership_id", id)
		return
	}

	commonhandler.WriteJSON(w, http.StatusOK, commonhandler.ToMembershipResponse(membership))
}
